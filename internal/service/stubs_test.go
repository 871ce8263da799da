package service

import (
	"context"
	"errors"
	"testing"

	"pescart/internal/models"

	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, string) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	setRoleFn    func(context.Context, string, string) error
	countFn      func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) SetRole(ctx context.Context, id, role string) error {
	return s.setRoleFn(ctx, id, role)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = "u-new"
			return nil
		},
		setRoleFn: func(context.Context, string, string) error { return nil },
		countFn:   func(context.Context) (int64, error) { return 0, nil },
	}
}

type recordRepoStub struct {
	createFn                func(context.Context, *models.FishingRecord) error
	getByIDFn               func(context.Context, string) (*models.FishingRecord, error)
	listVerifiedFn          func(context.Context) ([]models.FishingRecord, error)
	listByUserFn            func(context.Context, string) ([]models.FishingRecord, error)
	listVerifiedByUserFn    func(context.Context, string) ([]models.FishingRecord, error)
	listVerifiedWithUsersFn func(context.Context, models.LeaderboardFilter) ([]models.FishingRecord, error)
	listPendingFn           func(context.Context) ([]models.FishingRecord, error)
	markVerifiedFn          func(context.Context, string) error
	deleteUnverifiedFn      func(context.Context, string) error
	countVerifiedFn         func(context.Context) (int64, error)
}

func (s *recordRepoStub) Create(ctx context.Context, r *models.FishingRecord) error {
	return s.createFn(ctx, r)
}
func (s *recordRepoStub) GetByID(ctx context.Context, id string) (*models.FishingRecord, error) {
	return s.getByIDFn(ctx, id)
}
func (s *recordRepoStub) ListVerified(ctx context.Context) ([]models.FishingRecord, error) {
	return s.listVerifiedFn(ctx)
}
func (s *recordRepoStub) ListByUser(ctx context.Context, userID string) ([]models.FishingRecord, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *recordRepoStub) ListVerifiedByUser(ctx context.Context, userID string) ([]models.FishingRecord, error) {
	return s.listVerifiedByUserFn(ctx, userID)
}
func (s *recordRepoStub) ListVerifiedWithUsers(ctx context.Context, f models.LeaderboardFilter) ([]models.FishingRecord, error) {
	return s.listVerifiedWithUsersFn(ctx, f)
}
func (s *recordRepoStub) ListPending(ctx context.Context) ([]models.FishingRecord, error) {
	return s.listPendingFn(ctx)
}
func (s *recordRepoStub) MarkVerified(ctx context.Context, id string) error {
	return s.markVerifiedFn(ctx, id)
}
func (s *recordRepoStub) DeleteUnverified(ctx context.Context, id string) error {
	return s.deleteUnverifiedFn(ctx, id)
}
func (s *recordRepoStub) CountVerified(ctx context.Context) (int64, error) {
	return s.countVerifiedFn(ctx)
}

func noopRecordRepo() *recordRepoStub {
	return &recordRepoStub{
		createFn: func(_ context.Context, r *models.FishingRecord) error {
			r.ID = "r-new"
			return nil
		},
		getByIDFn: func(_ context.Context, id string) (*models.FishingRecord, error) {
			return nil, models.NewNotFoundError("Fishing record", id)
		},
		listVerifiedFn:       func(context.Context) ([]models.FishingRecord, error) { return nil, nil },
		listByUserFn:         func(context.Context, string) ([]models.FishingRecord, error) { return nil, nil },
		listVerifiedByUserFn: func(context.Context, string) ([]models.FishingRecord, error) { return nil, nil },
		listVerifiedWithUsersFn: func(context.Context, models.LeaderboardFilter) ([]models.FishingRecord, error) {
			return nil, nil
		},
		listPendingFn:      func(context.Context) ([]models.FishingRecord, error) { return nil, nil },
		markVerifiedFn:     func(context.Context, string) error { return nil },
		deleteUnverifiedFn: func(context.Context, string) error { return nil },
		countVerifiedFn:    func(context.Context) (int64, error) { return 0, nil },
	}
}

type locationRepoStub struct {
	listFn    func(context.Context) ([]models.FishingLocation, error)
	getByIDFn func(context.Context, string) (*models.FishingLocation, error)
	createFn  func(context.Context, *models.FishingLocation) error
	countFn   func(context.Context) (int64, error)
}

func (s *locationRepoStub) List(ctx context.Context) ([]models.FishingLocation, error) {
	return s.listFn(ctx)
}
func (s *locationRepoStub) GetByID(ctx context.Context, id string) (*models.FishingLocation, error) {
	return s.getByIDFn(ctx, id)
}
func (s *locationRepoStub) Create(ctx context.Context, l *models.FishingLocation) error {
	return s.createFn(ctx, l)
}
func (s *locationRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopLocationRepo() *locationRepoStub {
	return &locationRepoStub{
		listFn: func(context.Context) ([]models.FishingLocation, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id string) (*models.FishingLocation, error) {
			return nil, models.NewNotFoundError("Fishing location", id)
		},
		createFn: func(context.Context, *models.FishingLocation) error { return nil },
		countFn:  func(context.Context) (int64, error) { return 0, nil },
	}
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code, "unexpected code for %q", appErr.Message)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}
