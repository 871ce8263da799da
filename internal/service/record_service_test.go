package service

import (
	"context"
	"testing"
	"time"

	"pescart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestRecordService(records *recordRepoStub, users *userRepoStub, locations *locationRepoStub) *RecordService {
	svc := NewRecordService(records, users, locations)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validSubmission() SubmitRecordInput {
	return SubmitRecordInput{
		Species:    "Crap",
		Weight:     "8.50",
		Location:   "Lacul Snagov",
		County:     "Ilfov",
		WaterType:  "Lake",
		DateCaught: "2024-06-01",
	}
}

func TestRecordService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("stores unverified record owned by caller", func(t *testing.T) {
		t.Parallel()
		records := noopRecordRepo()
		var saved *models.FishingRecord
		records.createFn = func(_ context.Context, r *models.FishingRecord) error {
			saved = r
			return nil
		}
		svc := newTestRecordService(records, noopUserRepo(), noopLocationRepo())

		rec, err := svc.Submit(context.Background(), "u-1", validSubmission())
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Same(t, saved, rec)
		assert.Equal(t, "u-1", rec.UserID)
		assert.False(t, rec.Verified)
		assert.Equal(t, models.WaterTypeLake, rec.WaterType)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), rec.DateCaught)
	})

	t.Run("locationId fills county and water type", func(t *testing.T) {
		t.Parallel()
		locations := noopLocationRepo()
		locations.getByIDFn = func(_ context.Context, id string) (*models.FishingLocation, error) {
			return &models.FishingLocation{ID: id, County: "Tulcea", WaterType: models.WaterTypeDelta}, nil
		}
		svc := newTestRecordService(noopRecordRepo(), noopUserRepo(), locations)

		in := validSubmission()
		in.County, in.WaterType = "", ""
		locID := "loc-1"
		in.LocationID = &locID

		rec, err := svc.Submit(context.Background(), "u-1", in)
		require.NoError(t, err)
		require.NotNil(t, rec.LocationID)
		assert.Equal(t, "loc-1", *rec.LocationID)
		assert.Equal(t, "Tulcea", rec.County)
		assert.Equal(t, models.WaterTypeDelta, rec.WaterType)
	})

	negative := -1.0
	unknown := "missing"
	invalid := map[string]func(*SubmitRecordInput){
		"missing species":  func(in *SubmitRecordInput) { in.Species = "" },
		"missing weight":   func(in *SubmitRecordInput) { in.Weight = "" },
		"zero weight":      func(in *SubmitRecordInput) { in.Weight = "0" },
		"text weight":      func(in *SubmitRecordInput) { in.Weight = "heavy" },
		"negative length":  func(in *SubmitRecordInput) { in.Length = &negative },
		"missing location": func(in *SubmitRecordInput) { in.Location = "  " },
		"missing date":     func(in *SubmitRecordInput) { in.DateCaught = "" },
		"future date":      func(in *SubmitRecordInput) { in.DateCaught = "2024-07-01" },
		"bad water type":   func(in *SubmitRecordInput) { in.WaterType = "ocean" },
		"unknown location": func(in *SubmitRecordInput) { in.LocationID = &unknown },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			records := noopRecordRepo()
			records.createFn = func(context.Context, *models.FishingRecord) error {
				t.Fatal("create must not be called for invalid input")
				return nil
			}
			in := validSubmission()
			mutate(&in)
			_, err := newTestRecordService(records, noopUserRepo(), noopLocationRepo()).Submit(context.Background(), "u-1", in)
			assertValidationError(t, err)
		})
	}
}

func TestRecordService_Get_Visibility(t *testing.T) {
	t.Parallel()

	records := noopRecordRepo()
	records.getByIDFn = func(_ context.Context, id string) (*models.FishingRecord, error) {
		switch id {
		case "public":
			return &models.FishingRecord{ID: id, UserID: "owner", Verified: true}, nil
		case "pending":
			return &models.FishingRecord{ID: id, UserID: "owner"}, nil
		}
		return nil, models.NewNotFoundError("Fishing record", id)
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id string) (*models.User, error) {
		role := models.RoleUser
		if id == "admin" {
			role = models.RoleAdmin
		}
		return &models.User{ID: id, Role: role}, nil
	}
	svc := newTestRecordService(records, users, noopLocationRepo())
	ctx := context.Background()

	tests := []struct {
		viewer, id string
		visible    bool
	}{
		{"", "public", true},
		{"stranger", "public", true},
		{"", "pending", false},
		{"stranger", "pending", false},
		{"owner", "pending", true},
		{"admin", "pending", true},
		{"admin", "missing", false},
	}
	for _, tt := range tests {
		rec, err := svc.Get(ctx, tt.viewer, tt.id)
		if tt.visible {
			require.NoError(t, err, "viewer %q record %q", tt.viewer, tt.id)
			assert.Equal(t, tt.id, rec.ID)
		} else {
			assertAppError(t, err, models.CodeNotFound)
		}
	}
}

func TestRecordService_VerifyAndReject(t *testing.T) {
	t.Parallel()

	newRepo := func(verified bool, calls *[]string) *recordRepoStub {
		records := noopRecordRepo()
		records.getByIDFn = func(_ context.Context, id string) (*models.FishingRecord, error) {
			if id != "r-1" {
				return nil, models.NewNotFoundError("Fishing record", id)
			}
			return &models.FishingRecord{ID: id, Verified: verified}, nil
		}
		records.markVerifiedFn = func(_ context.Context, id string) error {
			*calls = append(*calls, "verify:"+id)
			return nil
		}
		records.deleteUnverifiedFn = func(_ context.Context, id string) error {
			*calls = append(*calls, "delete:"+id)
			return nil
		}
		return records
	}
	ctx := context.Background()

	t.Run("verify pending record", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(false, &calls), noopUserRepo(), noopLocationRepo())
		require.NoError(t, svc.Verify(ctx, "r-1"))
		assert.Equal(t, []string{"verify:r-1"}, calls)
	})

	t.Run("verify is idempotent", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(true, &calls), noopUserRepo(), noopLocationRepo())
		require.NoError(t, svc.Verify(ctx, "r-1"))
		assert.Empty(t, calls)
	})

	t.Run("verify missing", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(false, &calls), noopUserRepo(), noopLocationRepo())
		assertAppError(t, svc.Verify(ctx, "nope"), models.CodeNotFound)
	})

	t.Run("reject pending record deletes it", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(false, &calls), noopUserRepo(), noopLocationRepo())
		require.NoError(t, svc.Reject(ctx, "r-1"))
		assert.Equal(t, []string{"delete:r-1"}, calls)
	})

	t.Run("reject verified record is refused", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(true, &calls), noopUserRepo(), noopLocationRepo())
		assertValidationError(t, svc.Reject(ctx, "r-1"))
		assert.Empty(t, calls)
	})

	t.Run("reject missing", func(t *testing.T) {
		t.Parallel()
		var calls []string
		svc := newTestRecordService(newRepo(false, &calls), noopUserRepo(), noopLocationRepo())
		assertAppError(t, svc.Reject(ctx, "nope"), models.CodeNotFound)
	})
}

func TestRecordService_Pending_Enriched(t *testing.T) {
	t.Parallel()

	records := noopRecordRepo()
	records.listPendingFn = func(context.Context) ([]models.FishingRecord, error) {
		return []models.FishingRecord{
			{ID: "r-1", User: &models.User{FirstName: "Ion", LastName: "Popescu", Email: "ion@example.com"}},
			{ID: "r-2"},
		}, nil
	}
	svc := newTestRecordService(records, noopUserRepo(), noopLocationRepo())

	pending, err := svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Ion", pending[0].UserFirstName)
	assert.Equal(t, "Popescu", pending[0].UserLastName)
	assert.Equal(t, "ion@example.com", pending[0].UserEmail)
	assert.Empty(t, pending[1].UserEmail)
}
