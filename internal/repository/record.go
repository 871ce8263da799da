package repository

import (
	"context"
	"errors"

	"pescart/internal/models"
	"pescart/internal/observability"

	"gorm.io/gorm"
)

// RecordRepository defines persistence operations for fishing records.
type RecordRepository interface {
	Create(ctx context.Context, record *models.FishingRecord) error
	GetByID(ctx context.Context, id string) (*models.FishingRecord, error)
	ListVerified(ctx context.Context) ([]models.FishingRecord, error)
	ListByUser(ctx context.Context, userID string) ([]models.FishingRecord, error)
	ListVerifiedByUser(ctx context.Context, userID string) ([]models.FishingRecord, error)
	ListVerifiedWithUsers(ctx context.Context, filter models.LeaderboardFilter) ([]models.FishingRecord, error)
	ListPending(ctx context.Context) ([]models.FishingRecord, error)
	MarkVerified(ctx context.Context, id string) error
	DeleteUnverified(ctx context.Context, id string) error
	CountVerified(ctx context.Context) (int64, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository returns a GORM backed RecordRepository.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *models.FishingRecord) error {
	defer observability.TrackQuery("create", "fishing_records")()
	if err := r.db.WithContext(ctx).Omit("User").Create(record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (*models.FishingRecord, error) {
	var record models.FishingRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Fishing record", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

// ListVerified returns the public listing, newest first.
func (r *recordRepository) ListVerified(ctx context.Context) ([]models.FishingRecord, error) {
	defer observability.TrackQuery("list_verified", "fishing_records")()
	records := []models.FishingRecord{}
	if err := r.db.WithContext(ctx).
		Where("verified = ?", true).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// ListByUser returns every record of the user in creation order.
func (r *recordRepository) ListByUser(ctx context.Context, userID string) ([]models.FishingRecord, error) {
	records := []models.FishingRecord{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *recordRepository) ListVerifiedByUser(ctx context.Context, userID string) ([]models.FishingRecord, error) {
	records := []models.FishingRecord{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND verified = ?", userID, true).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// ListVerifiedWithUsers returns the leaderboard candidates in creation order
// with their owners preloaded. Empty or "all" filter values are ignored.
func (r *recordRepository) ListVerifiedWithUsers(ctx context.Context, filter models.LeaderboardFilter) ([]models.FishingRecord, error) {
	defer observability.TrackQuery("leaderboard", "fishing_records")()

	q := r.db.WithContext(ctx).Preload("User").Where("verified = ?", true)
	if active(filter.Species) {
		q = q.Where("species = ?", filter.Species)
	}
	if active(filter.County) {
		q = q.Where("county = ?", filter.County)
	}
	if active(filter.WaterType) {
		q = q.Where("water_type = ?", filter.WaterType)
	}

	records := []models.FishingRecord{}
	if err := q.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// ListPending returns unverified records, oldest first, with submitters.
func (r *recordRepository) ListPending(ctx context.Context) ([]models.FishingRecord, error) {
	records := []models.FishingRecord{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("verified = ?", false).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *recordRepository) MarkVerified(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.FishingRecord{}).Where("id = ?", id).Update("verified", true)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Fishing record", id)
	}
	return nil
}

// DeleteUnverified removes a record that has not been verified. A missing or
// already verified record yields NotFound.
func (r *recordRepository) DeleteUnverified(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND verified = ?", id, false).Delete(&models.FishingRecord{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Fishing record", id)
	}
	return nil
}

func (r *recordRepository) CountVerified(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.FishingRecord{}).Where("verified = ?", true).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func active(v string) bool {
	return v != "" && v != "all"
}
