package repository

import (
	"context"
	"errors"

	"pescart/internal/cache"
	"pescart/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines persistence operations for fishing locations.
type LocationRepository interface {
	List(ctx context.Context) ([]models.FishingLocation, error)
	GetByID(ctx context.Context, id string) (*models.FishingLocation, error)
	Create(ctx context.Context, location *models.FishingLocation) error
	Count(ctx context.Context) (int64, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// List returns all locations ordered by name, read through the cache.
func (r *locationRepository) List(ctx context.Context) ([]models.FishingLocation, error) {
	locations := []models.FishingLocation{}
	err := cache.Aside(ctx, cache.LocationsKey, &locations, cache.LocationTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*models.FishingLocation, error) {
	var location models.FishingLocation
	err := cache.Aside(ctx, cache.LocationKey(id), &location, cache.LocationTTL, func() error {
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Fishing location", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Create inserts a location; a duplicate name is a conflict.
func (r *locationRepository) Create(ctx context.Context, location *models.FishingLocation) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		if _, ok := uniqueViolation(err, "name"); ok {
			return models.NewConflictError("Location already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateLocations(ctx)
	return nil
}

func (r *locationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.FishingLocation{}).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
