package service

import (
	"context"

	"pescart/internal/models"
	"pescart/internal/repository"
)

type LocationService struct {
	locations repository.LocationRepository
}

func NewLocationService(locations repository.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

func (s *LocationService) List(ctx context.Context) ([]models.FishingLocation, error) {
	return s.locations.List(ctx)
}

func (s *LocationService) Get(ctx context.Context, id string) (*models.FishingLocation, error) {
	return s.locations.GetByID(ctx, id)
}
