package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Water types used by locations and records.
const (
	WaterTypeLake      = "lake"
	WaterTypeRiver     = "river"
	WaterTypePond      = "pond"
	WaterTypeReservoir = "reservoir"
	WaterTypeDelta     = "delta"
	WaterTypeSea       = "sea"
)

// WaterTypes lists the accepted water types.
var WaterTypes = []string{
	WaterTypeLake,
	WaterTypeRiver,
	WaterTypePond,
	WaterTypeReservoir,
	WaterTypeDelta,
	WaterTypeSea,
}

// FishingLocation is read-only reference data describing a fishing spot.
type FishingLocation struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	County      string    `gorm:"size:100;index" json:"county"`
	WaterType   string    `gorm:"size:50" json:"waterType"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BeforeCreate assigns an opaque identifier.
func (l *FishingLocation) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
