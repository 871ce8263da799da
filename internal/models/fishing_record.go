package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FishingRecord is a catch submitted by a user. Only verified records are
// public.
type FishingRecord struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"userId"`
	Species     string    `gorm:"size:100;not null;index" json:"species"`
	Weight      string    `gorm:"size:20;not null" json:"weight"`
	Length      *float64  `json:"length,omitempty"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	LocationID  *string   `gorm:"size:36;index" json:"locationId,omitempty"`
	County      string    `gorm:"size:100;index" json:"county"`
	WaterType   string    `gorm:"size:50" json:"waterType"`
	DateCaught  time.Time `gorm:"not null" json:"dateCaught"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Verified    bool      `gorm:"not null;default:false;index" json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns an opaque identifier.
func (r *FishingRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// WeightValue returns the numeric weight. Unparseable weights rank last.
func (r *FishingRecord) WeightValue() float64 {
	w, err := strconv.ParseFloat(r.Weight, 64)
	if err != nil {
		return 0
	}
	return w
}

// PendingRecord is an unverified record enriched with submitter details for
// admin review.
type PendingRecord struct {
	FishingRecord
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserEmail     string `json:"userEmail"`
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	Position int           `json:"position"`
	Record   FishingRecord `json:"record"`
	User     *UserSummary  `json:"user"`
}

// LeaderboardFilter narrows the verified record set. Empty or "all" means
// no filter.
type LeaderboardFilter struct {
	Species   string
	County    string
	WaterType string
}

// RankingPositions are reserved ranking slots on a profile. They are not
// computed yet and always serialize as null.
type RankingPositions struct {
	National *int `json:"national"`
	County   *int `json:"county"`
}

// ProfileStats aggregates a user's verified records.
type ProfileStats struct {
	TotalRecords  int              `json:"totalRecords"`
	PersonalBests []FishingRecord  `json:"personalBests"`
	Positions     RankingPositions `json:"positions"`
}

// UserProfile is the public profile of a user.
type UserProfile struct {
	User          *User           `json:"user"`
	Stats         ProfileStats    `json:"stats"`
	RecentRecords []FishingRecord `json:"recentRecords"`
}

// GlobalStats are site-wide counters.
type GlobalStats struct {
	TotalLocations int64 `json:"totalLocations"`
	TotalRecords   int64 `json:"totalRecords"`
	ActiveUsers    int64 `json:"activeUsers"`
}
