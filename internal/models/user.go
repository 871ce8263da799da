// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered angler.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"uniqueIndex:idx_users_username;size:30;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;size:255;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:100" json:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName"`
	Role      string    `gorm:"size:20;not null;default:user" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an opaque identifier and the default role.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// IsAdmin reports whether the user may moderate records.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserSummary is the public identity attached to leaderboard entries.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Summary returns the leaderboard view of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
