// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"pescart/internal/cache"
	"pescart/internal/models"
	"pescart/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	SetRole(ctx context.Context, id, role string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads through the user cache. Cached users carry no password hash.
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		defer observability.TrackQuery("get_by_id", "users")()
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil, nil when no user has the email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Create inserts the user. The unique indexes decide duplicates, which come
// back as a conflict naming the column.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if col, ok := uniqueViolation(err, "email", "username"); ok {
			switch col {
			case "email":
				return models.NewConflictError("User with this email already exists")
			case "username":
				return models.NewConflictError("Username already taken")
			default:
				return models.NewConflictError("User already exists")
			}
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) SetRole(ctx context.Context, id, role string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
