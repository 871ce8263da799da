// Package bootstrap connects the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pescart/internal/cache"
	"pescart/internal/config"
	"pescart/internal/database"
	"pescart/internal/models"
	"pescart/internal/repository"
	"pescart/internal/seed"
	"pescart/internal/validation"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedLocations bool
}

// InitRuntime connects to DB and Redis, ensures the configured admin account
// and optionally seeds the reference locations.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// nil when Redis is unreachable
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureAdmin(context.Background(), cfg, repository.NewUserRepository(db)); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	if opts.SeedLocations || cfg.SeedOnStart {
		if err := seed.Locations(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed fishing locations: %w", err)
		}
	}

	return db, r, nil
}

// ensureAdmin promotes the ADMIN_EMAIL account. When the account does not
// exist yet and ADMIN_PASSWORD is set it is created.
func ensureAdmin(ctx context.Context, cfg *config.Config, users repository.UserRepository) error {
	if cfg == nil || users == nil {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return nil
	}

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.IsAdmin() {
			return nil
		}
		if err := users.SetRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return err
		}
		log.Printf("promoted %s to admin", email)
		return nil
	}

	if cfg.AdminPassword == "" {
		log.Printf("admin account %s not registered yet; it becomes admin on registration", email)
		return nil
	}
	if err := validation.ValidatePassword(cfg.AdminPassword); err != nil {
		return fmt.Errorf("ADMIN_PASSWORD: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Username: adminUsername(email),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("created admin account %s (%s)", admin.Username, email)
	return nil
}

// adminUsername derives a valid username from the local part of email.
func adminUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_-")
	if len(name) > 30 {
		name = strings.TrimRight(name[:30], "_-")
	}
	if len(name) < 3 {
		name = "pescart_admin"
	}
	return name
}
