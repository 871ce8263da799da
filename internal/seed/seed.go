// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"strings"
	"time"

	"pescart/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password of every seeded angler.
const DemoPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	RecordsPerUser int
	VerifiedRatio  float64
	ShouldClean    bool
}

var species = []string{
	"Crap", "Stiuca", "Salau", "Somn", "Biban", "Platica",
	"Caras", "Clean", "Mreana", "Pastrav", "Avat", "Crap oglinda",
}

// Seeder fills the database with demo anglers and catches.
type Seeder struct {
	db    *gorm.DB
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewSeeder returns a seeder. A zero seed picks a random one.
func NewSeeder(db *gorm.DB, seed int64) *Seeder {
	return &Seeder{db: db, faker: gofakeit.New(seed), now: time.Now}
}

// ClearAll removes records, users and locations.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing fishing records, users and locations...")
	for _, model := range []any{&models.FishingRecord{}, &models.User{}, &models.FishingLocation{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds reference locations, anglers and their records.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}
	if err := Locations(s.db); err != nil {
		return err
	}

	var locations []models.FishingLocation
	if err := s.db.Order("name").Find(&locations).Error; err != nil {
		return fmt.Errorf("load locations: %w", err)
	}

	users, err := s.SeedAnglers(opts.NumUsers)
	if err != nil {
		return err
	}
	records, err := s.SeedRecords(users, locations, opts.RecordsPerUser, opts.VerifiedRatio)
	if err != nil {
		return err
	}

	log.Printf("Seeded %d anglers and %d records across %d locations", len(users), len(records), len(locations))
	return nil
}

// SeedAnglers creates n users sharing DemoPassword.
func (s *Seeder) SeedAnglers(n int) ([]models.User, error) {
	if n <= 0 {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first, last := s.faker.FirstName(), s.faker.LastName()
		handle := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, i))
		if len(handle) > 30 {
			handle = handle[:30]
		}
		users = append(users, models.User{
			Username:  handle,
			Email:     fmt.Sprintf("%s@pescart.local", strings.ReplaceAll(handle, "_", ".")),
			Password:  string(hash),
			FirstName: first,
			LastName:  last,
			Role:      models.RoleUser,
		})
	}

	if err := s.db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("create anglers: %w", err)
	}
	return users, nil
}

// SeedRecords creates perUser catches for each user at random locations.
// Roughly verifiedRatio of them are verified.
func (s *Seeder) SeedRecords(users []models.User, locations []models.FishingLocation, perUser int, verifiedRatio float64) ([]models.FishingRecord, error) {
	if len(users) == 0 || len(locations) == 0 || perUser <= 0 {
		return nil, nil
	}

	now := s.now()
	records := make([]models.FishingRecord, 0, len(users)*perUser)
	for _, u := range users {
		for i := 0; i < perUser; i++ {
			loc := locations[s.faker.Number(0, len(locations)-1)]
			length := float64(s.faker.Number(20, 140))
			locID := loc.ID
			records = append(records, models.FishingRecord{
				UserID:      u.ID,
				Species:     s.faker.RandomString(species),
				Weight:      fmt.Sprintf("%.2f", s.faker.Float64Range(0.2, 35)),
				Length:      &length,
				Location:    loc.Name,
				LocationID:  &locID,
				County:      loc.County,
				WaterType:   loc.WaterType,
				DateCaught:  s.faker.DateRange(now.AddDate(-2, 0, 0), now).UTC().Truncate(24 * time.Hour),
				Description: s.faker.Sentence(8),
				Verified:    s.faker.Float64Range(0, 1) < verifiedRatio,
			})
		}
	}

	if err := s.db.Omit("User").CreateInBatches(&records, 200).Error; err != nil {
		return nil, fmt.Errorf("create records: %w", err)
	}
	return records, nil
}
