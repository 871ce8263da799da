package service

import (
	"context"
	"slices"
	"sort"

	"pescart/internal/models"
	"pescart/internal/observability"
	"pescart/internal/repository"
	"pescart/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	recentRecordsLimit      = 5
)

// LeaderboardService ranks verified records and builds profiles and
// site-wide stats from them.
type LeaderboardService struct {
	records   repository.RecordRepository
	users     repository.UserRepository
	locations repository.LocationRepository
}

func NewLeaderboardService(records repository.RecordRepository, users repository.UserRepository, locations repository.LocationRepository) *LeaderboardService {
	return &LeaderboardService{records: records, users: users, locations: locations}
}

// Leaderboard ranks verified records by weight, heaviest first. Every kind
// shares the same ranking; kind only has to be a valid slug.
func (s *LeaderboardService) Leaderboard(ctx context.Context, kind string, filter models.LeaderboardFilter, limit, offset int) (_ []models.LeaderboardEntry, err error) {
	ctx, span := observability.StartSpan(ctx, "leaderboard.rank",
		attribute.String("leaderboard.type", kind),
		attribute.String("leaderboard.species", filter.Species),
	)
	defer func() { observability.EndSpan(span, err) }()

	if err = validation.ValidateLeaderboardType(kind); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	limit, offset = clampPage(limit, offset)
	if limit == 0 {
		return []models.LeaderboardEntry{}, nil
	}

	records, err := s.records.ListVerifiedWithUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].WeightValue() > records[j].WeightValue()
	})

	if offset >= len(records) {
		return []models.LeaderboardEntry{}, nil
	}
	records = records[offset:min(offset+limit, len(records))]

	entries := make([]models.LeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = models.LeaderboardEntry{
			Position: offset + i + 1,
			Record:   r,
			User:     r.User.Summary(),
		}
	}
	return entries, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Profile assembles the public profile of a user from verified records.
func (s *LeaderboardService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListVerifiedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		User: user,
		Stats: models.ProfileStats{
			TotalRecords:  len(records),
			PersonalBests: personalBests(records),
		},
		RecentRecords: recentRecords(records, recentRecordsLimit),
	}, nil
}

// personalBests keeps the heaviest record per species in order of the
// species' first appearance. The earlier record wins a tie.
func personalBests(records []models.FishingRecord) []models.FishingRecord {
	best := make(map[string]int)
	out := []models.FishingRecord{}
	for _, r := range records {
		idx, seen := best[r.Species]
		if !seen {
			best[r.Species] = len(out)
			out = append(out, r)
			continue
		}
		if r.WeightValue() > out[idx].WeightValue() {
			out[idx] = r
		}
	}
	return out
}

// recentRecords returns up to n records by catch date, newest first. Records
// caught the same day are ordered by creation, newest first.
func recentRecords(records []models.FishingRecord, n int) []models.FishingRecord {
	sorted := slices.Clone(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].DateCaught.Equal(sorted[j].DateCaught) {
			return sorted[i].DateCaught.After(sorted[j].DateCaught)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []models.FishingRecord{}
	}
	return sorted
}

// GlobalStats counts locations, verified records and registered users.
func (s *LeaderboardService) GlobalStats(ctx context.Context) (*models.GlobalStats, error) {
	locations, err := s.locations.Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.GlobalStats{
		TotalLocations: locations,
		TotalRecords:   records,
		ActiveUsers:    users,
	}, nil
}
