package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"pescart/internal/models"
)

var (
	weightRegex       = regexp.MustCompile(`^\d{1,6}(\.\d{1,3})?$`)
	leaderboardRegex  = regexp.MustCompile(`^[a-z0-9-]{1,40}$`)
	dateOnlyLayout    = "2006-01-02"
	maxSpeciesLength  = 100
	maxLocationLength = 200
)

// UTC+14 is the furthest zone ahead of UTC.
const dateOnlySlack = 14 * time.Hour

// ValidateSpecies requires a non-blank species name.
func ValidateSpecies(species string) error {
	species = strings.TrimSpace(species)
	if species == "" {
		return fmt.Errorf("species is required")
	}
	if len(species) > maxSpeciesLength {
		return fmt.Errorf("species must not exceed %d characters", maxSpeciesLength)
	}
	return nil
}

// ValidateWeight requires a positive decimal such as "8.50".
func ValidateWeight(weight string) error {
	weight = strings.TrimSpace(weight)
	if weight == "" {
		return fmt.Errorf("weight is required")
	}
	if !weightRegex.MatchString(weight) {
		return fmt.Errorf("weight must be a decimal number")
	}
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil || w <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	return nil
}

// ValidateLength checks an optional length in centimetres.
func ValidateLength(length *float64) error {
	if length == nil {
		return nil
	}
	if math.IsNaN(*length) || math.IsInf(*length, 0) || *length <= 0 {
		return fmt.Errorf("length must be greater than zero")
	}
	return nil
}

// ValidateLocation requires a non-blank place name.
func ValidateLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return fmt.Errorf("location is required")
	}
	if len(location) > maxLocationLength {
		return fmt.Errorf("location must not exceed %d characters", maxLocationLength)
	}
	return nil
}

// ValidateWaterType accepts an empty value or one of models.WaterTypes.
func ValidateWaterType(waterType string) error {
	if waterType == "" || slices.Contains(models.WaterTypes, waterType) {
		return nil
	}
	return fmt.Errorf("waterType must be one of %s", strings.Join(models.WaterTypes, ", "))
}

// ParseDateCaught accepts YYYY-MM-DD or RFC3339 and rejects dates after now.
func ParseDateCaught(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("dateCaught is required")
	}

	latest := now
	t, err := time.Parse(dateOnlyLayout, raw)
	if err == nil {
		// A bare date is UTC midnight; allow it while it is today anywhere.
		latest = now.Add(dateOnlySlack)
	} else {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("dateCaught must be YYYY-MM-DD or RFC3339")
		}
	}

	if t.After(latest) {
		return time.Time{}, fmt.Errorf("dateCaught cannot be in the future")
	}
	return t.UTC(), nil
}

// ValidateLeaderboardType checks the leaderboard slug.
func ValidateLeaderboardType(kind string) error {
	if !leaderboardRegex.MatchString(kind) {
		return fmt.Errorf("leaderboard type must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}
