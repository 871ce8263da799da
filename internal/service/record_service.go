package service

import (
	"context"
	"strings"
	"time"

	"pescart/internal/models"
	"pescart/internal/observability"
	"pescart/internal/repository"
	"pescart/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type RecordService struct {
	records   repository.RecordRepository
	users     repository.UserRepository
	locations repository.LocationRepository
	now       func() time.Time
}

// SubmitRecordInput is the caller supplied part of a record. Ownership and
// verification state are never taken from input.
type SubmitRecordInput struct {
	Species     string
	Weight      string
	Length      *float64
	Location    string
	LocationID  *string
	County      string
	WaterType   string
	DateCaught  string
	Description string
}

func NewRecordService(records repository.RecordRepository, users repository.UserRepository, locations repository.LocationRepository) *RecordService {
	return &RecordService{records: records, users: users, locations: locations, now: time.Now}
}

func (s *RecordService) Submit(ctx context.Context, userID string, in SubmitRecordInput) (_ *models.FishingRecord, err error) {
	ctx, span := observability.StartSpan(ctx, "records.submit", attribute.String("user.id", userID))
	defer func() { observability.EndSpan(span, err) }()

	record, err := s.buildRecord(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	if err = s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	observability.RecordEvents.WithLabelValues(observability.RecordSubmitted).Inc()
	return record, nil
}

func (s *RecordService) buildRecord(ctx context.Context, userID string, in SubmitRecordInput) (*models.FishingRecord, error) {
	in.Species = strings.TrimSpace(in.Species)
	in.Weight = strings.TrimSpace(in.Weight)
	in.Location = strings.TrimSpace(in.Location)
	in.County = strings.TrimSpace(in.County)
	in.WaterType = strings.ToLower(strings.TrimSpace(in.WaterType))

	if err := validation.ValidateSpecies(in.Species); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateWeight(in.Weight); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength(in.Length); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLocation(in.Location); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateWaterType(in.WaterType); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	caught, err := validation.ParseDateCaught(in.DateCaught, s.now())
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	record := &models.FishingRecord{
		UserID:      userID,
		Species:     in.Species,
		Weight:      in.Weight,
		Length:      in.Length,
		Location:    in.Location,
		County:      in.County,
		WaterType:   in.WaterType,
		DateCaught:  caught,
		Description: strings.TrimSpace(in.Description),
		Verified:    false,
	}

	if in.LocationID != nil && *in.LocationID != "" {
		loc, err := s.locations.GetByID(ctx, *in.LocationID)
		if err != nil {
			if models.HasCode(err, models.CodeNotFound) {
				return nil, models.NewValidationError("locationId does not reference a known location")
			}
			return nil, err
		}
		record.LocationID = &loc.ID
		if record.County == "" {
			record.County = loc.County
		}
		if record.WaterType == "" {
			record.WaterType = loc.WaterType
		}
	}
	return record, nil
}

// Get returns a record. Unverified records are only visible to their owner
// and to admins; anyone else gets NotFound.
func (s *RecordService) Get(ctx context.Context, viewerID, id string) (*models.FishingRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Verified || (viewerID != "" && viewerID == record.UserID) {
		return record, nil
	}
	if viewerID != "" {
		viewer, err := s.users.GetByID(ctx, viewerID)
		if err == nil && viewer.IsAdmin() {
			return record, nil
		}
		if err != nil && !models.HasCode(err, models.CodeNotFound) {
			return nil, err
		}
	}
	return nil, models.NewNotFoundError("Fishing record", id)
}

func (s *RecordService) ListPublic(ctx context.Context) ([]models.FishingRecord, error) {
	return s.records.ListVerified(ctx)
}

// ListByUser returns all of a user's records, including unverified ones.
func (s *RecordService) ListByUser(ctx context.Context, userID string) ([]models.FishingRecord, error) {
	return s.records.ListByUser(ctx, userID)
}

// Verify approves a record. Approving twice is a no-op.
func (s *RecordService) Verify(ctx context.Context, id string) error {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Verified {
		return nil
	}
	if err := s.records.MarkVerified(ctx, id); err != nil {
		return err
	}
	observability.RecordEvents.WithLabelValues(observability.RecordVerified).Inc()
	return nil
}

// Reject permanently deletes an unverified record.
func (s *RecordService) Reject(ctx context.Context, id string) error {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Verified {
		return models.NewValidationError("Verified records cannot be rejected")
	}
	if err := s.records.DeleteUnverified(ctx, id); err != nil {
		return err
	}
	observability.RecordEvents.WithLabelValues(observability.RecordRejected).Inc()
	return nil
}

// Pending lists records awaiting review, oldest first, with submitter details.
func (s *RecordService) Pending(ctx context.Context) ([]models.PendingRecord, error) {
	records, err := s.records.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.PendingRecord, 0, len(records))
	for _, r := range records {
		p := models.PendingRecord{FishingRecord: r}
		if r.User != nil {
			p.UserFirstName = r.User.FirstName
			p.UserLastName = r.User.LastName
			p.UserEmail = r.User.Email
		}
		out = append(out, p)
	}
	return out, nil
}
