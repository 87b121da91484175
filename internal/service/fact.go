package service

import (
	"context"
	"fmt"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FactService handles community submission and listing of price and schedule entries
type FactService struct {
	resolver  *repository.TypeKeyedResolver
	validator *validator.Validate
}

// Ensure FactService implements FactServiceInterface
var _ FactServiceInterface = (*FactService)(nil)

// NewFactService creates a new fact service
func NewFactService(resolver *repository.TypeKeyedResolver, validator *validator.Validate) *FactService {
	return &FactService{
		resolver:  resolver,
		validator: validator,
	}
}

// SubmitPriceRequest represents a proposed price range
type SubmitPriceRequest struct {
	MinPrice    float64 `json:"min_price" validate:"gte=0"`
	MaxPrice    float64 `json:"max_price" validate:"gte=0"`
	Description string  `json:"description,omitempty" validate:"max=255"`
}

// SubmitScheduleRequest represents proposed opening hours for one weekday
type SubmitScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	OpenTime  string `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required,datetime=15:04"`
}

// SubmitPrice adds an unverified price entry with no upvotes to a listing
func (s *FactService) SubmitPrice(ctx context.Context, et models.EntityType, listingID uuid.UUID, req *SubmitPriceRequest, submitterID uuid.UUID) (*FactResponse, error) {
	if err := checkFactType(et, models.InfoTypePrice); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.MaxPrice < req.MinPrice {
		return nil, apperrors.NewValidationError("max_price", "must not be less than min_price")
	}

	return s.submit(ctx, et, models.InfoTypePrice, listingID, submitterID, func(f models.Fact) {
		p := f.(models.PriceFact).Price()
		p.MinPrice = req.MinPrice
		p.MaxPrice = req.MaxPrice
		p.Description = req.Description
	})
}

// SubmitSchedule adds an unverified schedule entry with no upvotes to a listing
func (s *FactService) SubmitSchedule(ctx context.Context, et models.EntityType, listingID uuid.UUID, req *SubmitScheduleRequest, submitterID uuid.UUID) (*FactResponse, error) {
	if err := checkFactType(et, models.InfoTypeSchedule); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	// HH:MM compares correctly as text
	if req.CloseTime <= req.OpenTime {
		return nil, apperrors.NewValidationError("close_time", "must be after open_time")
	}

	return s.submit(ctx, et, models.InfoTypeSchedule, listingID, submitterID, func(f models.Fact) {
		sd := f.(models.ScheduleFact).Schedule()
		sd.DayOfWeek = req.DayOfWeek
		sd.OpenTime = req.OpenTime
		sd.CloseTime = req.CloseTime
	})
}

func (s *FactService) submit(ctx context.Context, et models.EntityType, it models.InfoType, listingID, submitterID uuid.UUID, fill func(models.Fact)) (*FactResponse, error) {
	if _, err := s.resolver.ResolveListing(ctx, nil, listingID, et); err != nil {
		return nil, err
	}
	store, err := s.resolver.FactStore(et, it)
	if err != nil {
		return nil, err
	}

	fact := store.New()
	base := fact.Base()
	base.ListingID = listingID
	base.SubmittedBy = submitterID
	fill(fact)

	if err := store.Create(ctx, nil, fact); err != nil {
		return nil, fmt.Errorf("failed to create %s entry: %w", it.PathSegment(), err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity_type": et,
		"info_type":   it,
		"listing_id":  listingID,
		"fact_id":     base.ID,
	}).Info("fact submitted")

	resp := toFactResponse(fact)
	return &resp, nil
}

// ListFacts returns a listing's entries of one info type, most upvoted first
func (s *FactService) ListFacts(ctx context.Context, et models.EntityType, it models.InfoType, listingID uuid.UUID) ([]FactResponse, error) {
	if err := checkFactType(et, it); err != nil {
		return nil, err
	}
	if _, err := s.resolver.ResolveListing(ctx, nil, listingID, et); err != nil {
		return nil, err
	}
	store, err := s.resolver.FactStore(et, it)
	if err != nil {
		return nil, err
	}

	facts, err := store.ListByListing(ctx, nil, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", it.PathSegment(), err)
	}
	return toFactResponses(facts), nil
}
