package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/geo"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// SearchSettings holds the search defaults taken from configuration
type SearchSettings struct {
	Home            geo.Point
	DefaultPageSize int
	MaxPageSize     int
}

// ListingService handles business logic for listings and listing search
type ListingService struct {
	resolver    *repository.TypeKeyedResolver
	intersector *FilterIntersector
	paginator   *GeoPaginator
	settings    SearchSettings
	validator   *validator.Validate
}

// Ensure ListingService implements ListingServiceInterface
var _ ListingServiceInterface = (*ListingService)(nil)

// NewListingService creates a new listing service
func NewListingService(resolver *repository.TypeKeyedResolver, settings SearchSettings, validator *validator.Validate) *ListingService {
	if settings.DefaultPageSize <= 0 {
		settings.DefaultPageSize = DefaultPageSize
	}
	if settings.MaxPageSize <= 0 {
		settings.MaxPageSize = MaxPageSize
	}
	return &ListingService{
		resolver:    resolver,
		intersector: NewFilterIntersector(resolver),
		paginator:   NewGeoPaginator(),
		settings:    settings,
		validator:   validator,
	}
}

// CreateListingRequest represents the request to create a listing.
// Only the attribute matching the listing type is used.
type CreateListingRequest struct {
	Name            string                 `json:"name" validate:"required,min=1,max=200"`
	Location        string                 `json:"location" validate:"max=500"`
	Latitude        *float64               `json:"latitude" validate:"required,latitude"`
	Longitude       *float64               `json:"longitude" validate:"required,longitude"`
	Description     string                 `json:"description,omitempty" validate:"max=5000"`
	Contact         map[string]interface{} `json:"contact,omitempty" swaggertype:"object"`
	NumberOfCourts  int                    `json:"number_of_courts,omitempty" validate:"min=0"`
	ExperienceYears int                    `json:"experience_years,omitempty" validate:"min=0"`
	TurnaroundDays  int                    `json:"turnaround_days,omitempty" validate:"min=0"`
}

// ListingSearchQuery represents the inputs of a listing search
type ListingSearchQuery struct {
	MinPrice      *float64
	MaxPrice      *float64
	DaysOfWeek    []int
	VerifiedOnly  bool
	SortBy        string
	SortDirection string
	Latitude      *float64
	Longitude     *float64
	Page          int
	Size          int
}

// CreateListing creates an unowned listing of the given type
func (s *ListingService) CreateListing(ctx context.Context, et models.EntityType, req *CreateListingRequest, creatorID uuid.UUID) (*ListingResponse, error) {
	if err := checkEntityType(et); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	store, err := s.resolver.ListingStore(et)
	if err != nil {
		return nil, err
	}

	listing := store.New()
	base := listing.Base()
	base.Name = strings.TrimSpace(req.Name)
	base.Location = strings.TrimSpace(req.Location)
	base.Latitude = *req.Latitude
	base.Longitude = *req.Longitude
	base.Description = req.Description
	base.Contact = req.Contact
	base.CreatorID = creatorID
	switch l := listing.(type) {
	case *models.Court:
		l.NumberOfCourts = req.NumberOfCourts
	case *models.Coach:
		l.ExperienceYears = req.ExperienceYears
	case *models.Stringer:
		l.TurnaroundDays = req.TurnaroundDays
	}

	if err := store.Create(ctx, nil, listing); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", strings.ToLower(string(et)), err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity_type": et,
		"listing_id":  base.ID,
	}).Info("listing created")

	resp := toListingResponse(listing)
	return &resp, nil
}

// GetListing retrieves a listing with its facts, most upvoted first
func (s *ListingService) GetListing(ctx context.Context, et models.EntityType, id uuid.UUID) (*ListingResponse, error) {
	if err := checkEntityType(et); err != nil {
		return nil, err
	}
	store, err := s.resolver.ListingStore(et)
	if err != nil {
		return nil, err
	}

	listing, err := store.GetWithFacts(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	resp := toListingResponse(listing)
	sortByUpvotes(resp.Prices)
	sortByUpvotes(resp.Schedules)
	return &resp, nil
}

// SearchListings filters listings by price and schedule facts, then returns
// one ordered page with the total size of the filtered result.
func (s *ListingService) SearchListings(ctx context.Context, et models.EntityType, q *ListingSearchQuery) (resp *ListingListResponse, err error) {
	ctx, span := tracer.Start(ctx, "ListingService.SearchListings")
	defer func() { endSpan(span, err) }()

	if err := checkEntityType(et); err != nil {
		return nil, err
	}
	params, err := s.parseSearch(q)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("entity_type", string(et)),
		attribute.String("sort_by", string(params.sort.Field)),
		attribute.Int("page", params.page),
	)

	store, err := s.resolver.ListingStore(et)
	if err != nil {
		return nil, err
	}

	candidates := CandidateSet{All: true}
	if et.Supports(models.InfoTypePrice) {
		ids, err := s.intersector.FindCandidateIDs(ctx, et, params.minPrice, params.maxPrice, params.days)
		if err != nil {
			return nil, fmt.Errorf("failed to filter listings: %w", err)
		}
		candidates = CandidateSet{IDs: ids}
		span.SetAttributes(attribute.Int("candidates", len(ids)))
	}

	page, err := s.paginator.Page(ctx, store, candidates, params.verifiedOnly, params.sort, params.ref, params.page, params.size)
	if err != nil {
		return nil, fmt.Errorf("failed to page listings: %w", err)
	}

	listings := make([]ListingResponse, 0, len(page.Items))
	for _, item := range page.Items {
		r := toListingResponse(item)
		d := geo.DistanceKm(params.ref, geo.Point{Latitude: item.Base().Latitude, Longitude: item.Base().Longitude})
		r.DistanceKm = &d
		listings = append(listings, r)
	}

	return &ListingListResponse{
		Listings: listings,
		Total:    page.Total,
		Page:     params.page,
		PageSize: params.size,
	}, nil
}

type searchParams struct {
	minPrice     float64
	maxPrice     *float64
	days         []int
	verifiedOnly bool
	sort         repository.SortSpec
	ref          geo.Point
	page         int
	size         int
}

// parseSearch applies defaults: minPrice 0, maxPrice unbounded, distance sort
// ascending from the home point, first page of the default size.
func (s *ListingService) parseSearch(q *ListingSearchQuery) (*searchParams, error) {
	if q == nil {
		q = &ListingSearchQuery{}
	}
	p := &searchParams{
		maxPrice:     q.MaxPrice,
		verifiedOnly: q.VerifiedOnly,
		ref:          s.settings.Home,
	}

	if q.MinPrice != nil {
		if *q.MinPrice < 0 {
			return nil, apperrors.NewValidationError("minPrice", "must not be negative")
		}
		p.minPrice = *q.MinPrice
	}
	if q.MaxPrice != nil && *q.MaxPrice < p.minPrice {
		return nil, apperrors.NewValidationError("maxPrice", "must not be less than minPrice")
	}

	for _, d := range q.DaysOfWeek {
		if d < 1 || d > 7 {
			return nil, apperrors.NewValidationError("daysOfWeek", "must be between 1 (Monday) and 7 (Sunday)")
		}
	}
	p.days = q.DaysOfWeek

	field := repository.SortByDistance
	if q.SortBy != "" {
		field = repository.SortField(strings.ToLower(q.SortBy))
		if !field.IsValid() {
			return nil, apperrors.NewValidationError("sortBy", "must be one of name, location, distance")
		}
	}
	switch strings.ToLower(q.SortDirection) {
	case "", "asc":
	case "desc":
		p.sort.Descending = true
	default:
		return nil, apperrors.NewValidationError("sortDirection", "must be asc or desc")
	}
	p.sort.Field = field

	if (q.Latitude == nil) != (q.Longitude == nil) {
		return nil, apperrors.NewValidationError("lat", "lat and lon must be sent together")
	}
	if q.Latitude != nil {
		p.ref = geo.Point{Latitude: *q.Latitude, Longitude: *q.Longitude}
		if !p.ref.Valid() {
			return nil, apperrors.NewValidationError("lat", "coordinates out of range")
		}
	}

	page, size, err := normalizePage(q.Page, q.Size, s.settings.DefaultPageSize, s.settings.MaxPageSize)
	if err != nil {
		return nil, err
	}
	p.page, p.size = page, size
	return p, nil
}

func sortByUpvotes(facts []FactResponse) {
	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].Upvotes > facts[j].Upvotes
	})
}
