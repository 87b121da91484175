package service

import (
	"time"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactResponse represents a price or schedule entry. Only the payload fields of
// the entry's info type are set.
type FactResponse struct {
	ID          uuid.UUID         `json:"id"`
	ListingID   uuid.UUID         `json:"listing_id"`
	EntityType  models.EntityType `json:"entity_type"`
	InfoType    models.InfoType   `json:"info_type"`
	SubmittedBy uuid.UUID         `json:"submitted_by"`
	Upvotes     int               `json:"upvotes"`
	Verified    bool              `json:"verified"`
	MinPrice    *float64          `json:"min_price,omitempty"`
	MaxPrice    *float64          `json:"max_price,omitempty"`
	Description string            `json:"description,omitempty"`
	DayOfWeek   *int              `json:"day_of_week,omitempty"`
	OpenTime    string            `json:"open_time,omitempty"`
	CloseTime   string            `json:"close_time,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

// ListingResponse represents a court, coach or stringer
type ListingResponse struct {
	ID              uuid.UUID              `json:"id"`
	EntityType      models.EntityType      `json:"entity_type"`
	Name            string                 `json:"name"`
	Location        string                 `json:"location"`
	Latitude        float64                `json:"latitude"`
	Longitude       float64                `json:"longitude"`
	Description     string                 `json:"description,omitempty"`
	Contact         map[string]interface{} `json:"contact,omitempty" swaggertype:"object"`
	OwnerID         *uuid.UUID             `json:"owner_id,omitempty"`
	CreatorID       uuid.UUID              `json:"creator_id"`
	Verified        bool                   `json:"verified"`
	NumberOfCourts  *int                   `json:"number_of_courts,omitempty"`
	ExperienceYears *int                   `json:"experience_years,omitempty"`
	TurnaroundDays  *int                   `json:"turnaround_days,omitempty"`
	Prices          []FactResponse         `json:"prices,omitempty"`
	Schedules       []FactResponse         `json:"schedules,omitempty"`
	DistanceKm      *float64               `json:"distance_km,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// ListingListResponse represents a page of listings
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// UserProfileResponse represents a public user profile
type UserProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// UpvoteResponse represents a vote with its target fact and voter profile.
// Fact and Voter are nil when they can no longer be loaded.
type UpvoteResponse struct {
	ID         uuid.UUID            `json:"id"`
	VoterID    uuid.UUID            `json:"voter_id"`
	FactID     uuid.UUID            `json:"fact_id"`
	EntityType models.EntityType    `json:"entity_type"`
	InfoType   models.InfoType      `json:"info_type"`
	Fact       *FactResponse        `json:"fact"`
	Voter      *UserProfileResponse `json:"voter"`
	CreatedAt  string               `json:"created_at"`
}

// UpvoteListResponse represents a page of the upvote feed
type UpvoteListResponse struct {
	Upvotes  []UpvoteResponse `json:"upvotes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ClaimResponse represents an ownership claim
type ClaimResponse struct {
	ID         uuid.UUID          `json:"id"`
	EntityType models.EntityType  `json:"entity_type"`
	EntityID   uuid.UUID          `json:"entity_id"`
	CreatorID  uuid.UUID          `json:"creator_id"`
	Status     models.ClaimStatus `json:"status"`
	Message    string             `json:"message,omitempty"`
	Files      []string           `json:"files"`
	ReviewedBy *uuid.UUID         `json:"reviewed_by,omitempty"`
	ReviewedAt *string            `json:"reviewed_at,omitempty"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// ClaimListResponse represents a page of ownership claims
type ClaimListResponse struct {
	Claims   []ClaimResponse `json:"claims"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func toFactResponse(fact models.Fact) FactResponse {
	base := fact.Base()
	resp := FactResponse{
		ID:          base.ID,
		ListingID:   base.ListingID,
		EntityType:  fact.EntityType(),
		InfoType:    fact.InfoType(),
		SubmittedBy: base.SubmittedBy,
		Upvotes:     base.Upvotes,
		Verified:    base.Verified,
		CreatedAt:   base.CreatedAt.Format(time.RFC3339),
	}
	switch f := fact.(type) {
	case models.PriceFact:
		p := f.Price()
		minPrice, maxPrice := p.MinPrice, p.MaxPrice
		resp.MinPrice = &minPrice
		resp.MaxPrice = &maxPrice
		resp.Description = p.Description
	case models.ScheduleFact:
		s := f.Schedule()
		day := s.DayOfWeek
		resp.DayOfWeek = &day
		resp.OpenTime = s.OpenTime
		resp.CloseTime = s.CloseTime
	}
	return resp
}

func toFactResponses(facts []models.Fact) []FactResponse {
	out := make([]FactResponse, 0, len(facts))
	for _, f := range facts {
		out = append(out, toFactResponse(f))
	}
	return out
}

func toListingResponse(listing models.Listing) ListingResponse {
	base := listing.Base()
	resp := ListingResponse{
		ID:          base.ID,
		EntityType:  listing.EntityType(),
		Name:        base.Name,
		Location:    base.Location,
		Latitude:    base.Latitude,
		Longitude:   base.Longitude,
		Description: base.Description,
		Contact:     base.Contact,
		OwnerID:     base.OwnerID,
		CreatorID:   base.CreatorID,
		Verified:    listing.IsVerified(),
		CreatedAt:   base.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   base.UpdatedAt.Format(time.RFC3339),
	}
	switch l := listing.(type) {
	case *models.Court:
		n := l.NumberOfCourts
		resp.NumberOfCourts = &n
	case *models.Coach:
		n := l.ExperienceYears
		resp.ExperienceYears = &n
	case *models.Stringer:
		n := l.TurnaroundDays
		resp.TurnaroundDays = &n
	}
	for _, it := range listing.EntityType().InfoTypes() {
		facts := toFactResponses(listing.Facts(it))
		switch it {
		case models.InfoTypePrice:
			resp.Prices = facts
		case models.InfoTypeSchedule:
			resp.Schedules = facts
		}
	}
	return resp
}

func toUserProfileResponse(user *models.User) *UserProfileResponse {
	return &UserProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}

func toClaimResponse(claim *models.OwnershipClaim) *ClaimResponse {
	files := []string(claim.Files)
	if files == nil {
		files = []string{}
	}
	resp := &ClaimResponse{
		ID:         claim.ID,
		EntityType: claim.EntityType,
		EntityID:   claim.EntityID,
		CreatorID:  claim.CreatorID,
		Status:     claim.Status,
		Message:    claim.Message,
		Files:      files,
		ReviewedBy: claim.ReviewedBy,
		CreatedAt:  claim.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  claim.UpdatedAt.Format(time.RFC3339),
	}
	if claim.ReviewedAt != nil {
		at := claim.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &at
	}
	return resp
}
