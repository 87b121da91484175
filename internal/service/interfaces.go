package service

import (
	"context"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ListingServiceInterface defines the interface for listing service
type ListingServiceInterface interface {
	CreateListing(ctx context.Context, et models.EntityType, req *CreateListingRequest, creatorID uuid.UUID) (*ListingResponse, error)
	GetListing(ctx context.Context, et models.EntityType, id uuid.UUID) (*ListingResponse, error)
	SearchListings(ctx context.Context, et models.EntityType, q *ListingSearchQuery) (*ListingListResponse, error)
}

// FactServiceInterface defines the interface for fact service
type FactServiceInterface interface {
	SubmitPrice(ctx context.Context, et models.EntityType, listingID uuid.UUID, req *SubmitPriceRequest, submitterID uuid.UUID) (*FactResponse, error)
	SubmitSchedule(ctx context.Context, et models.EntityType, listingID uuid.UUID, req *SubmitScheduleRequest, submitterID uuid.UUID) (*FactResponse, error)
	ListFacts(ctx context.Context, et models.EntityType, it models.InfoType, listingID uuid.UUID) ([]FactResponse, error)
}

// UpvoteServiceInterface defines the interface for upvote service
type UpvoteServiceInterface interface {
	AddUpvote(ctx context.Context, req *AddUpvoteRequest, voterID uuid.UUID) (*UpvoteResponse, error)
	ListUpvotes(ctx context.Context, q *UpvoteListQuery) (*UpvoteListResponse, error)
}

// ClaimServiceInterface defines the interface for ownership claim service
type ClaimServiceInterface interface {
	CreateClaim(ctx context.Context, req *CreateClaimRequest, creatorID uuid.UUID) (*ClaimResponse, error)
	GetClaim(ctx context.Context, id uuid.UUID) (*ClaimResponse, error)
	ListClaims(ctx context.Context, status *models.ClaimStatus, page, size int) (*ClaimListResponse, error)
	Approve(ctx context.Context, claimID, reviewerID uuid.UUID) (*ClaimResponse, error)
	Reject(ctx context.Context, claimID, reviewerID uuid.UUID) (*ClaimResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	RegisterProfile(ctx context.Context, userID uuid.UUID, req *RegisterProfileRequest) (*UserProfileResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileResponse, error)
}
