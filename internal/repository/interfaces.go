package repository

import (
	"context"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Every method taking a tx runs on that transaction when it is non-nil and on
// the repository's own connection otherwise.

// Transactor runs a function as a single unit of work
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ListingStore is the storage handle for one listing table
type ListingStore interface {
	EntityType() models.EntityType
	New() models.Listing
	Create(ctx context.Context, tx *gorm.DB, listing models.Listing) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Listing, error)
	GetWithFacts(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Listing, error)
	AssignOwner(ctx context.Context, tx *gorm.DB, id uuid.UUID, ownerID uuid.UUID) (int64, error)
	FindPageByProperty(ctx context.Context, query ListingQuery) ([]models.Listing, error)
	FindPageByDistance(ctx context.Context, query ListingQuery) ([]models.Listing, error)
	Count(ctx context.Context, query ListingQuery) (int64, error)
}

// FactStore is the storage handle for one upvotable fact table
type FactStore interface {
	EntityType() models.EntityType
	InfoType() models.InfoType
	New() models.Fact
	Create(ctx context.Context, tx *gorm.DB, fact models.Fact) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Fact, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]models.Fact, error)
	ListByListing(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]models.Fact, error)
	IncrementUpvotes(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
	VerifyByListing(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) (int64, error)
	ListingIDs(ctx context.Context, filter FactFilter) ([]uuid.UUID, error)
}

// UpvoteRepositoryInterface defines the interface for upvote ledger operations
type UpvoteRepositoryInterface interface {
	Create(ctx context.Context, tx *gorm.DB, upvote *models.Upvote) error
	Exists(ctx context.Context, tx *gorm.DB, voterID, factID uuid.UUID) (bool, error)
	List(ctx context.Context, filter UpvoteFilter, limit, offset int) ([]models.Upvote, int64, error)
}

// ClaimRepositoryInterface defines the interface for ownership claim operations
type ClaimRepositoryInterface interface {
	Create(ctx context.Context, tx *gorm.DB, claim *models.OwnershipClaim) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.OwnershipClaim, error)
	GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.OwnershipClaim, error)
	Update(ctx context.Context, tx *gorm.DB, claim *models.OwnershipClaim) error
	CountPending(ctx context.Context, entityType models.EntityType, entityID, creatorID uuid.UUID) (int64, error)
	List(ctx context.Context, status *models.ClaimStatus, limit, offset int) ([]models.OwnershipClaim, int64, error)
}

// UserRepositoryInterface defines the interface for user profile operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
