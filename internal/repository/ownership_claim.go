package repository

import (
	"context"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClaimRepository handles database operations for ownership claims
type ClaimRepository struct {
	db *gorm.DB
}

// Ensure ClaimRepository implements ClaimRepositoryInterface
var _ ClaimRepositoryInterface = (*ClaimRepository)(nil)

// NewClaimRepository creates a new ownership claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create creates a new claim
func (r *ClaimRepository) Create(ctx context.Context, tx *gorm.DB, claim *models.OwnershipClaim) error {
	return conn(ctx, r.db, tx).Create(claim).Error
}

// GetByID retrieves a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.OwnershipClaim, error) {
	var claim models.OwnershipClaim
	if err := conn(ctx, r.db, tx).First(&claim, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByIDForUpdate retrieves a claim and row-locks it until tx ends,
// serializing concurrent reviews of the same claim.
func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.OwnershipClaim, error) {
	var claim models.OwnershipClaim
	err := conn(ctx, r.db, tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// Update updates a claim
func (r *ClaimRepository) Update(ctx context.Context, tx *gorm.DB, claim *models.OwnershipClaim) error {
	return conn(ctx, r.db, tx).Save(claim).Error
}

// CountPending counts open claims by one user on one listing
func (r *ClaimRepository) CountPending(ctx context.Context, entityType models.EntityType, entityID, creatorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OwnershipClaim{}).
		Where("entity_type = ? AND entity_id = ? AND creator_id = ? AND status = ?",
			entityType, entityID, creatorID, models.ClaimStatusPending).
		Count(&count).Error
	return count, err
}

// List retrieves claims oldest first, optionally by status
func (r *ClaimRepository) List(ctx context.Context, status *models.ClaimStatus, limit, offset int) ([]models.OwnershipClaim, int64, error) {
	var claims []models.OwnershipClaim
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OwnershipClaim{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at ASC").Order("id").Limit(limit).Offset(offset).Find(&claims).Error; err != nil {
		return nil, 0, err
	}

	return claims, total, nil
}
