package repository

import (
	"context"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpvoteRepository handles database operations for the upvote ledger
type UpvoteRepository struct {
	db *gorm.DB
}

// Ensure UpvoteRepository implements UpvoteRepositoryInterface
var _ UpvoteRepositoryInterface = (*UpvoteRepository)(nil)

// NewUpvoteRepository creates a new upvote repository
func NewUpvoteRepository(db *gorm.DB) *UpvoteRepository {
	return &UpvoteRepository{db: db}
}

// Create records a vote. The (voter_id, fact_id) unique index is the arbiter for
// concurrent duplicates; a violation is reported as AlreadyVotedError.
func (r *UpvoteRepository) Create(ctx context.Context, tx *gorm.DB, upvote *models.Upvote) error {
	err := conn(ctx, r.db, tx).Create(upvote).Error
	if isUniqueViolation(err) {
		return apperrors.NewAlreadyVotedError(upvote.VoterID.String(), upvote.FactID.String())
	}
	return err
}

// Exists reports whether the voter already upvoted the fact
func (r *UpvoteRepository) Exists(ctx context.Context, tx *gorm.DB, voterID, factID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db, tx).Model(&models.Upvote{}).
		Where("voter_id = ? AND fact_id = ?", voterID, factID).
		Count(&count).Error
	return count > 0, err
}

// List returns upvotes newest first
func (r *UpvoteRepository) List(ctx context.Context, filter UpvoteFilter, limit, offset int) ([]models.Upvote, int64, error) {
	var upvotes []models.Upvote
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Upvote{})
	if filter.VoterID != nil {
		query = query.Where("voter_id = ?", *filter.VoterID)
	}
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.InfoType != nil {
		query = query.Where("info_type = ?", *filter.InfoType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Order("id").Limit(limit).Offset(offset).Find(&upvotes).Error; err != nil {
		return nil, 0, err
	}

	return upvotes, total, nil
}
