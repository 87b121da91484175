package repository

import (
	"context"
	"fmt"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// factPtr constrains PT to a pointer to a concrete fact model
type factPtr[T any] interface {
	*T
	models.Fact
}

// FactRepository handles database operations for one fact table
type FactRepository[T any, PT factPtr[T]] struct {
	db         *gorm.DB
	entityType models.EntityType
	infoType   models.InfoType
}

// NewFactRepository creates a repository for the fact table of T
func NewFactRepository[T any, PT factPtr[T]](db *gorm.DB) *FactRepository[T, PT] {
	zero := PT(new(T))
	return &FactRepository[T, PT]{db: db, entityType: zero.EntityType(), infoType: zero.InfoType()}
}

// Ensure FactRepository implements FactStore
var _ FactStore = (*FactRepository[models.CourtPrice, *models.CourtPrice])(nil)

// EntityType returns the listing type this store's facts describe
func (r *FactRepository[T, PT]) EntityType() models.EntityType {
	return r.entityType
}

// InfoType returns the kind of fact this store holds
func (r *FactRepository[T, PT]) InfoType() models.InfoType {
	return r.infoType
}

// New returns an empty fact of this store's type
func (r *FactRepository[T, PT]) New() models.Fact {
	return PT(new(T))
}

// Create inserts a fact. Upvotes and verification always start at zero.
func (r *FactRepository[T, PT]) Create(ctx context.Context, tx *gorm.DB, fact models.Fact) error {
	item, ok := fact.(PT)
	if !ok {
		return fmt.Errorf("%s/%s store cannot create %T", r.entityType, r.infoType, fact)
	}
	base := item.Base()
	base.Upvotes = 0
	base.Verified = false
	return conn(ctx, r.db, tx).Create(item).Error
}

// GetByID retrieves a fact by ID
func (r *FactRepository[T, PT]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Fact, error) {
	var item T
	if err := conn(ctx, r.db, tx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return PT(&item), nil
}

// GetByIDs retrieves the facts with the given IDs in one query; missing IDs are skipped
func (r *FactRepository[T, PT]) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]models.Fact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []T
	if err := conn(ctx, r.db, tx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	out := make([]models.Fact, len(items))
	for i := range items {
		out[i] = PT(&items[i])
	}
	return out, nil
}

// ListByListing returns a listing's facts, most upvoted first
func (r *FactRepository[T, PT]) ListByListing(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]models.Fact, error) {
	var items []T
	err := conn(ctx, r.db, tx).
		Where("listing_id = ?", listingID).
		Order("upvotes DESC").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.Fact, len(items))
	for i := range items {
		out[i] = PT(&items[i])
	}
	return out, nil
}

// IncrementUpvotes bumps the counter in place so concurrent voters never lose updates
func (r *FactRepository[T, PT]) IncrementUpvotes(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := conn(ctx, r.db, tx).Model(PT(new(T))).Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + ?", 1))
	return res.RowsAffected, res.Error
}

// VerifyByListing marks every unverified fact of a listing as verified
func (r *FactRepository[T, PT]) VerifyByListing(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db, tx).Model(PT(new(T))).
		Where("listing_id = ? AND verified = ?", listingID, false).
		Update("verified", true)
	return res.RowsAffected, res.Error
}

// ListingIDs returns the distinct listings having at least one fact matching the filter.
// A price entry matches when its whole range lies inside [MinPrice, MaxPrice].
func (r *FactRepository[T, PT]) ListingIDs(ctx context.Context, filter FactFilter) ([]uuid.UUID, error) {
	db := conn(ctx, r.db, nil).Model(PT(new(T)))
	switch r.infoType {
	case models.InfoTypePrice:
		if filter.MinPrice != nil {
			db = db.Where("min_price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("max_price <= ?", *filter.MaxPrice)
		}
	case models.InfoTypeSchedule:
		if len(filter.DaysOfWeek) > 0 {
			db = db.Where("day_of_week IN ?", filter.DaysOfWeek)
		}
	}

	ids := []uuid.UUID{}
	if err := db.Distinct().Pluck("listing_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
