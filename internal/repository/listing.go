package repository

import (
	"context"
	"fmt"

	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/geo"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingPtr constrains PT to a pointer to a concrete listing model
type listingPtr[T any] interface {
	*T
	models.Listing
}

// ListingRepository handles database operations for one listing table
type ListingRepository[T any, PT listingPtr[T]] struct {
	db         *gorm.DB
	entityType models.EntityType
}

// NewListingRepository creates a repository for the listing table of T
func NewListingRepository[T any, PT listingPtr[T]](db *gorm.DB) *ListingRepository[T, PT] {
	return &ListingRepository[T, PT]{db: db, entityType: PT(new(T)).EntityType()}
}

// NewCourtRepository creates a new court repository
func NewCourtRepository(db *gorm.DB) *ListingRepository[models.Court, *models.Court] {
	return NewListingRepository[models.Court](db)
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *gorm.DB) *ListingRepository[models.Coach, *models.Coach] {
	return NewListingRepository[models.Coach](db)
}

// NewStringerRepository creates a new stringer repository
func NewStringerRepository(db *gorm.DB) *ListingRepository[models.Stringer, *models.Stringer] {
	return NewListingRepository[models.Stringer](db)
}

// Ensure ListingRepository implements ListingStore
var _ ListingStore = (*ListingRepository[models.Court, *models.Court])(nil)

// EntityType returns the tag this store is registered under
func (r *ListingRepository[T, PT]) EntityType() models.EntityType {
	return r.entityType
}

// New returns an empty listing of this store's type
func (r *ListingRepository[T, PT]) New() models.Listing {
	return PT(new(T))
}

// Create inserts the listing itself. The owner column and fact associations are
// never written here: ownership is granted only by an approved claim.
func (r *ListingRepository[T, PT]) Create(ctx context.Context, tx *gorm.DB, listing models.Listing) error {
	item, ok := listing.(PT)
	if !ok {
		return fmt.Errorf("%s store cannot create %T", r.entityType, listing)
	}
	return conn(ctx, r.db, tx).Omit("OwnerID", clause.Associations).Create(item).Error
}

// GetByID retrieves a listing without its facts
func (r *ListingRepository[T, PT]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Listing, error) {
	var item T
	if err := conn(ctx, r.db, tx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return PT(&item), nil
}

// GetWithFacts retrieves a listing with every fact collection preloaded
func (r *ListingRepository[T, PT]) GetWithFacts(ctx context.Context, tx *gorm.DB, id uuid.UUID) (models.Listing, error) {
	var item T
	if err := conn(ctx, r.db, tx).Preload(clause.Associations).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return PT(&item), nil
}

// AssignOwner sets the verified owner of a listing and returns the rows touched
func (r *ListingRepository[T, PT]) AssignOwner(ctx context.Context, tx *gorm.DB, id uuid.UUID, ownerID uuid.UUID) (int64, error) {
	res := conn(ctx, r.db, tx).Model(PT(new(T))).Where("id = ?", id).Update("owner_id", ownerID)
	return res.RowsAffected, res.Error
}

// FindPageByProperty returns one page ordered by an indexed column, ties broken by id
func (r *ListingRepository[T, PT]) FindPageByProperty(ctx context.Context, query ListingQuery) ([]models.Listing, error) {
	var items []T
	err := conn(ctx, r.db, nil).
		Scopes(query.Scope).
		Order(clause.OrderByColumn{Column: clause.Column{Name: query.Sort.Field.Column()}, Desc: query.Sort.Descending}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Limit(query.Limit).
		Offset(query.Offset).
		Preload(clause.Associations).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return r.wrap(items), nil
}

// FindPageByDistance returns one page ordered by great-circle distance from
// query.Reference. Equal distances fall back to id ascending in both directions.
func (r *ListingRepository[T, PT]) FindPageByDistance(ctx context.Context, query ListingQuery) ([]models.Listing, error) {
	direction := "ASC"
	if query.Sort.Descending {
		direction = "DESC"
	}
	order := clause.OrderBy{Expression: clause.Expr{
		SQL:                geo.HaversineSQL("latitude", "longitude") + " " + direction + ", id ASC",
		Vars:               geo.HaversineArgs(query.Reference),
		WithoutParentheses: true,
	}}

	var items []T
	err := conn(ctx, r.db, nil).
		Scopes(query.Scope).
		Clauses(order).
		Limit(query.Limit).
		Offset(query.Offset).
		Preload(clause.Associations).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return r.wrap(items), nil
}

// Count returns the number of listings matching the query predicate
func (r *ListingRepository[T, PT]) Count(ctx context.Context, query ListingQuery) (int64, error) {
	var total int64
	err := conn(ctx, r.db, nil).Model(PT(new(T))).Scopes(query.Scope).Count(&total).Error
	return total, err
}

func (r *ListingRepository[T, PT]) wrap(items []T) []models.Listing {
	out := make([]models.Listing, len(items))
	for i := range items {
		out[i] = PT(&items[i])
	}
	return out
}
