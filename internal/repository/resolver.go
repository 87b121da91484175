package repository

import (
	"context"
	"errors"
	"fmt"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TypeKeyedResolver dispatches reads and writes to the store owning a given
// entity type or (entity, info) pair.
type TypeKeyedResolver struct {
	listings map[models.EntityType]ListingStore
	facts    map[models.EntityType]map[models.InfoType]FactStore
}

// NewTypeKeyedResolver builds the dispatch tables from a registry. Every entity
// type needs a listing store and every fact collection it carries needs a fact
// store, otherwise construction fails with a ConfigurationError.
func NewTypeKeyedResolver(reg *EntityRegistry) (*TypeKeyedResolver, error) {
	r := &TypeKeyedResolver{
		listings: make(map[models.EntityType]ListingStore),
		facts:    make(map[models.EntityType]map[models.InfoType]FactStore),
	}

	for _, et := range models.EntityTypes {
		listing, ok := reg.Listing(et)
		if !ok {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("no listing store registered for %s", et))
		}
		r.listings[et] = listing

		r.facts[et] = make(map[models.InfoType]FactStore)
		for _, it := range et.InfoTypes() {
			fact, ok := reg.Fact(et, it)
			if !ok {
				return nil, apperrors.NewConfigurationError(fmt.Sprintf("no fact store registered for %s/%s", et, it))
			}
			r.facts[et][it] = fact
		}
	}

	return r, nil
}

// ListingStore returns the store for an entity type
func (r *TypeKeyedResolver) ListingStore(et models.EntityType) (ListingStore, error) {
	store, ok := r.listings[et]
	if !ok {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("no listing store registered for %s", et))
	}
	return store, nil
}

// FactStore returns the store for an (entity, info) pair
func (r *TypeKeyedResolver) FactStore(et models.EntityType, it models.InfoType) (FactStore, error) {
	store, ok := r.facts[et][it]
	if !ok {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("no fact store registered for %s/%s", et, it))
	}
	return store, nil
}

// ResolveListing fetches a listing by id from its type's table
func (r *TypeKeyedResolver) ResolveListing(ctx context.Context, tx *gorm.DB, id uuid.UUID, et models.EntityType) (models.Listing, error) {
	store, err := r.ListingStore(et)
	if err != nil {
		return nil, err
	}
	listing, err := store.GetByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

// ResolveFact fetches a fact by id from its (entity, info) table
func (r *TypeKeyedResolver) ResolveFact(ctx context.Context, tx *gorm.DB, id uuid.UUID, et models.EntityType, it models.InfoType) (models.Fact, error) {
	store, err := r.FactStore(et, it)
	if err != nil {
		return nil, err
	}
	fact, err := store.GetByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFactNotFound
		}
		return nil, err
	}
	return fact, nil
}

// ResolveFacts fetches facts of one (entity, info) table by id. IDs with no
// row are absent from the returned map.
func (r *TypeKeyedResolver) ResolveFacts(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, et models.EntityType, it models.InfoType) (map[uuid.UUID]models.Fact, error) {
	store, err := r.FactStore(et, it)
	if err != nil {
		return nil, err
	}
	facts, err := store.GetByIDs(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Fact, len(facts))
	for _, f := range facts {
		out[f.Base().ID] = f
	}
	return out, nil
}
