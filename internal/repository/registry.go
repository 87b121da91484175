package repository

import (
	"fmt"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"

	"gorm.io/gorm"
)

// FactKey identifies one fact collection
type FactKey struct {
	EntityType models.EntityType
	InfoType   models.InfoType
}

func (k FactKey) String() string {
	return fmt.Sprintf("%s/%s", k.EntityType, k.InfoType)
}

// EntityRegistry collects the storage handles discovered at startup.
// Handles that declare no tag are left out; two handles with the same tag are
// a wiring mistake and fail construction.
type EntityRegistry struct {
	listings map[models.EntityType]ListingStore
	facts    map[FactKey]FactStore
}

// NewEntityRegistry indexes listing and fact stores by their declared tags
func NewEntityRegistry(listings []ListingStore, facts []FactStore) (*EntityRegistry, error) {
	reg := &EntityRegistry{
		listings: make(map[models.EntityType]ListingStore, len(listings)),
		facts:    make(map[FactKey]FactStore, len(facts)),
	}

	for _, store := range listings {
		if store == nil || store.EntityType() == "" {
			continue
		}
		et := store.EntityType()
		if _, dup := reg.listings[et]; dup {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("duplicate listing store for %s", et))
		}
		reg.listings[et] = store
	}

	for _, store := range facts {
		if store == nil || store.EntityType() == "" || store.InfoType() == "" {
			continue
		}
		key := FactKey{EntityType: store.EntityType(), InfoType: store.InfoType()}
		if _, dup := reg.facts[key]; dup {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("duplicate fact store for %s", key))
		}
		reg.facts[key] = store
	}

	return reg, nil
}

// NewDefaultRegistry registers the gorm stores of every listing and fact table
func NewDefaultRegistry(db *gorm.DB) (*EntityRegistry, error) {
	return NewEntityRegistry(
		[]ListingStore{
			NewCourtRepository(db),
			NewCoachRepository(db),
			NewStringerRepository(db),
		},
		[]FactStore{
			NewFactRepository[models.CourtPrice](db),
			NewFactRepository[models.CourtSchedule](db),
			NewFactRepository[models.CoachPrice](db),
			NewFactRepository[models.CoachSchedule](db),
		},
	)
}

// Listing returns the listing store registered for an entity type
func (r *EntityRegistry) Listing(et models.EntityType) (ListingStore, bool) {
	store, ok := r.listings[et]
	return store, ok
}

// Fact returns the fact store registered for an (entity, info) pair
func (r *EntityRegistry) Fact(et models.EntityType, it models.InfoType) (FactStore, bool) {
	store, ok := r.facts[FactKey{EntityType: et, InfoType: it}]
	return store, ok
}

// Len returns the number of registered listing and fact stores
func (r *EntityRegistry) Len() (listings, facts int) {
	return len(r.listings), len(r.facts)
}
