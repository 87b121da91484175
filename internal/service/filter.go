package service

import (
	"context"

	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FilterIntersector computes the candidate listing ids of a search from the
// price and schedule fact tables of one listing type.
type FilterIntersector struct {
	resolver *repository.TypeKeyedResolver
}

// NewFilterIntersector creates a new filter intersector
func NewFilterIntersector(resolver *repository.TypeKeyedResolver) *FilterIntersector {
	return &FilterIntersector{resolver: resolver}
}

// FindCandidateIDs returns the listings with a price entry inside
// [minPrice, maxPrice]. When daysOfWeek is non-empty the result is further
// intersected with the listings open on any of those days; an empty day list
// applies no schedule constraint. A nil maxPrice is unbounded.
func (f *FilterIntersector) FindCandidateIDs(ctx context.Context, et models.EntityType, minPrice float64, maxPrice *float64, daysOfWeek []int) ([]uuid.UUID, error) {
	priceStore, err := f.resolver.FactStore(et, models.InfoTypePrice)
	if err != nil {
		return nil, err
	}
	var scheduleStore repository.FactStore
	if len(daysOfWeek) > 0 {
		if scheduleStore, err = f.resolver.FactStore(et, models.InfoTypeSchedule); err != nil {
			return nil, err
		}
	}

	var priceIDs, scheduleIDs []uuid.UUID
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := priceStore.ListingIDs(gctx, repository.FactFilter{MinPrice: &minPrice, MaxPrice: maxPrice})
		priceIDs = ids
		return err
	})
	if scheduleStore != nil {
		g.Go(func() error {
			ids, err := scheduleStore.ListingIDs(gctx, repository.FactFilter{DaysOfWeek: daysOfWeek})
			scheduleIDs = ids
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if scheduleStore == nil {
		return dedupe(priceIDs), nil
	}
	return intersect(priceIDs, scheduleIDs), nil
}

// intersect keeps the ids of a that also occur in b, in a's order
func intersect(a, b []uuid.UUID) []uuid.UUID {
	in := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := make([]uuid.UUID, 0, len(a))
	for _, id := range dedupe(a) {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
