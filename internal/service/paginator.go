package service

import (
	"context"

	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/geo"
	"badminton-directory-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CandidateSet is the outcome of filtering. All means no filter applied and
// every listing of the type is a candidate; otherwise only IDs are.
type CandidateSet struct {
	All bool
	IDs []uuid.UUID
}

// ListingPage is one slice of an ordered search plus the size of the whole result
type ListingPage struct {
	Items []models.Listing
	Total int64
}

// GeoPaginator runs the ordered page fetch and the total count of a search
type GeoPaginator struct{}

// NewGeoPaginator creates a new paginator
func NewGeoPaginator() *GeoPaginator {
	return &GeoPaginator{}
}

// Page fetches page number page (zero-based) of size items. Distance sort
// orders by great-circle distance from ref; property sort by the indexed
// column. The page and the count are separate statements and run concurrently,
// so they are not snapshot-consistent under concurrent writes.
func (p *GeoPaginator) Page(ctx context.Context, store repository.ListingStore, candidates CandidateSet, verifiedOnly bool, sort repository.SortSpec, ref geo.Point, page, size int) (*ListingPage, error) {
	if !candidates.All && len(candidates.IDs) == 0 {
		return &ListingPage{Items: []models.Listing{}, Total: 0}, nil
	}

	offset, err := pageOffset(page, size)
	if err != nil {
		return nil, err
	}

	query := repository.ListingQuery{
		CandidateIDs:         candidates.IDs,
		RestrictToCandidates: !candidates.All,
		VerifiedOnly:         verifiedOnly,
		Sort:                 sort,
		Reference:            ref,
		Limit:                size,
		Offset:               offset,
	}

	var items []models.Listing
	var total int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sort.Field == repository.SortByDistance {
			items, err = store.FindPageByDistance(gctx, query)
		} else {
			items, err = store.FindPageByProperty(gctx, query)
		}
		return err
	})
	g.Go(func() error {
		var err error
		total, err = store.Count(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// a row inserted between the two statements must not yield total < rows seen
	if seen := int64(query.Offset + len(items)); len(items) > 0 && total < seen {
		total = seen
	}
	if items == nil {
		items = []models.Listing{}
	}
	return &ListingPage{Items: items, Total: total}, nil
}
