package repository

import (
	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/geo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SortField selects how a listing page is ordered
type SortField string

const (
	SortByName     SortField = "name"
	SortByLocation SortField = "location"
	SortByDistance SortField = "distance"
)

// IsValid checks if the SortField is valid
func (s SortField) IsValid() bool {
	switch s {
	case SortByName, SortByLocation, SortByDistance:
		return true
	}
	return false
}

// Column returns the indexed column backing a property sort
func (s SortField) Column() string {
	switch s {
	case SortByLocation:
		return "location"
	default:
		return "name"
	}
}

// SortSpec is the ordering of a listing page
type SortSpec struct {
	Field      SortField
	Descending bool
}

// ListingQuery is the predicate, ordering and window of a listing page
type ListingQuery struct {
	// CandidateIDs limits the page to these ids when RestrictToCandidates is set
	CandidateIDs         []uuid.UUID
	RestrictToCandidates bool
	VerifiedOnly         bool
	Sort                 SortSpec
	Reference            geo.Point
	Limit                int
	Offset               int
}

// Scope applies the query predicate. Ordering and windowing are not part of it,
// so the same scope backs both the page fetch and the total count.
func (q ListingQuery) Scope(db *gorm.DB) *gorm.DB {
	if q.RestrictToCandidates {
		db = db.Where("id IN ?", q.CandidateIDs)
	}
	if q.VerifiedOnly {
		db = db.Where("owner_id IS NOT NULL")
	}
	return db
}

// FactFilter narrows a fact table to the listings it describes.
// Price bounds apply to price tables and DaysOfWeek to schedule tables.
type FactFilter struct {
	MinPrice   *float64
	MaxPrice   *float64
	DaysOfWeek []int
}

// UpvoteFilter narrows the upvote feed; nil fields are unconstrained
type UpvoteFilter struct {
	VoterID    *uuid.UUID
	EntityType *models.EntityType
	InfoType   *models.InfoType
}
