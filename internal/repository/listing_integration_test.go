//go:build integration
// +build integration

package repository

import (
	"context"
	"sort"
	"testing"

	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/geo"
	"badminton-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ListingRepositoryTestSuite tests the generic listing repository against Postgres
type ListingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	courts        *ListingRepository[models.Court, *models.Court]
	facts         *FactRepository[models.CourtPrice, *models.CourtPrice]
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ListingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.courts = NewCourtRepository(suite.baseTestSuite.DB)
	suite.facts = NewFactRepository[models.CourtPrice](suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ListingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ListingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ListingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ListingRepositoryTestSuite) createCourt(name string, lat, lng float64) *models.Court {
	court := suite.factories.Listing.Court(name, lat, lng)
	suite.Require().NoError(suite.courts.Create(suite.ctx, nil, court))
	return court
}

// TestCreateNeverWritesOwner tests that a new listing starts unverified
func (suite *ListingRepositoryTestSuite) TestCreateNeverWritesOwner() {
	court := suite.factories.Listing.Court("Owned Court", 49.25, -123.1)
	owner := uuid.New()
	court.OwnerID = &owner

	suite.Require().NoError(suite.courts.Create(suite.ctx, nil, court))

	found, err := suite.courts.GetByID(suite.ctx, nil, court.ID)
	suite.Require().NoError(err)
	suite.False(found.IsVerified())
	suite.Equal("Owned Court", found.Base().Name)
}

// TestCreateRejectsForeignType tests that a store only accepts its own model
func (suite *ListingRepositoryTestSuite) TestCreateRejectsForeignType() {
	coach := suite.factories.Listing.Coach("Coach", 49.25, -123.1)
	err := suite.courts.Create(suite.ctx, nil, coach)
	suite.Error(err)
}

// TestGetByIDNotFound tests the raw not-found error
func (suite *ListingRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.courts.GetByID(suite.ctx, nil, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithFacts tests that fact collections are preloaded
func (suite *ListingRepositoryTestSuite) TestGetWithFacts() {
	court := suite.createCourt("Preloaded", 49.25, -123.1)
	suite.Require().NoError(suite.facts.Create(suite.ctx, nil, suite.factories.Fact.CourtPrice(court.ID, 10, 20)))

	found, err := suite.courts.GetWithFacts(suite.ctx, nil, court.ID)
	suite.Require().NoError(err)
	suite.Len(found.Facts(models.InfoTypePrice), 1)
	suite.Empty(found.Facts(models.InfoTypeSchedule))
}

// TestAssignOwner tests that assigning an owner verifies the listing
func (suite *ListingRepositoryTestSuite) TestAssignOwner() {
	court := suite.createCourt("Claimed", 49.25, -123.1)
	owner := uuid.New()

	n, err := suite.courts.AssignOwner(suite.ctx, nil, court.ID, owner)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	found, err := suite.courts.GetByID(suite.ctx, nil, court.ID)
	suite.Require().NoError(err)
	suite.True(found.IsVerified())
	suite.Equal(owner, *found.Base().OwnerID)

	n, err = suite.courts.AssignOwner(suite.ctx, nil, uuid.New(), owner)
	suite.NoError(err)
	suite.Zero(n)
}

// TestFindPageByDistanceMatchesHaversine tests that SQL ordering agrees with geo.DistanceKm
func (suite *ListingRepositoryTestSuite) TestFindPageByDistanceMatchesHaversine() {
	ref := geo.Point{Latitude: 49.2827, Longitude: -123.1207}
	created := []*models.Court{
		suite.createCourt("Burnaby", 49.2488, -122.9805),
		suite.createCourt("Richmond", 49.1666, -123.1336),
		suite.createCourt("Downtown", 49.2840, -123.1150),
		suite.createCourt("Surrey", 49.1913, -122.8490),
		suite.createCourt("North Van", 49.3200, -123.0724),
	}

	expected := make([]string, len(created))
	sort.Slice(created, func(i, j int) bool {
		return geo.DistanceKm(ref, pointOf(created[i])) < geo.DistanceKm(ref, pointOf(created[j]))
	})
	for i, c := range created {
		expected[i] = c.Name
	}

	query := ListingQuery{
		Sort:      SortSpec{Field: SortByDistance},
		Reference: ref,
		Limit:     10,
	}
	page, err := suite.courts.FindPageByDistance(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal(expected, names(page))

	query.Sort.Descending = true
	page, err = suite.courts.FindPageByDistance(suite.ctx, query)
	suite.Require().NoError(err)
	reversed := make([]string, len(expected))
	for i := range expected {
		reversed[i] = expected[len(expected)-1-i]
	}
	suite.Equal(reversed, names(page))
}

// TestFindPageByDistanceWindow tests limit/offset over the distance ordering
func (suite *ListingRepositoryTestSuite) TestFindPageByDistanceWindow() {
	ref := geo.Point{Latitude: 49.0, Longitude: -123.0}
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		suite.createCourt(name, 49.0+float64(i+1)*0.01, -123.0)
	}

	page, err := suite.courts.FindPageByDistance(suite.ctx, ListingQuery{
		Sort:      SortSpec{Field: SortByDistance},
		Reference: ref,
		Limit:     2,
		Offset:    2,
	})
	suite.Require().NoError(err)
	suite.Equal([]string{"C", "D"}, names(page))
}

// TestFindPageByDistanceTieBreak tests that co-located listings come back by id in both directions
func (suite *ListingRepositoryTestSuite) TestFindPageByDistanceTieBreak() {
	ref := geo.Point{Latitude: 49.0, Longitude: -123.0}
	near := suite.createCourt("Near", 49.01, -123.0)
	var tied []uuid.UUID
	for _, name := range []string{"Twin A", "Twin B", "Twin C"} {
		tied = append(tied, suite.createCourt(name, 49.05, -123.0).ID)
	}
	sort.Slice(tied, func(i, j int) bool { return tied[i].String() < tied[j].String() })

	for _, desc := range []bool{false, true} {
		page, err := suite.courts.FindPageByDistance(suite.ctx, ListingQuery{
			Sort:      SortSpec{Field: SortByDistance, Descending: desc},
			Reference: ref,
			Limit:     10,
		})
		suite.Require().NoError(err)
		suite.Require().Len(page, 4)

		got := listingIDs(page)
		if desc {
			suite.Equal(tied, got[:3], "descending")
			suite.Equal(near.ID, got[3])
		} else {
			suite.Equal(near.ID, got[0])
			suite.Equal(tied, got[1:], "ascending")
		}
	}
}

// TestFindPageByPropertyAndCandidates tests name ordering restricted to a candidate set
func (suite *ListingRepositoryTestSuite) TestFindPageByPropertyAndCandidates() {
	a := suite.createCourt("Alpha", 49.25, -123.1)
	suite.createCourt("Bravo", 49.25, -123.1)
	c := suite.createCourt("Charlie", 49.25, -123.1)

	query := ListingQuery{
		CandidateIDs:         []uuid.UUID{c.ID, a.ID},
		RestrictToCandidates: true,
		Sort:                 SortSpec{Field: SortByName, Descending: true},
		Limit:                10,
	}
	page, err := suite.courts.FindPageByProperty(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]string{"Charlie", "Alpha"}, names(page))

	total, err := suite.courts.Count(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
}

// TestVerifiedOnly tests that unowned listings are excluded when requested
func (suite *ListingRepositoryTestSuite) TestVerifiedOnly() {
	owned := suite.createCourt("Owned", 49.25, -123.1)
	suite.createCourt("Unowned", 49.25, -123.1)
	_, err := suite.courts.AssignOwner(suite.ctx, nil, owned.ID, uuid.New())
	suite.Require().NoError(err)

	query := ListingQuery{VerifiedOnly: true, Sort: SortSpec{Field: SortByName}, Limit: 10}
	page, err := suite.courts.FindPageByProperty(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]string{"Owned"}, names(page))

	total, err := suite.courts.Count(suite.ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
}

func pointOf(c *models.Court) geo.Point {
	return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
}

func names(items []models.Listing) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Base().Name
	}
	return out
}

func listingIDs(items []models.Listing) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, item := range items {
		out[i] = item.Base().ID
	}
	return out
}

// TestListingRepositoryTestSuite runs the test suite
func TestListingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryTestSuite))
}
