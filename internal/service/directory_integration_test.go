//go:build integration
// +build integration

package service_test

import (
	"context"
	"sync"
	"testing"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/geo"
	"badminton-directory-backend/internal/repository"
	"badminton-directory-backend/internal/service"
	"badminton-directory-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// DirectoryIntegrationTestSuite drives the services over real stores and transactions
type DirectoryIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	courts         *repository.ListingRepository[models.Court, *models.Court]
	courtPrices    *repository.FactRepository[models.CourtPrice, *models.CourtPrice]
	courtSchedules *repository.FactRepository[models.CourtSchedule, *models.CourtSchedule]
	listingService *service.ListingService
	upvoteService  *service.UpvoteService
	factories      *testutils.FactorySet
	home           geo.Point
	ctx            context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *DirectoryIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	reg, err := repository.NewDefaultRegistry(db)
	suite.Require().NoError(err)
	resolver, err := repository.NewTypeKeyedResolver(reg)
	suite.Require().NoError(err)

	suite.home = geo.Point{Latitude: 49.2827, Longitude: -123.1207}
	suite.courts = repository.NewCourtRepository(db)
	suite.courtPrices = repository.NewFactRepository[models.CourtPrice](db)
	suite.courtSchedules = repository.NewFactRepository[models.CourtSchedule](db)
	suite.listingService = service.NewListingService(resolver, service.SearchSettings{
		Home:            suite.home,
		DefaultPageSize: 10,
		MaxPageSize:     50,
	}, validator.New())
	suite.upvoteService = service.NewUpvoteService(
		resolver,
		repository.NewUpvoteRepository(db),
		repository.NewUserRepository(db),
		repository.NewGormTransactor(db),
		validator.New(),
	)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *DirectoryIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DirectoryIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DirectoryIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createCourt stores a court dLat degrees north of home with one price range and
// the given opening days
func (suite *DirectoryIntegrationTestSuite) createCourt(name string, dLat, minPrice, maxPrice float64, days ...int) *models.Court {
	court := suite.factories.Listing.Court(name, suite.home.Latitude+dLat, suite.home.Longitude)
	suite.Require().NoError(suite.courts.Create(suite.ctx, nil, court))
	suite.Require().NoError(suite.courtPrices.Create(suite.ctx, nil, suite.factories.Fact.CourtPrice(court.ID, minPrice, maxPrice)))
	for _, day := range days {
		suite.Require().NoError(suite.courtSchedules.Create(suite.ctx, nil, suite.factories.Fact.CourtSchedule(court.ID, day)))
	}
	return court
}

func (suite *DirectoryIntegrationTestSuite) createPrice() *models.CourtPrice {
	court := suite.factories.Listing.Court("Voted", suite.home.Latitude, suite.home.Longitude)
	suite.Require().NoError(suite.courts.Create(suite.ctx, nil, court))
	price := suite.factories.Fact.CourtPrice(court.ID, 10, 20)
	suite.Require().NoError(suite.courtPrices.Create(suite.ctx, nil, price))
	return price
}

// voteConcurrently starts one AddUpvote per voter at the same moment and returns their errors
func (suite *DirectoryIntegrationTestSuite) voteConcurrently(factID uuid.UUID, voters ...uuid.UUID) []error {
	req := &service.AddUpvoteRequest{
		EntityType: models.EntityTypeCourt,
		InfoType:   models.InfoTypePrice,
		FactID:     factID,
	}
	errs := make([]error, len(voters))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, voter := range voters {
		wg.Add(1)
		go func(i int, voter uuid.UUID) {
			defer wg.Done()
			<-start
			_, errs[i] = suite.upvoteService.AddUpvote(suite.ctx, req, voter)
		}(i, voter)
	}
	close(start)
	wg.Wait()
	return errs
}

func (suite *DirectoryIntegrationTestSuite) upvotesOf(factID uuid.UUID) int {
	fact, err := suite.courtPrices.GetByID(suite.ctx, nil, factID)
	suite.Require().NoError(err)
	return fact.Base().Upvotes
}

// TestConcurrentVotesSameVoter tests that racing duplicate votes count once
func (suite *DirectoryIntegrationTestSuite) TestConcurrentVotesSameVoter() {
	price := suite.createPrice()
	voter := uuid.New()

	for round := 0; round < 5; round++ {
		errs := suite.voteConcurrently(price.ID, voter, voter)

		succeeded, alreadyVoted := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case apperrors.IsAlreadyVoted(err):
				alreadyVoted++
			default:
				suite.Failf("unexpected error", "%v", err)
			}
		}
		if round == 0 {
			suite.Equal(1, succeeded)
			suite.Equal(1, alreadyVoted)
		} else {
			suite.Zero(succeeded)
			suite.Equal(2, alreadyVoted)
		}
		suite.Equal(1, suite.upvotesOf(price.ID))
	}

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Upvote{}).
		Where("voter_id = ? AND fact_id = ?", voter, price.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestConcurrentVotesDifferentVoters tests that racing votes by distinct users all count
func (suite *DirectoryIntegrationTestSuite) TestConcurrentVotesDifferentVoters() {
	price := suite.createPrice()

	errs := suite.voteConcurrently(price.ID, uuid.New(), uuid.New())

	for _, err := range errs {
		suite.NoError(err)
	}
	suite.Equal(2, suite.upvotesOf(price.ID))
}

// TestSearchByPriceAndDaysSortedByDistance tests the price window, day filter and
// distance order composed over real tables
func (suite *DirectoryIntegrationTestSuite) TestSearchByPriceAndDaysSortedByDistance() {
	suite.createCourt("Far Match", 0.09, 10, 50, 3)
	suite.createCourt("Near Match", 0.01, 15, 40, 1)
	suite.createCourt("Mid Match", 0.05, 12, 20, 2, 3)
	suite.createCourt("Too Pricey", 0.02, 20, 60, 1)
	suite.createCourt("Too Cheap", 0.03, 5, 30, 3)
	suite.createCourt("Weekend Only", 0.04, 20, 30, 6, 7)
	suite.createCourt("No Hours", 0.06, 20, 30)

	minPrice, maxPrice := 10.0, 50.0
	query := &service.ListingSearchQuery{
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		DaysOfWeek: []int{1, 3},
		SortBy:     "distance",
	}

	resp, err := suite.listingService.SearchListings(suite.ctx, models.EntityTypeCourt, query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.Total)
	suite.Require().Len(resp.Listings, 3)
	got := make([]string, len(resp.Listings))
	for i, l := range resp.Listings {
		got[i] = l.Name
	}
	suite.Equal([]string{"Near Match", "Mid Match", "Far Match"}, got)
	for i := 1; i < len(resp.Listings); i++ {
		suite.LessOrEqual(*resp.Listings[i-1].DistanceKm, *resp.Listings[i].DistanceKm)
	}

	query.SortDirection = "desc"
	query.Size = 2
	query.Page = 1
	resp, err = suite.listingService.SearchListings(suite.ctx, models.EntityTypeCourt, query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.Total)
	suite.Require().Len(resp.Listings, 1)
	suite.Equal("Near Match", resp.Listings[0].Name)
}

// TestDirectoryIntegrationTestSuite runs the test suite
func TestDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryIntegrationTestSuite))
}
