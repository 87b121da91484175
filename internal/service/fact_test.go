package service_test

import (
	"context"
	"testing"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FactServiceTestSuite defines the test suite for FactService
type FactServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	stores      *mockStores
	factService *service.FactService
	ctx         context.Context
}

// SetupTest sets up the test suite
func (suite *FactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	resolver, stores := newMockResolver(suite.T(), suite.ctrl)
	suite.stores = stores
	suite.ctx = context.Background()
	suite.factService = service.NewFactService(resolver, validator.New())
}

// TearDownTest cleans up after each test
func (suite *FactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSubmitPrice tests that a new price starts unverified with no votes
func (suite *FactServiceTestSuite) TestSubmitPrice() {
	court := newCourt("Hive", 49.19, -123.09)
	submitter := uuid.New()
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Nil(), court.ID).Return(court, nil)
	suite.stores.courtPrices.EXPECT().New().Return(&models.CourtPrice{})
	suite.stores.courtPrices.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, f models.Fact) error {
			price := f.(*models.CourtPrice)
			suite.Equal(court.ID, price.ListingID)
			suite.Equal(submitter, price.SubmittedBy)
			suite.Equal(12.5, price.MinPrice)
			price.ID = uuid.New()
			return nil
		})

	resp, err := suite.factService.SubmitPrice(suite.ctx, models.EntityTypeCourt, court.ID, &service.SubmitPriceRequest{
		MinPrice:    12.5,
		MaxPrice:    20,
		Description: "drop-in",
	}, submitter)

	suite.Require().NoError(err)
	suite.Equal(models.InfoTypePrice, resp.InfoType)
	suite.Equal(0, resp.Upvotes)
	suite.False(resp.Verified)
	suite.Require().NotNil(resp.MaxPrice)
	suite.Equal(20.0, *resp.MaxPrice)
	suite.Nil(resp.DayOfWeek)
}

// TestSubmitSchedule tests schedule submission for a coach
func (suite *FactServiceTestSuite) TestSubmitSchedule() {
	coach := &models.Coach{}
	coach.ID = uuid.New()
	suite.stores.coaches.EXPECT().GetByID(gomock.Any(), gomock.Nil(), coach.ID).Return(coach, nil)
	suite.stores.coachSchedules.EXPECT().New().Return(&models.CoachSchedule{})
	suite.stores.coachSchedules.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)

	resp, err := suite.factService.SubmitSchedule(suite.ctx, models.EntityTypeCoach, coach.ID, &service.SubmitScheduleRequest{
		DayOfWeek: 6,
		OpenTime:  "09:00",
		CloseTime: "13:30",
	}, uuid.New())

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.DayOfWeek)
	suite.Equal(6, *resp.DayOfWeek)
	suite.Equal("13:30", resp.CloseTime)
}

// TestSubmitValidation tests rejected submissions
func (suite *FactServiceTestSuite) TestSubmitValidation() {
	listingID := uuid.New()

	_, err := suite.factService.SubmitPrice(suite.ctx, models.EntityTypeCourt, listingID, &service.SubmitPriceRequest{MinPrice: 30, MaxPrice: 20}, uuid.New())
	suite.True(apperrors.IsValidation(err))

	_, err = suite.factService.SubmitPrice(suite.ctx, models.EntityTypeStringer, listingID, &service.SubmitPriceRequest{MinPrice: 1, MaxPrice: 2}, uuid.New())
	suite.True(apperrors.IsValidation(err))

	_, err = suite.factService.SubmitSchedule(suite.ctx, models.EntityTypeCourt, listingID, &service.SubmitScheduleRequest{DayOfWeek: 8, OpenTime: "09:00", CloseTime: "10:00"}, uuid.New())
	suite.True(apperrors.IsValidation(err))

	_, err = suite.factService.SubmitSchedule(suite.ctx, models.EntityTypeCourt, listingID, &service.SubmitScheduleRequest{DayOfWeek: 1, OpenTime: "9am", CloseTime: "10:00"}, uuid.New())
	suite.True(apperrors.IsValidation(err))

	_, err = suite.factService.SubmitSchedule(suite.ctx, models.EntityTypeCourt, listingID, &service.SubmitScheduleRequest{DayOfWeek: 1, OpenTime: "18:00", CloseTime: "10:00"}, uuid.New())
	suite.True(apperrors.IsValidation(err))
}

// TestSubmitPrice_ListingNotFound tests that facts need an existing listing
func (suite *FactServiceTestSuite) TestSubmitPrice_ListingNotFound() {
	id := uuid.New()
	suite.stores.coaches.EXPECT().GetByID(gomock.Any(), gomock.Nil(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.factService.SubmitPrice(suite.ctx, models.EntityTypeCoach, id, &service.SubmitPriceRequest{MinPrice: 40, MaxPrice: 60}, uuid.New())

	suite.ErrorIs(err, apperrors.ErrListingNotFound)
}

// TestListFacts tests listing a court's schedules
func (suite *FactServiceTestSuite) TestListFacts() {
	court := newCourt("Hive", 49.19, -123.09)
	mon := &models.CourtSchedule{}
	mon.DayOfWeek = 1
	mon.Upvotes = 4
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Nil(), court.ID).Return(court, nil)
	suite.stores.courtSchedules.EXPECT().ListByListing(gomock.Any(), gomock.Nil(), court.ID).Return([]models.Fact{mon}, nil)

	facts, err := suite.factService.ListFacts(suite.ctx, models.EntityTypeCourt, models.InfoTypeSchedule, court.ID)

	suite.Require().NoError(err)
	suite.Require().Len(facts, 1)
	suite.Equal(4, facts[0].Upvotes)
	suite.Equal(models.InfoTypeSchedule, facts[0].InfoType)
}

// TestFactServiceTestSuite runs the test suite
func TestFactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FactServiceTestSuite))
}
