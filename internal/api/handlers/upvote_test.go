package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"badminton-directory-backend/internal/api/handlers"
	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/mocks"
	"badminton-directory-backend/internal/service"
	"badminton-directory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UpvoteHandlerTestSuite defines the test suite for UpvoteHandler
type UpvoteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUpvoteServiceInterface
	handler     *handlers.UpvoteHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UpvoteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUpvoteServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUpvoteHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.httpSuite = newAuthenticatedSuite(suite.userID)

	suite.httpSuite.Router.POST("/upvotes", suite.handler.AddUpvote)
	suite.httpSuite.Router.GET("/upvotes", suite.handler.ListUpvotes)
}

// TearDownTest cleans up after each test
func (suite *UpvoteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAddUpvote tests the AddUpvote handler
func (suite *UpvoteHandlerTestSuite) TestAddUpvote() {
	factID := uuid.New()

	suite.T().Run("Path style types are normalized", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddUpvote(gomock.Any(), &service.AddUpvoteRequest{
				EntityType: models.EntityTypeCourt,
				InfoType:   models.InfoTypePrice,
				FactID:     factID,
			}, suite.userID).
			Return(&service.UpvoteResponse{ID: uuid.New(), VoterID: suite.userID, FactID: factID}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/upvotes", map[string]interface{}{
			"entity_type": "courts",
			"info_type":   "prices",
			"fact_id":     factID.String(),
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Second vote conflicts", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddUpvote(gomock.Any(), gomock.Any(), suite.userID).
			Return(nil, apperrors.NewAlreadyVotedError(suite.userID.String(), factID.String()))

		recorder := suite.httpSuite.MakeRequest("POST", "/upvotes", map[string]interface{}{
			"entity_type": "COURT",
			"info_type":   "PRICE",
			"fact_id":     factID.String(),
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "Conflict")
	})

	suite.T().Run("Fact not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddUpvote(gomock.Any(), gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrFactNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/upvotes", map[string]interface{}{
			"entity_type": "COACH",
			"info_type":   "SCHEDULE",
			"fact_id":     factID.String(),
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Unknown entity type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/upvotes", map[string]interface{}{
			"entity_type": "club",
			"info_type":   "PRICE",
			"fact_id":     factID.String(),
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListUpvotes tests the ListUpvotes handler
func (suite *UpvoteHandlerTestSuite) TestListUpvotes() {
	suite.T().Run("Filters", func(t *testing.T) {
		voter := uuid.New()
		suite.mockService.EXPECT().
			ListUpvotes(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *service.UpvoteListQuery) (*service.UpvoteListResponse, error) {
				require.NotNil(t, q.VoterID)
				require.NotNil(t, q.EntityType)
				require.NotNil(t, q.InfoType)
				assert.Equal(t, voter, *q.VoterID)
				assert.Equal(t, models.EntityTypeCoach, *q.EntityType)
				assert.Equal(t, models.InfoTypeSchedule, *q.InfoType)
				assert.Equal(t, 1, q.Page)
				return &service.UpvoteListResponse{Upvotes: []service.UpvoteResponse{}, Total: 0, Page: 1, PageSize: 10}, nil
			})

		recorder := suite.httpSuite.MakeRequest("GET",
			"/upvotes?voter_id="+voter.String()+"&entity_type=coaches&info_type=schedules&page=1", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid voter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/upvotes?voter_id=42", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpvoteHandlerTestSuite runs the test suite
func TestUpvoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UpvoteHandlerTestSuite))
}
