package service_test

import (
	"context"
	"testing"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/mocks"
	"badminton-directory-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ClaimServiceTestSuite defines the test suite for ClaimService
type ClaimServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	stores        *mockStores
	mockClaimRepo *mocks.MockClaimRepositoryInterface
	mockTx        *mocks.MockTransactor
	claimService  *service.ClaimService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	resolver, stores := newMockResolver(suite.T(), suite.ctrl)
	suite.stores = stores
	suite.mockClaimRepo = mocks.NewMockClaimRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactor(suite.ctrl)
	suite.ctx = context.Background()
	suite.claimService = service.NewClaimService(resolver, suite.mockClaimRepo, suite.mockTx, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ClaimServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func pendingClaim(et models.EntityType, entityID uuid.UUID) *models.OwnershipClaim {
	claim := &models.OwnershipClaim{
		EntityType: et,
		EntityID:   entityID,
		CreatorID:  uuid.New(),
		Status:     models.ClaimStatusPending,
	}
	claim.ID = uuid.New()
	return claim
}

// TestApprove tests ownership assignment, claim status and the verification sweep,
// then that a second approval is rejected without further writes
func (suite *ClaimServiceTestSuite) TestApprove() {
	court := newCourt("Drive Badminton", 49.2, -123.0)
	claim := pendingClaim(models.EntityTypeCourt, court.ID)
	reviewer := uuid.New()

	// stored claim state survives between the two calls
	stored := *claim
	runInline(suite.mockTx).Times(2)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).
		DoAndReturn(func(context.Context, *gorm.DB, uuid.UUID) (*models.OwnershipClaim, error) {
			c := stored
			return &c, nil
		}).Times(2)

	gomock.InOrder(
		suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil),
		suite.stores.courts.EXPECT().AssignOwner(gomock.Any(), gomock.Any(), court.ID, claim.CreatorID).Return(int64(1), nil),
		suite.mockClaimRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *gorm.DB, c *models.OwnershipClaim) error {
				stored = *c
				return nil
			}),
	)
	suite.stores.courtPrices.EXPECT().VerifyByListing(gomock.Any(), gomock.Any(), court.ID).Return(int64(2), nil)
	suite.stores.courtSchedules.EXPECT().VerifyByListing(gomock.Any(), gomock.Any(), court.ID).Return(int64(5), nil)

	resp, err := suite.claimService.Approve(suite.ctx, claim.ID, reviewer)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimStatusApproved, resp.Status)
	suite.Equal(models.ClaimStatusApproved, stored.Status)
	suite.Require().NotNil(resp.ReviewedBy)
	suite.Equal(reviewer, *resp.ReviewedBy)
	suite.NotNil(resp.ReviewedAt)

	_, err = suite.claimService.Approve(suite.ctx, claim.ID, reviewer)

	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	var transition *apperrors.InvalidStateTransitionError
	suite.Require().ErrorAs(err, &transition)
	suite.Equal("APPROVED", transition.From)
}

// TestApprove_StringerHasNoSweep tests approval of a listing type without facts
func (suite *ClaimServiceTestSuite) TestApprove_StringerHasNoSweep() {
	stringer := &models.Stringer{}
	stringer.ID = uuid.New()
	claim := pendingClaim(models.EntityTypeStringer, stringer.ID)

	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)
	suite.stores.stringers.EXPECT().GetByID(gomock.Any(), gomock.Any(), stringer.ID).Return(stringer, nil)
	suite.stores.stringers.EXPECT().AssignOwner(gomock.Any(), gomock.Any(), stringer.ID, claim.CreatorID).Return(int64(1), nil)
	suite.mockClaimRepo.EXPECT().Update(gomock.Any(), gomock.Any(), claim).Return(nil)

	resp, err := suite.claimService.Approve(suite.ctx, claim.ID, uuid.New())

	suite.Require().NoError(err)
	suite.Equal(models.ClaimStatusApproved, resp.Status)
}

// TestApprove_ListingGone tests that a deleted listing aborts approval
func (suite *ClaimServiceTestSuite) TestApprove_ListingGone() {
	claim := pendingClaim(models.EntityTypeCoach, uuid.New())

	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)
	suite.stores.coaches.EXPECT().GetByID(gomock.Any(), gomock.Any(), claim.EntityID).Return(nil, gorm.ErrRecordNotFound)
	suite.stores.coaches.EXPECT().AssignOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.mockClaimRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.claimService.Approve(suite.ctx, claim.ID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrListingNotFound)
}

// TestApprove_OwnedByAnother tests that an approved owner is never replaced
func (suite *ClaimServiceTestSuite) TestApprove_OwnedByAnother() {
	court := newCourt("Owned", 49.2, -123.0)
	owner := uuid.New()
	court.OwnerID = &owner
	claim := pendingClaim(models.EntityTypeCourt, court.ID)

	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil)

	_, err := suite.claimService.Approve(suite.ctx, claim.ID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrListingAlreadyOwned)
}

// TestApprove_ClaimNotFound tests the not found mapping
func (suite *ClaimServiceTestSuite) TestApprove_ClaimNotFound() {
	id := uuid.New()
	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.claimService.Approve(suite.ctx, id, uuid.New())

	suite.ErrorIs(err, apperrors.ErrClaimNotFound)
}

// TestReject tests that rejection only touches the claim
func (suite *ClaimServiceTestSuite) TestReject() {
	claim := pendingClaim(models.EntityTypeCourt, uuid.New())
	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)
	suite.mockClaimRepo.EXPECT().Update(gomock.Any(), gomock.Any(), claim).Return(nil)

	resp, err := suite.claimService.Reject(suite.ctx, claim.ID, uuid.New())

	suite.Require().NoError(err)
	suite.Equal(models.ClaimStatusRejected, resp.Status)
}

// TestReject_Terminal tests that a rejected claim cannot be rejected again
func (suite *ClaimServiceTestSuite) TestReject_Terminal() {
	claim := pendingClaim(models.EntityTypeCourt, uuid.New())
	claim.Status = models.ClaimStatusRejected
	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)

	_, err := suite.claimService.Reject(suite.ctx, claim.ID, uuid.New())

	suite.True(apperrors.IsInvalidStateTransition(err))
}

// TestApprove_Terminal tests that an approved claim cannot be approved again
func (suite *ClaimServiceTestSuite) TestApprove_Terminal() {
	claim := pendingClaim(models.EntityTypeCoach, uuid.New())
	claim.Status = models.ClaimStatusApproved
	runInline(suite.mockTx)
	suite.mockClaimRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), claim.ID).Return(claim, nil)

	_, err := suite.claimService.Approve(suite.ctx, claim.ID, uuid.New())

	suite.True(apperrors.IsInvalidStateTransition(err))
}

// TestCreateClaim tests opening a claim on an unowned listing
func (suite *ClaimServiceTestSuite) TestCreateClaim() {
	court := newCourt("Unclaimed", 49.2, -123.0)
	creator := uuid.New()
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Nil(), court.ID).Return(court, nil)
	suite.mockClaimRepo.EXPECT().CountPending(gomock.Any(), models.EntityTypeCourt, court.ID, creator).Return(int64(0), nil)
	suite.mockClaimRepo.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, c *models.OwnershipClaim) error {
			suite.Equal(models.ClaimStatusPending, c.Status)
			c.ID = uuid.New()
			return nil
		})

	resp, err := suite.claimService.CreateClaim(suite.ctx, &service.CreateClaimRequest{
		EntityType: models.EntityTypeCourt,
		EntityID:   court.ID,
		Message:    "I run this club",
		Files:      []string{"claims/license.pdf"},
	}, creator)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimStatusPending, resp.Status)
	suite.Equal([]string{"claims/license.pdf"}, resp.Files)
	suite.Equal(creator, resp.CreatorID)
}

// TestCreateClaim_Rejections tests owned listings and duplicate pending claims
func (suite *ClaimServiceTestSuite) TestCreateClaim_Rejections() {
	owned := newCourt("Owned", 49.2, -123.0)
	owner := uuid.New()
	owned.OwnerID = &owner
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Nil(), owned.ID).Return(owned, nil)

	_, err := suite.claimService.CreateClaim(suite.ctx, &service.CreateClaimRequest{
		EntityType: models.EntityTypeCourt,
		EntityID:   owned.ID,
	}, uuid.New())
	suite.ErrorIs(err, apperrors.ErrListingAlreadyOwned)

	open := newCourt("Open", 49.2, -123.0)
	suite.stores.courts.EXPECT().GetByID(gomock.Any(), gomock.Nil(), open.ID).Return(open, nil)
	suite.mockClaimRepo.EXPECT().CountPending(gomock.Any(), models.EntityTypeCourt, open.ID, gomock.Any()).Return(int64(1), nil)

	_, err = suite.claimService.CreateClaim(suite.ctx, &service.CreateClaimRequest{
		EntityType: models.EntityTypeCourt,
		EntityID:   open.ID,
	}, uuid.New())
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestListClaims tests paging and status validation
func (suite *ClaimServiceTestSuite) TestListClaims() {
	status := models.ClaimStatusPending
	claim := pendingClaim(models.EntityTypeCoach, uuid.New())
	suite.mockClaimRepo.EXPECT().List(gomock.Any(), &status, 20, 20).Return([]models.OwnershipClaim{*claim}, int64(21), nil)

	resp, err := suite.claimService.ListClaims(suite.ctx, &status, 1, 20)

	suite.Require().NoError(err)
	suite.Equal(int64(21), resp.Total)
	suite.Len(resp.Claims, 1)
	suite.Equal([]string{}, resp.Claims[0].Files)

	bogus := models.ClaimStatus("WITHDRAWN")
	_, err = suite.claimService.ListClaims(suite.ctx, &bogus, 0, 0)
	suite.True(apperrors.IsValidation(err))
}

// TestGetClaimNotFound tests the not found mapping
func (suite *ClaimServiceTestSuite) TestGetClaimNotFound() {
	id := uuid.New()
	suite.mockClaimRepo.EXPECT().GetByID(gomock.Any(), gomock.Nil(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.claimService.GetClaim(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrClaimNotFound)
}

// TestClaimServiceTestSuite runs the test suite
func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
