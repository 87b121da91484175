package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// ClaimService drives ownership claims from PENDING to APPROVED or REJECTED.
// Approval is the only path that sets a listing's owner or verifies its facts.
type ClaimService struct {
	resolver  *repository.TypeKeyedResolver
	claimRepo repository.ClaimRepositoryInterface
	tx        repository.Transactor
	validator *validator.Validate
	now       func() time.Time
}

// Ensure ClaimService implements ClaimServiceInterface
var _ ClaimServiceInterface = (*ClaimService)(nil)

// NewClaimService creates a new ownership claim service
func NewClaimService(resolver *repository.TypeKeyedResolver, claimRepo repository.ClaimRepositoryInterface, tx repository.Transactor, validator *validator.Validate) *ClaimService {
	return &ClaimService{
		resolver:  resolver,
		claimRepo: claimRepo,
		tx:        tx,
		validator: validator,
		now:       time.Now,
	}
}

// CreateClaimRequest represents a request to become a listing's owner.
// Files are object storage keys of documents uploaded beforehand.
type CreateClaimRequest struct {
	EntityType models.EntityType `json:"entity_type" validate:"required"`
	EntityID   uuid.UUID         `json:"entity_id" validate:"required"`
	Message    string            `json:"message,omitempty" validate:"max=2000"`
	Files      []string          `json:"files,omitempty" validate:"max=10,dive,required,max=500"`
}

// CreateClaim opens a PENDING claim on an unowned listing
func (s *ClaimService) CreateClaim(ctx context.Context, req *CreateClaimRequest, creatorID uuid.UUID) (*ClaimResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkEntityType(req.EntityType); err != nil {
		return nil, err
	}

	listing, err := s.resolver.ResolveListing(ctx, nil, req.EntityID, req.EntityType)
	if err != nil {
		return nil, err
	}
	if listing.IsVerified() {
		return nil, apperrors.ErrListingAlreadyOwned
	}

	pending, err := s.claimRepo.CountPending(ctx, req.EntityType, req.EntityID, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending claims: %w", err)
	}
	if pending > 0 {
		return nil, apperrors.NewAlreadyExistsError("ownership claim", "for this listing")
	}

	claim := &models.OwnershipClaim{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		CreatorID:  creatorID,
		Status:     models.ClaimStatusPending,
		Message:    req.Message,
		Files:      pq.StringArray(req.Files),
	}
	if err := s.claimRepo.Create(ctx, nil, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"claim_id":    claim.ID,
		"entity_type": claim.EntityType,
		"entity_id":   claim.EntityID,
	}).Info("ownership claim opened")

	return toClaimResponse(claim), nil
}

// GetClaim retrieves a claim by ID
func (s *ClaimService) GetClaim(ctx context.Context, id uuid.UUID) (*ClaimResponse, error) {
	claim, err := s.claimRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return toClaimResponse(claim), nil
}

// ListClaims returns claims oldest first, optionally narrowed to one status
func (s *ClaimService) ListClaims(ctx context.Context, status *models.ClaimStatus, page, size int) (*ClaimListResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown claim status %q", *status))
	}
	page, size, err := normalizePage(page, size, DefaultPageSize, MaxPageSize)
	if err != nil {
		return nil, err
	}

	claims, total, err := s.claimRepo.List(ctx, status, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	responses := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, *toClaimResponse(&claims[i]))
	}
	return &ClaimListResponse{
		Claims:   responses,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// Approve grants the claimed listing to the claim's creator, marks the claim
// APPROVED and verifies every fact of the listing, all in one transaction.
// A claim that is no longer PENDING fails with InvalidStateTransitionError.
func (s *ClaimService) Approve(ctx context.Context, claimID, reviewerID uuid.UUID) (resp *ClaimResponse, err error) {
	ctx, span := tracer.Start(ctx, "ClaimService.Approve")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("claim_id", claimID.String()))

	var claim *models.OwnershipClaim
	verified := make(map[models.InfoType]int64)

	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		claim, err = s.lockPending(ctx, tx, claimID, models.ClaimStatusApproved)
		if err != nil {
			return err
		}

		listing, err := s.resolver.ResolveListing(ctx, tx, claim.EntityID, claim.EntityType)
		if err != nil {
			return err
		}
		if owner := listing.Base().OwnerID; owner != nil && *owner != claim.CreatorID {
			return apperrors.ErrListingAlreadyOwned
		}

		store, err := s.resolver.ListingStore(claim.EntityType)
		if err != nil {
			return err
		}
		n, err := store.AssignOwner(ctx, tx, claim.EntityID, claim.CreatorID)
		if err != nil {
			return fmt.Errorf("failed to assign owner: %w", err)
		}
		if n == 0 {
			return apperrors.ErrListingNotFound
		}

		s.markReviewed(claim, models.ClaimStatusApproved, reviewerID)
		if err := s.claimRepo.Update(ctx, tx, claim); err != nil {
			return fmt.Errorf("failed to update claim: %w", err)
		}

		for _, it := range claim.EntityType.InfoTypes() {
			factStore, err := s.resolver.FactStore(claim.EntityType, it)
			if err != nil {
				return err
			}
			count, err := factStore.VerifyByListing(ctx, tx, claim.EntityID)
			if err != nil {
				return fmt.Errorf("failed to verify %s: %w", it.PathSegment(), err)
			}
			verified[it] = count
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"claim_id":           claim.ID,
		"entity_type":        claim.EntityType,
		"entity_id":          claim.EntityID,
		"owner_id":           claim.CreatorID,
		"verified_prices":    verified[models.InfoTypePrice],
		"verified_schedules": verified[models.InfoTypeSchedule],
	}).Info("ownership claim approved")

	return toClaimResponse(claim), nil
}

// Reject marks a PENDING claim REJECTED without touching the listing
func (s *ClaimService) Reject(ctx context.Context, claimID, reviewerID uuid.UUID) (*ClaimResponse, error) {
	var claim *models.OwnershipClaim
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		claim, err = s.lockPending(ctx, tx, claimID, models.ClaimStatusRejected)
		if err != nil {
			return err
		}
		s.markReviewed(claim, models.ClaimStatusRejected, reviewerID)
		if err := s.claimRepo.Update(ctx, tx, claim); err != nil {
			return fmt.Errorf("failed to update claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"claim_id":    claim.ID,
		"entity_type": claim.EntityType,
		"entity_id":   claim.EntityID,
	}).Info("ownership claim rejected")

	return toClaimResponse(claim), nil
}

// lockPending loads the claim under a row lock and checks it can move to target
func (s *ClaimService) lockPending(ctx context.Context, tx *gorm.DB, claimID uuid.UUID, target models.ClaimStatus) (*models.OwnershipClaim, error) {
	claim, err := s.claimRepo.GetByIDForUpdate(ctx, tx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClaimNotFound
		}
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}
	if claim.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateTransitionError(string(claim.Status), string(target))
	}
	return claim, nil
}

func (s *ClaimService) markReviewed(claim *models.OwnershipClaim, status models.ClaimStatus, reviewerID uuid.UUID) {
	at := s.now().UTC()
	claim.Status = status
	claim.ReviewedBy = &reviewerID
	claim.ReviewedAt = &at
}
