package service

import (
	"context"
	"fmt"
	"time"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// UpvoteService is the upvote ledger: at most one vote per user per fact,
// with the fact's counter kept in step with the ledger.
type UpvoteService struct {
	resolver   *repository.TypeKeyedResolver
	upvoteRepo repository.UpvoteRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	tx         repository.Transactor
	validator  *validator.Validate
}

// Ensure UpvoteService implements UpvoteServiceInterface
var _ UpvoteServiceInterface = (*UpvoteService)(nil)

// NewUpvoteService creates a new upvote service
func NewUpvoteService(
	resolver *repository.TypeKeyedResolver,
	upvoteRepo repository.UpvoteRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	tx repository.Transactor,
	validator *validator.Validate,
) *UpvoteService {
	return &UpvoteService{
		resolver:   resolver,
		upvoteRepo: upvoteRepo,
		userRepo:   userRepo,
		tx:         tx,
		validator:  validator,
	}
}

// AddUpvoteRequest represents a vote for one fact
type AddUpvoteRequest struct {
	EntityType models.EntityType `json:"entity_type" validate:"required"`
	InfoType   models.InfoType   `json:"info_type" validate:"required"`
	FactID     uuid.UUID         `json:"fact_id" validate:"required"`
}

// UpvoteListQuery represents the filters of the upvote feed
type UpvoteListQuery struct {
	VoterID    *uuid.UUID
	EntityType *models.EntityType
	InfoType   *models.InfoType
	Page       int
	Size       int
}

// AddUpvote records a vote and increments the fact's counter in one transaction.
// A second vote by the same user fails with AlreadyVotedError and leaves the
// counter unchanged; the unique (voter, fact) index settles concurrent attempts.
func (s *UpvoteService) AddUpvote(ctx context.Context, req *AddUpvoteRequest, voterID uuid.UUID) (resp *UpvoteResponse, err error) {
	ctx, span := tracer.Start(ctx, "UpvoteService.AddUpvote")
	defer func() { endSpan(span, err) }()

	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkFactType(req.EntityType, req.InfoType); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("entity_type", string(req.EntityType)),
		attribute.String("info_type", string(req.InfoType)),
		attribute.String("fact_id", req.FactID.String()),
	)

	store, err := s.resolver.FactStore(req.EntityType, req.InfoType)
	if err != nil {
		return nil, err
	}

	upvote := &models.Upvote{
		VoterID:    voterID,
		FactID:     req.FactID,
		EntityType: req.EntityType,
		InfoType:   req.InfoType,
	}
	var fact models.Fact

	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		fact, err = s.resolver.ResolveFact(ctx, tx, req.FactID, req.EntityType, req.InfoType)
		if err != nil {
			return err
		}

		voted, err := s.upvoteRepo.Exists(ctx, tx, voterID, req.FactID)
		if err != nil {
			return fmt.Errorf("failed to check existing vote: %w", err)
		}
		if voted {
			return apperrors.NewAlreadyVotedError(voterID.String(), req.FactID.String())
		}

		if err := s.upvoteRepo.Create(ctx, tx, upvote); err != nil {
			return err
		}

		n, err := store.IncrementUpvotes(ctx, tx, req.FactID)
		if err != nil {
			return fmt.Errorf("failed to increment upvotes: %w", err)
		}
		if n == 0 {
			return apperrors.ErrFactNotFound
		}
		fact.Base().Upvotes++
		return nil
	})
	if err != nil {
		if !apperrors.IsAlreadyVoted(err) && !apperrors.IsNotFound(err) {
			err = fmt.Errorf("failed to add upvote: %w", err)
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity_type": req.EntityType,
		"info_type":   req.InfoType,
		"fact_id":     req.FactID,
		"voter_id":    voterID,
		"upvotes":     fact.Base().Upvotes,
	}).Info("upvote recorded")

	factResp := toFactResponse(fact)
	return &UpvoteResponse{
		ID:         upvote.ID,
		VoterID:    upvote.VoterID,
		FactID:     upvote.FactID,
		EntityType: upvote.EntityType,
		InfoType:   upvote.InfoType,
		Fact:       &factResp,
		CreatedAt:  upvote.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListUpvotes returns a page of the vote feed. Each vote carries its target fact
// and the voter profile; entries whose fact or voter can no longer be loaded
// are returned with that field nil instead of failing the page.
func (s *UpvoteService) ListUpvotes(ctx context.Context, q *UpvoteListQuery) (*UpvoteListResponse, error) {
	if q == nil {
		q = &UpvoteListQuery{}
	}
	if q.EntityType != nil {
		if err := checkEntityType(*q.EntityType); err != nil {
			return nil, err
		}
	}
	if q.InfoType != nil && !q.InfoType.IsValid() {
		return nil, apperrors.NewValidationError("info_type", fmt.Sprintf("unknown info type %q", *q.InfoType))
	}
	page, size, err := normalizePage(q.Page, q.Size, DefaultPageSize, MaxPageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.UpvoteFilter{VoterID: q.VoterID, EntityType: q.EntityType, InfoType: q.InfoType}
	upvotes, total, err := s.upvoteRepo.List(ctx, filter, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list upvotes: %w", err)
	}

	profiles := s.loadProfiles(ctx, upvotes)
	facts := s.loadFacts(ctx, upvotes)

	responses := make([]UpvoteResponse, 0, len(upvotes))
	for i := range upvotes {
		u := &upvotes[i]
		resp := UpvoteResponse{
			ID:         u.ID,
			VoterID:    u.VoterID,
			FactID:     u.FactID,
			EntityType: u.EntityType,
			InfoType:   u.InfoType,
			Voter:      profiles[u.VoterID],
			CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		}
		if fact, ok := facts[factKey{u.EntityType, u.InfoType, u.FactID}]; ok {
			f := toFactResponse(fact)
			resp.Fact = &f
		}
		responses = append(responses, resp)
	}

	return &UpvoteListResponse{
		Upvotes:  responses,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

type factKey struct {
	entityType models.EntityType
	infoType   models.InfoType
	id         uuid.UUID
}

type factTable struct {
	entityType models.EntityType
	infoType   models.InfoType
}

// loadFacts fetches the vote targets with one query per fact table. A table
// that fails to load leaves its entries out of the map.
func (s *UpvoteService) loadFacts(ctx context.Context, upvotes []models.Upvote) map[factKey]models.Fact {
	facts := make(map[factKey]models.Fact)
	if len(upvotes) == 0 {
		return facts
	}

	groups := make(map[factTable][]uuid.UUID)
	order := make([]factTable, 0)
	for _, u := range upvotes {
		t := factTable{u.EntityType, u.InfoType}
		if _, ok := groups[t]; !ok {
			order = append(order, t)
		}
		groups[t] = append(groups[t], u.FactID)
	}

	log := logger.WithContext(ctx)
	for _, t := range order {
		found, err := s.resolver.ResolveFacts(ctx, nil, dedupe(groups[t]), t.entityType, t.infoType)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"entity_type": t.entityType,
				"info_type":   t.infoType,
			}).Warn("upvote targets could not be loaded")
			continue
		}
		for id, f := range found {
			facts[factKey{t.entityType, t.infoType, id}] = f
		}
	}
	for _, u := range upvotes {
		if _, ok := facts[factKey{u.EntityType, u.InfoType, u.FactID}]; !ok {
			log.WithField("fact_id", u.FactID).Debug("upvote target missing")
		}
	}
	return facts
}

func (s *UpvoteService) loadProfiles(ctx context.Context, upvotes []models.Upvote) map[uuid.UUID]*UserProfileResponse {
	profiles := make(map[uuid.UUID]*UserProfileResponse)
	if len(upvotes) == 0 {
		return profiles
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(upvotes))
	for _, u := range upvotes {
		if _, ok := seen[u.VoterID]; ok {
			continue
		}
		seen[u.VoterID] = struct{}{}
		ids = append(ids, u.VoterID)
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("voter profiles could not be loaded")
		return profiles
	}
	for i := range users {
		profiles[users[i].ID] = toUserProfileResponse(&users[i])
	}
	return profiles
}
