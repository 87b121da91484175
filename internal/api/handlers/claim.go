package handlers

import (
	"context"
	"net/http"
	"strings"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimHandler handles ownership claims
type ClaimHandler struct {
	claimService service.ClaimServiceInterface
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService service.ClaimServiceInterface) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// CreateClaim handles POST /claims
// @Summary Claim ownership of a listing
// @Description Open a pending claim on an unowned listing. Files are object storage keys of verification documents.
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body service.CreateClaimRequest true "Claim data"
// @Success 201 {object} service.ClaimResponse "Claim opened"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 409 {object} ErrorResponse "Listing already owned or claim already pending"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateClaimRequest
	if !bindJSON(c, &req) {
		return
	}
	if !normalizeTypes(c, &req.EntityType, nil) {
		return
	}

	claim, err := h.claimService.CreateClaim(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, claim)
}

// GetClaim handles GET /claims/:id
// @Summary Get an ownership claim
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} service.ClaimResponse "Successfully retrieved claim"
// @Failure 400 {object} ErrorResponse "Invalid claim ID"
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	claim, err := h.claimService.GetClaim(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, claim)
}

// ListClaims handles GET /claims
// @Summary List ownership claims
// @Description Review queue for administrators, oldest first
// @Tags claims
// @Produce json
// @Param status query string false "Claim status" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} service.ClaimListResponse "Successfully retrieved claims"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	var status *models.ClaimStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ClaimStatus(strings.ToUpper(raw))
		if !s.IsValid() {
			respondError(c, apperrors.NewValidationError("status", "must be PENDING, APPROVED or REJECTED"))
			return
		}
		status = &s
	}
	page, size, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, err := h.claimService.ListClaims(c.Request.Context(), status, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, claims)
}

// ApproveClaim handles POST /claims/:id/approve
// @Summary Approve an ownership claim
// @Description Make the claimant the listing's verified owner and verify every price and schedule entry of the listing
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} service.ClaimResponse "Claim approved"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Claim or listing not found"
// @Failure 409 {object} ErrorResponse "Claim already reviewed or listing owned by someone else"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /claims/{id}/approve [post]
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.review(c, h.claimService.Approve)
}

// RejectClaim handles POST /claims/:id/reject
// @Summary Reject an ownership claim
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} service.ClaimResponse "Claim rejected"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Failure 409 {object} ErrorResponse "Claim already reviewed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /claims/{id}/reject [post]
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.review(c, h.claimService.Reject)
}

func (h *ClaimHandler) review(c *gin.Context, decide func(ctx context.Context, claimID, reviewerID uuid.UUID) (*service.ClaimResponse, error)) {
	reviewerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	claim, err := decide(c.Request.Context(), id, reviewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, claim)
}
