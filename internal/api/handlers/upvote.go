package handlers

import (
	"net/http"
	"strings"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UpvoteHandler handles the upvote ledger endpoints
type UpvoteHandler struct {
	upvoteService service.UpvoteServiceInterface
}

// NewUpvoteHandler creates a new upvote handler
func NewUpvoteHandler(upvoteService service.UpvoteServiceInterface) *UpvoteHandler {
	return &UpvoteHandler{
		upvoteService: upvoteService,
	}
}

// AddUpvote handles POST /upvotes
// @Summary Upvote a price or schedule entry
// @Description Record the caller's vote on a fact. Each user may vote for a fact once.
// @Tags upvotes
// @Accept json
// @Produce json
// @Param upvote body service.AddUpvoteRequest true "Vote target"
// @Success 201 {object} service.UpvoteResponse "Vote recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Fact not found"
// @Failure 409 {object} ErrorResponse "Already voted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upvotes [post]
func (h *UpvoteHandler) AddUpvote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.AddUpvoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if !normalizeTypes(c, &req.EntityType, &req.InfoType) {
		return
	}

	upvote, err := h.upvoteService.AddUpvote(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, upvote)
}

// ListUpvotes handles GET /upvotes
// @Summary List upvotes
// @Description Newest first, each with the voted fact and the voter's profile when still available
// @Tags upvotes
// @Produce json
// @Param voter_id query string false "Only votes by this user (UUID)"
// @Param entity_type query string false "Listing type" Enums(courts, coaches)
// @Param info_type query string false "Fact type" Enums(prices, schedules)
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} service.UpvoteListResponse "Successfully retrieved upvotes"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upvotes [get]
func (h *UpvoteHandler) ListUpvotes(c *gin.Context) {
	q := &service.UpvoteListQuery{}
	var err error
	if q.VoterID, err = queryUUID(c, "voter_id"); err != nil {
		respondError(c, err)
		return
	}
	if raw := c.Query("entity_type"); raw != "" {
		et, ok := models.ParseEntityType(raw)
		if !ok {
			respondError(c, apperrors.NewValidationError("entity_type", "unknown entity type"))
			return
		}
		q.EntityType = &et
	}
	if raw := c.Query("info_type"); raw != "" {
		it, ok := models.ParseInfoType(raw)
		if !ok {
			respondError(c, apperrors.NewValidationError("info_type", "unknown info type"))
			return
		}
		q.InfoType = &it
	}
	if q.Page, q.Size, err = pageParams(c); err != nil {
		respondError(c, err)
		return
	}

	upvotes, err := h.upvoteService.ListUpvotes(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, upvotes)
}

// normalizeTypes lets bodies use either enum values or path segments
func normalizeTypes(c *gin.Context, et *models.EntityType, it *models.InfoType) bool {
	if et != nil && *et != "" {
		parsed, ok := models.ParseEntityType(string(*et))
		if !ok {
			respondError(c, apperrors.NewValidationError("entity_type", "unknown entity type "+strings.ToLower(string(*et))))
			return false
		}
		*et = parsed
	}
	if it != nil && *it != "" {
		parsed, ok := models.ParseInfoType(string(*it))
		if !ok {
			respondError(c, apperrors.NewValidationError("info_type", "unknown info type "+strings.ToLower(string(*it))))
			return false
		}
		*it = parsed
	}
	return true
}
