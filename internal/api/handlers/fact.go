package handlers

import (
	"net/http"

	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FactHandler handles community-submitted prices and schedules
type FactHandler struct {
	factService service.FactServiceInterface
}

// NewFactHandler creates a new fact handler
func NewFactHandler(factService service.FactServiceInterface) *FactHandler {
	return &FactHandler{
		factService: factService,
	}
}

// SubmitPrice handles POST /listings/:entityType/:id/prices
// @Summary Submit a price
// @Description Propose a price range for a court or coach. The entry starts unverified with no upvotes.
// @Tags facts
// @Accept json
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches)
// @Param id path string true "Listing ID (UUID)"
// @Param price body service.SubmitPriceRequest true "Price data"
// @Success 201 {object} service.FactResponse "Successfully submitted price"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType}/{id}/prices [post]
func (h *FactHandler) SubmitPrice(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	listingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SubmitPriceRequest
	if !bindJSON(c, &req) {
		return
	}

	fact, err := h.factService.SubmitPrice(c.Request.Context(), et, listingID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fact)
}

// SubmitSchedule handles POST /listings/:entityType/:id/schedules
// @Summary Submit opening hours
// @Description Propose opening hours for one ISO weekday of a court or coach
// @Tags facts
// @Accept json
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches)
// @Param id path string true "Listing ID (UUID)"
// @Param schedule body service.SubmitScheduleRequest true "Schedule data"
// @Success 201 {object} service.FactResponse "Successfully submitted schedule"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType}/{id}/schedules [post]
func (h *FactHandler) SubmitSchedule(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	listingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SubmitScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	fact, err := h.factService.SubmitSchedule(c.Request.Context(), et, listingID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fact)
}

// ListFacts handles GET /listings/:entityType/:id/:infoType
// @Summary List prices or schedules of a listing
// @Tags facts
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches)
// @Param id path string true "Listing ID (UUID)"
// @Param infoType path string true "Fact type" Enums(prices, schedules)
// @Success 200 {array} service.FactResponse "Entries, most upvoted first"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType}/{id}/{infoType} [get]
func (h *FactHandler) ListFacts(c *gin.Context) {
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	listingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	it, ok := pathInfoType(c)
	if !ok {
		return
	}

	facts, err := h.factService.ListFacts(c.Request.Context(), et, it, listingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, facts)
}
