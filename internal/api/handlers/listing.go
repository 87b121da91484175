package handlers

import (
	"net/http"

	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles HTTP requests for courts, coaches and stringers
type ListingHandler struct {
	listingService service.ListingServiceInterface
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService service.ListingServiceInterface) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// CreateListing handles POST /listings/:entityType
// @Summary Create a listing
// @Description Create an unowned court, coach or stringer. The caller becomes its creator, not its owner.
// @Tags listings
// @Accept json
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches, stringers)
// @Param listing body service.CreateListingRequest true "Listing data"
// @Success 201 {object} service.ListingResponse "Successfully created listing"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType} [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	var req service.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), et, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// GetListing handles GET /listings/:entityType/:id
// @Summary Get a listing
// @Description Get a listing with its price and schedule entries, most upvoted first
// @Tags listings
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches, stringers)
// @Param id path string true "Listing ID (UUID)"
// @Success 200 {object} service.ListingResponse "Successfully retrieved listing"
// @Failure 400 {object} ErrorResponse "Invalid listing ID"
// @Failure 404 {object} ErrorResponse "Listing not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType}/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	listing, err := h.listingService.GetListing(c.Request.Context(), et, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// SearchListings handles GET /listings/:entityType
// @Summary Search listings
// @Description Filter listings by price range and opening days, then page them by name, location or distance
// @Tags listings
// @Produce json
// @Param entityType path string true "Listing type" Enums(courts, coaches, stringers)
// @Param minPrice query number false "Lowest acceptable minimum price" default(0)
// @Param maxPrice query number false "Highest acceptable maximum price"
// @Param daysOfWeek query []int false "ISO weekdays (1=Monday .. 7=Sunday)" collectionFormat(csv)
// @Param verifiedOnly query bool false "Only listings with a verified owner" default(false)
// @Param sortBy query string false "Sort field" Enums(name, location, distance) default(distance)
// @Param sortDirection query string false "Sort direction" Enums(asc, desc) default(asc)
// @Param lat query number false "Reference latitude for distance sort"
// @Param lon query number false "Reference longitude for distance sort"
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} service.ListingListResponse "Successfully retrieved listings"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /listings/{entityType} [get]
func (h *ListingHandler) SearchListings(c *gin.Context) {
	et, ok := pathEntityType(c)
	if !ok {
		return
	}
	q, err := searchQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	listings, err := h.listingService.SearchListings(c.Request.Context(), et, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func searchQuery(c *gin.Context) (*service.ListingSearchQuery, error) {
	q := &service.ListingSearchQuery{
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
	var err error
	if q.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return nil, err
	}
	if q.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return nil, err
	}
	if q.DaysOfWeek, err = queryInts(c, "daysOfWeek"); err != nil {
		return nil, err
	}
	if q.VerifiedOnly, err = queryBool(c, "verifiedOnly"); err != nil {
		return nil, err
	}
	if q.Latitude, err = queryFloat(c, "lat"); err != nil {
		return nil, err
	}
	if q.Longitude, err = queryFloat(c, "lon"); err != nil {
		return nil, err
	}
	if q.Page, q.Size, err = pageParams(c); err != nil {
		return nil, err
	}
	return q, nil
}
