package handlers

import (
	"net/http"

	"badminton-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles public user profiles
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterProfile handles POST /users
// @Summary Register the caller's profile
// @Description Create the public profile of the token subject. The profile id is the token's subject.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body service.RegisterProfileRequest true "Profile data"
// @Success 201 {object} service.UserProfileResponse "Profile created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Profile or username already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) RegisterProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.RegisterProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.userService.RegisterProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /users/:id
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserProfileResponse "Successfully retrieved profile"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
