package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"badminton-directory-backend/internal/auth"
	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Details string `json:"details,omitempty" example:"listing not found"`
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyVoted(err),
		apperrors.IsInvalidStateTransition(err),
		apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrListingAlreadyOwned):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error","details"} with the mapped status
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).WithError(err).Error("request failed")
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: http.StatusText(status), Details: err.Error()})
}

// currentUser returns the token subject or writes 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok || id == uuid.Nil {
		respondError(c, apperrors.ErrMissingUser)
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewValidationError(name, "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func pathEntityType(c *gin.Context) (models.EntityType, bool) {
	raw := c.Param("entityType")
	et, ok := models.ParseEntityType(raw)
	if !ok {
		respondError(c, apperrors.NewValidationError("entityType", "unknown entity type "+strconv.Quote(raw)))
		return "", false
	}
	return et, true
}

func pathInfoType(c *gin.Context) (models.InfoType, bool) {
	raw := c.Param("infoType")
	it, ok := models.ParseInfoType(raw)
	if !ok {
		respondError(c, apperrors.NewValidationError("infoType", "unknown info type "+strconv.Quote(raw)))
		return "", false
	}
	return it, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperrors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperrors.NewValidationError(name, "must be a finite number")
	}
	return &v, nil
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func queryBool(c *gin.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.NewValidationError(name, "must be true or false")
	}
	return v, nil
}

// queryInts accepts both repeated parameters and comma separated lists
func queryInts(c *gin.Context, name string) ([]int, error) {
	var out []int
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, apperrors.NewValidationError(name, "must be a list of integers")
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// pageParams reads the zero-based page and size query parameters
func pageParams(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}
