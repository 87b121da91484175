package auth

import (
	"net/http"
	"strings"

	"badminton-directory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
	ContextClaims   = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated callers that lack the given role.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := GetRole(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if current != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role", "details": role + " role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	// ValidateJWT already rejected unparsable subjects
	userID, _ := claims.UserID()
	c.Set(ContextUserID, userID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextClaims, claims)

	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Username))
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ContextUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetRole is a helper function to extract the role claim from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
