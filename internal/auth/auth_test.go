package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"badminton-directory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(NewAuthConfig("test-signing-key"))
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		config := NewAuthConfig("secret")
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, DefaultIssuer, config.Issuer)
		assert.Equal(t, time.Hour, config.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("").ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := NewAuthConfig("secret")
		config.TokenTTL = 0
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL must be positive")
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid auth config")
	})
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)
	userID := uuid.New()

	token, err := service.GenerateJWT(userID, "smasher", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "smasher", claims.Username)
	assert.Equal(t, RoleUser, claims.Role)
	assert.False(t, claims.IsAdmin())
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTRejectsForeignSecret(t *testing.T) {
	service := newTestService(t)
	other, err := NewAuthService(NewAuthConfig("another-key"))
	require.NoError(t, err)

	token, err := other.GenerateJWT(uuid.New(), "smasher", RoleAdmin)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsNonUUIDSubject(t *testing.T) {
	service := newTestService(t)
	claims := &AuthClaims{
		Username: "legacy",
		Role:     RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12345",
			Issuer:    DefaultIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subject")
}

func TestJWTExpiration(t *testing.T) {
	service := newTestService(t)
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := service.GenerateJWT(uuid.New(), "smasher", RoleUser)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	protected := router.Group("/", middleware.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		username, _ := GetUsername(c)
		ctxUser, _ := c.Request.Context().Value(logger.UserKey).(string)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "username": username, "ctx_user": ctxUser})
	})
	protected.GET("/admin", middleware.RequireRole(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, service
}

func TestRequireAuth(t *testing.T) {
	router, service := newAuthRouter(t)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets user context", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateJWT(userID, "smasher", RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), `"ctx_user":"smasher"`)
	})
}

func TestRequireRole(t *testing.T) {
	router, service := newAuthRouter(t)

	call := func(role string) int {
		token, err := service.GenerateJWT(uuid.New(), "someone", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusForbidden, call(RoleUser))
	assert.Equal(t, http.StatusNoContent, call(RoleAdmin))
}
