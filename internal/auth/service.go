package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in the role claim
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AuthService signs and verifies bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims. The subject is the user's UUID.
type AuthClaims struct {
	Username             string `json:"username" example:"shuttlecock"`
	Role                 string `json:"role" example:"user"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID parses the subject claim
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// IsAdmin reports whether the token carries the admin role
func (c *AuthClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username, role string) (string, error) {
	if role == "" {
		role = RoleUser
	}
	now := s.now()
	claims := &AuthClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}
	return claims, nil
}
