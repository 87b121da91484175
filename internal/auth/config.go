package auth

import (
	"fmt"
	"time"
)

// Defaults applied by NewAuthConfig
const (
	DefaultIssuer   = "badminton-directory-backend"
	DefaultTokenTTL = time.Hour
)

// AuthConfig holds the token verification settings of the API
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig builds an AuthConfig for the given signing secret with default issuer and TTL
func NewAuthConfig(secret string) *AuthConfig {
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    DefaultIssuer,
		TokenTTL:  DefaultTokenTTL,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
