package handlers_test

import (
	"badminton-directory-backend/internal/auth"
	"badminton-directory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// newAuthenticatedSuite returns a router whose requests all carry userID as the token subject
func newAuthenticatedSuite(userID uuid.UUID) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, userID)
		c.Set(auth.ContextUsername, "tester")
		c.Set(auth.ContextRole, auth.RoleAdmin)
		c.Next()
	})
	return httpSuite
}
