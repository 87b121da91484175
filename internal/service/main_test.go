//go:build integration
// +build integration

package service_test

import (
	"os"
	"testing"

	"badminton-directory-backend/internal/testutils"
)

// TestMain removes the shared Postgres container once the integration run ends
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
