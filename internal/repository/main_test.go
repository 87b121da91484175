//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"badminton-directory-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain removes the shared Postgres container once the integration run ends
func TestMain(m *testing.M) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logrus.Warn("Integration run interrupted")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
