package testutils

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"badminton-directory-backend/internal/config"
	"badminton-directory-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	pgUser     = "directory"
	pgPassword = "directory"
	pgDatabase = "directory_test"
)

// directoryTables is truncated between tests, children before parents
var directoryTables = []string{
	"upvotes",
	"ownership_claims",
	"court_prices",
	"court_schedules",
	"coach_prices",
	"coach_schedules",
	"courts",
	"coaches",
	"stringers",
	"users",
}

// One Postgres container serves every suite of the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a migrated database and matching config to repository suites
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start test database: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and removes the container
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		logrus.WithError(err).Warn("Could not remove test database container")
	} else {
		logrus.WithField("container", sharedResource.Container.Name).Info("Removed test database container")
	}
	sharedResource = nil
	sharedPool = nil
}

// SetupTest empties every table before a test
func (s *BaseTestSuite) SetupTest() { s.truncate() }

// TearDownTest empties every table after a test
func (s *BaseTestSuite) TearDownTest() { s.truncate() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.truncate() }

func (s *BaseTestSuite) truncate() {
	if s.DB == nil {
		return
	}
	quoted := make([]string, len(directoryTables))
	for i, t := range directoryTables {
		quoted[i] = `"` + t + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("Could not truncate test tables")
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		Environment:     "test",
		LogLevel:        "debug",
		DatabaseURL:     dsn,
		HomeLatitude:    49.2827,
		HomeLongitude:   -123.1207,
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}

	logrus.WithField("dsn_port", resource.GetPort("5432/tcp")).Info("Test database ready")
	return nil
}
