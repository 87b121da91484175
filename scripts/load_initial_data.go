package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"badminton-directory-backend/internal/config"
	"badminton-directory-backend/internal/database"
	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const seedUsername = "directory_seed"

// ListingData mirrors one listing entry of the seed file
type ListingData struct {
	Type        string                 `yaml:"type"`
	Name        string                 `yaml:"name"`
	Location    string                 `yaml:"location"`
	Latitude    float64                `yaml:"latitude"`
	Longitude   float64                `yaml:"longitude"`
	Description string                 `yaml:"description"`
	Contact     map[string]interface{} `yaml:"contact,omitempty"`

	NumberOfCourts  int `yaml:"number_of_courts,omitempty"`
	ExperienceYears int `yaml:"experience_years,omitempty"`
	TurnaroundDays  int `yaml:"turnaround_days,omitempty"`

	Prices    []PriceData    `yaml:"prices,omitempty"`
	Schedules []ScheduleData `yaml:"schedules,omitempty"`
}

type PriceData struct {
	MinPrice    float64 `yaml:"min_price"`
	MaxPrice    float64 `yaml:"max_price"`
	Description string  `yaml:"description"`
}

type ScheduleData struct {
	DayOfWeek int    `yaml:"day_of_week"`
	OpenTime  string `yaml:"open_time"`
	CloseTime string `yaml:"close_time"`
}

// ListingsFile is the root of scripts/data/listings.yaml
type ListingsFile struct {
	Listings []ListingData `yaml:"listings"`
}

func main() {
	logger.Setup("info")
	logrus.Info("Loading initial data from YAML files")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	file, err := loadListings(filepath.Join("scripts", "data", "listings.yaml"))
	if err != nil {
		logrus.Fatalf("Failed to read seed file: %v", err)
	}

	created, skipped, err := seed(context.Background(), db, file)
	if err != nil {
		logrus.Fatalf("Failed to load initial data: %v", err)
	}

	logrus.WithFields(logrus.Fields{"created": created, "skipped": skipped}).Info("Initial data loaded")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadListings(path string) (*ListingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file ListingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

// seed inserts every listing whose name is not yet taken in its table
func seed(ctx context.Context, db *gorm.DB, file *ListingsFile) (created, skipped int, err error) {
	registry, err := repository.NewDefaultRegistry(db)
	if err != nil {
		return 0, 0, err
	}
	resolver, err := repository.NewTypeKeyedResolver(registry)
	if err != nil {
		return 0, 0, err
	}

	seedUser, err := ensureSeedUser(ctx, repository.NewUserRepository(db))
	if err != nil {
		return 0, 0, err
	}

	transactor := repository.NewGormTransactor(db)
	for _, data := range file.Listings {
		et, ok := models.ParseEntityType(data.Type)
		if !ok {
			return created, skipped, fmt.Errorf("listing %q: unknown type %q", data.Name, data.Type)
		}
		store, err := resolver.ListingStore(et)
		if err != nil {
			return created, skipped, err
		}

		var existing int64
		if err := db.WithContext(ctx).Model(store.New()).Where("name = ?", data.Name).Count(&existing).Error; err != nil {
			return created, skipped, err
		}
		if existing > 0 {
			skipped++
			continue
		}

		err = transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
			listing := buildListing(store.New(), data, seedUser)
			if err := store.Create(ctx, tx, listing); err != nil {
				return err
			}
			return createFacts(ctx, tx, resolver, et, listing.Base().ID, data, seedUser)
		})
		if err != nil {
			return created, skipped, fmt.Errorf("listing %q: %w", data.Name, err)
		}
		created++
	}
	return created, skipped, nil
}

func ensureSeedUser(ctx context.Context, users *repository.UserRepository) (uuid.UUID, error) {
	user, err := users.GetByUsername(ctx, seedUsername)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}
	user = &models.User{Username: seedUsername, DisplayName: "Directory seed data"}
	user.ID = uuid.New()
	if err := users.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func buildListing(listing models.Listing, data ListingData, creator uuid.UUID) models.Listing {
	base := listing.Base()
	base.Name = data.Name
	base.Location = data.Location
	base.Latitude = data.Latitude
	base.Longitude = data.Longitude
	base.Description = data.Description
	base.Contact = data.Contact
	base.CreatorID = creator

	switch l := listing.(type) {
	case *models.Court:
		l.NumberOfCourts = data.NumberOfCourts
	case *models.Coach:
		l.ExperienceYears = data.ExperienceYears
	case *models.Stringer:
		l.TurnaroundDays = data.TurnaroundDays
	}
	return listing
}

func createFacts(ctx context.Context, tx *gorm.DB, resolver *repository.TypeKeyedResolver, et models.EntityType, listingID uuid.UUID, data ListingData, submitter uuid.UUID) error {
	if len(data.Prices) > 0 {
		store, err := resolver.FactStore(et, models.InfoTypePrice)
		if err != nil {
			return err
		}
		for _, p := range data.Prices {
			fact := store.New()
			fact.Base().ListingID = listingID
			fact.Base().SubmittedBy = submitter
			if pf, ok := fact.(models.PriceFact); ok {
				*pf.Price() = models.PriceDetails{MinPrice: p.MinPrice, MaxPrice: p.MaxPrice, Description: p.Description}
			}
			if err := store.Create(ctx, tx, fact); err != nil {
				return err
			}
		}
	}
	if len(data.Schedules) > 0 {
		store, err := resolver.FactStore(et, models.InfoTypeSchedule)
		if err != nil {
			return err
		}
		for _, s := range data.Schedules {
			fact := store.New()
			fact.Base().ListingID = listingID
			fact.Base().SubmittedBy = submitter
			if sf, ok := fact.(models.ScheduleFact); ok {
				*sf.Schedule() = models.ScheduleDetails{DayOfWeek: s.DayOfWeek, OpenTime: s.OpenTime, CloseTime: s.CloseTime}
			}
			if err := store.Create(ctx, tx, fact); err != nil {
				return err
			}
		}
	}
	return nil
}
