package testutils

import (
	"fmt"
	"time"

	"badminton-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Vancouver downtown, used as the default location for test listings
const (
	DefaultLatitude  = 49.2827
	DefaultLongitude = -123.1207
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel:   base,
		Username:    "player_" + base.ID.String()[:8],
		DisplayName: "Test Player",
		AvatarURL:   "https://example.com/avatar.png",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	u := f.Create()
	u.Username = username
	return u
}

// ListingFactory builds listings of every entity type
type ListingFactory struct{}

// NewListingFactory creates a new ListingFactory
func NewListingFactory() *ListingFactory {
	return &ListingFactory{}
}

func (f *ListingFactory) base(name string, lat, lng float64) models.ListingBase {
	return models.ListingBase{
		BaseModel:   newBase(),
		Name:        name,
		Location:    fmt.Sprintf("%s, Vancouver BC", name),
		Latitude:    lat,
		Longitude:   lng,
		Description: "Test listing",
		Contact:     datatypes.JSONMap{"phone": "604-555-0100"},
		CreatorID:   uuid.New(),
	}
}

// Court creates an unowned court at the given coordinates
func (f *ListingFactory) Court(name string, lat, lng float64) *models.Court {
	return &models.Court{
		ListingBase:    f.base(name, lat, lng),
		NumberOfCourts: 6,
	}
}

// Coach creates an unowned coach at the given coordinates
func (f *ListingFactory) Coach(name string, lat, lng float64) *models.Coach {
	return &models.Coach{
		ListingBase:     f.base(name, lat, lng),
		ExperienceYears: 5,
	}
}

// Stringer creates an unowned stringer at the given coordinates
func (f *ListingFactory) Stringer(name string, lat, lng float64) *models.Stringer {
	return &models.Stringer{
		ListingBase:    f.base(name, lat, lng),
		TurnaroundDays: 2,
	}
}

// FactFactory builds price and schedule entries
type FactFactory struct{}

// NewFactFactory creates a new FactFactory
func NewFactFactory() *FactFactory {
	return &FactFactory{}
}

func (f *FactFactory) base(listingID uuid.UUID) models.FactBase {
	return models.FactBase{
		BaseModel:   newBase(),
		ListingID:   listingID,
		SubmittedBy: uuid.New(),
	}
}

// CourtPrice creates a price entry for a court
func (f *FactFactory) CourtPrice(listingID uuid.UUID, minPrice, maxPrice float64) *models.CourtPrice {
	return &models.CourtPrice{
		FactBase:     f.base(listingID),
		PriceDetails: models.PriceDetails{MinPrice: minPrice, MaxPrice: maxPrice, Description: "drop-in"},
	}
}

// CourtSchedule creates an opening-hours entry for a court
func (f *FactFactory) CourtSchedule(listingID uuid.UUID, day int) *models.CourtSchedule {
	return &models.CourtSchedule{
		FactBase:        f.base(listingID),
		ScheduleDetails: models.ScheduleDetails{DayOfWeek: day, OpenTime: "09:00", CloseTime: "22:00"},
	}
}

// CoachPrice creates a price entry for a coach
func (f *FactFactory) CoachPrice(listingID uuid.UUID, minPrice, maxPrice float64) *models.CoachPrice {
	return &models.CoachPrice{
		FactBase:     f.base(listingID),
		PriceDetails: models.PriceDetails{MinPrice: minPrice, MaxPrice: maxPrice, Description: "private lesson"},
	}
}

// CoachSchedule creates an availability entry for a coach
func (f *FactFactory) CoachSchedule(listingID uuid.UUID, day int) *models.CoachSchedule {
	return &models.CoachSchedule{
		FactBase:        f.base(listingID),
		ScheduleDetails: models.ScheduleDetails{DayOfWeek: day, OpenTime: "17:00", CloseTime: "21:00"},
	}
}

// ClaimFactory builds ownership claims
type ClaimFactory struct{}

// NewClaimFactory creates a new ClaimFactory
func NewClaimFactory() *ClaimFactory {
	return &ClaimFactory{}
}

// Pending creates a pending claim on the given listing
func (f *ClaimFactory) Pending(et models.EntityType, entityID, creatorID uuid.UUID) *models.OwnershipClaim {
	return &models.OwnershipClaim{
		BaseModel:  newBase(),
		EntityType: et,
		EntityID:   entityID,
		CreatorID:  creatorID,
		Status:     models.ClaimStatusPending,
		Message:    "I run this place",
		Files:      []string{"claims/business-licence.pdf"},
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Listing *ListingFactory
	Fact    *FactFactory
	Claim   *ClaimFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Listing: NewListingFactory(),
		Fact:    NewFactFactory(),
		Claim:   NewClaimFactory(),
	}
}
