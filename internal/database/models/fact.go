package models

import "github.com/google/uuid"

// FactBase holds the columns shared by every upvotable fact table
type FactBase struct {
	BaseModel
	ListingID   uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index"`
	SubmittedBy uuid.UUID `json:"submitted_by" gorm:"type:uuid;not null;index"`
	Upvotes     int       `json:"upvotes" gorm:"not null;default:0"`
	Verified    bool      `json:"verified" gorm:"not null;default:false;index"`
}

// Base exposes the shared fact columns of any concrete fact
func (f *FactBase) Base() *FactBase {
	return f
}

// PriceDetails is the payload of a price entry
type PriceDetails struct {
	MinPrice    float64 `json:"min_price" gorm:"not null;index"`
	MaxPrice    float64 `json:"max_price" gorm:"not null;index"`
	Description string  `json:"description" gorm:"size:255"`
}

// Price exposes the price payload
func (p *PriceDetails) Price() *PriceDetails {
	return p
}

// ScheduleDetails is the payload of a schedule entry
type ScheduleDetails struct {
	DayOfWeek int    `json:"day_of_week" gorm:"not null;index"` // ISO 8601: 1=Monday .. 7=Sunday
	OpenTime  string `json:"open_time" gorm:"size:5;not null"`  // HH:MM
	CloseTime string `json:"close_time" gorm:"size:5;not null"` // HH:MM
}

// Schedule exposes the schedule payload
func (s *ScheduleDetails) Schedule() *ScheduleDetails {
	return s
}

// Fact is a community-submitted, upvotable detail about a listing
type Fact interface {
	Base() *FactBase
	EntityType() EntityType
	InfoType() InfoType
}

// PriceFact is a Fact carrying price details
type PriceFact interface {
	Fact
	Price() *PriceDetails
}

// ScheduleFact is a Fact carrying schedule details
type ScheduleFact interface {
	Fact
	Schedule() *ScheduleDetails
}

// CourtPrice is a price entry for a court
type CourtPrice struct {
	FactBase
	PriceDetails
}

func (CourtPrice) TableName() string     { return "court_prices" }
func (CourtPrice) EntityType() EntityType { return EntityTypeCourt }
func (CourtPrice) InfoType() InfoType     { return InfoTypePrice }

// CourtSchedule is an opening-hours entry for a court
type CourtSchedule struct {
	FactBase
	ScheduleDetails
}

func (CourtSchedule) TableName() string     { return "court_schedules" }
func (CourtSchedule) EntityType() EntityType { return EntityTypeCourt }
func (CourtSchedule) InfoType() InfoType     { return InfoTypeSchedule }

// CoachPrice is a lesson price entry for a coach
type CoachPrice struct {
	FactBase
	PriceDetails
}

func (CoachPrice) TableName() string     { return "coach_prices" }
func (CoachPrice) EntityType() EntityType { return EntityTypeCoach }
func (CoachPrice) InfoType() InfoType     { return InfoTypePrice }

// CoachSchedule is an availability entry for a coach
type CoachSchedule struct {
	FactBase
	ScheduleDetails
}

func (CoachSchedule) TableName() string     { return "coach_schedules" }
func (CoachSchedule) EntityType() EntityType { return EntityTypeCoach }
func (CoachSchedule) InfoType() InfoType     { return InfoTypeSchedule }
