package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListingBase holds the columns shared by every listing table
type ListingBase struct {
	BaseModel
	Name        string            `json:"name" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	Location    string            `json:"location" gorm:"size:500;index"`
	Latitude    float64           `json:"latitude" gorm:"not null"`
	Longitude   float64           `json:"longitude" gorm:"not null"`
	Description string            `json:"description" gorm:"type:text"`
	Contact     datatypes.JSONMap `json:"contact,omitempty" gorm:"type:jsonb"`
	// OwnerID stays nil until an ownership claim is approved
	OwnerID   *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	CreatorID uuid.UUID  `json:"creator_id" gorm:"type:uuid;not null;index"`
}

// Base exposes the shared listing columns of any concrete listing
func (l *ListingBase) Base() *ListingBase {
	return l
}

// IsVerified reports whether the listing has an approved owner
func (l *ListingBase) IsVerified() bool {
	return l.OwnerID != nil
}

// Listing is implemented by *Court, *Coach and *Stringer
type Listing interface {
	Base() *ListingBase
	IsVerified() bool
	EntityType() EntityType
	Facts(info InfoType) []Fact
}

// Court is a badminton venue
type Court struct {
	ListingBase
	NumberOfCourts int             `json:"number_of_courts"`
	Prices         []CourtPrice    `json:"prices,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Schedules      []CourtSchedule `json:"schedules,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Court
func (Court) TableName() string {
	return "courts"
}

// EntityType returns the registry tag for courts
func (Court) EntityType() EntityType {
	return EntityTypeCourt
}

// Facts returns the loaded fact collection of the given type
func (c *Court) Facts(info InfoType) []Fact {
	var out []Fact
	switch info {
	case InfoTypePrice:
		for i := range c.Prices {
			out = append(out, &c.Prices[i])
		}
	case InfoTypeSchedule:
		for i := range c.Schedules {
			out = append(out, &c.Schedules[i])
		}
	}
	return out
}

// Coach is an individual offering lessons
type Coach struct {
	ListingBase
	ExperienceYears int             `json:"experience_years"`
	Prices          []CoachPrice    `json:"prices,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Schedules       []CoachSchedule `json:"schedules,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Coach
func (Coach) TableName() string {
	return "coaches"
}

// EntityType returns the registry tag for coaches
func (Coach) EntityType() EntityType {
	return EntityTypeCoach
}

// Facts returns the loaded fact collection of the given type
func (c *Coach) Facts(info InfoType) []Fact {
	var out []Fact
	switch info {
	case InfoTypePrice:
		for i := range c.Prices {
			out = append(out, &c.Prices[i])
		}
	case InfoTypeSchedule:
		for i := range c.Schedules {
			out = append(out, &c.Schedules[i])
		}
	}
	return out
}

// Stringer is a racket stringing service
type Stringer struct {
	ListingBase
	TurnaroundDays int `json:"turnaround_days"`
}

// TableName returns the table name for Stringer
func (Stringer) TableName() string {
	return "stringers"
}

// EntityType returns the registry tag for stringers
func (Stringer) EntityType() EntityType {
	return EntityTypeStringer
}

// Facts is always empty: stringers carry no community facts
func (s *Stringer) Facts(info InfoType) []Fact {
	return nil
}
