package models

import "strings"

// EntityType tags the kind of listing a record belongs to
type EntityType string

const (
	EntityTypeCourt    EntityType = "COURT"
	EntityTypeCoach    EntityType = "COACH"
	EntityTypeStringer EntityType = "STRINGER"
)

// InfoType tags the kind of community-submitted fact
type InfoType string

const (
	InfoTypePrice    InfoType = "PRICE"
	InfoTypeSchedule InfoType = "SCHEDULE"
)

// ClaimStatus is the lifecycle state of an ownership claim
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

// EntityTypes lists every listing type the directory knows about
var EntityTypes = []EntityType{EntityTypeCourt, EntityTypeCoach, EntityTypeStringer}

// factInfoTypes is the set of fact collections each listing type carries.
// Stringers have no community-submitted facts.
var factInfoTypes = map[EntityType][]InfoType{
	EntityTypeCourt:    {InfoTypePrice, InfoTypeSchedule},
	EntityTypeCoach:    {InfoTypePrice, InfoTypeSchedule},
	EntityTypeStringer: nil,
}

// IsValid checks if the EntityType is valid
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCourt, EntityTypeCoach, EntityTypeStringer:
		return true
	}
	return false
}

// InfoTypes returns the fact collections carried by listings of this type
func (e EntityType) InfoTypes() []InfoType {
	return factInfoTypes[e]
}

// Supports reports whether listings of this type carry facts of the given info type
func (e EntityType) Supports(info InfoType) bool {
	for _, it := range factInfoTypes[e] {
		if it == info {
			return true
		}
	}
	return false
}

// PathSegment returns the plural lower-case form used in URLs
func (e EntityType) PathSegment() string {
	switch e {
	case EntityTypeCourt:
		return "courts"
	case EntityTypeCoach:
		return "coaches"
	case EntityTypeStringer:
		return "stringers"
	}
	return ""
}

// IsValid checks if the InfoType is valid
func (i InfoType) IsValid() bool {
	switch i {
	case InfoTypePrice, InfoTypeSchedule:
		return true
	}
	return false
}

// PathSegment returns the plural lower-case form used in URLs
func (i InfoType) PathSegment() string {
	switch i {
	case InfoTypePrice:
		return "prices"
	case InfoTypeSchedule:
		return "schedules"
	}
	return ""
}

// IsValid checks if the ClaimStatus is valid
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// ParseEntityType accepts the enum value ("COURT") or a path segment ("courts", "court")
func ParseEntityType(raw string) (EntityType, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "court", "courts":
		return EntityTypeCourt, true
	case "coach", "coaches":
		return EntityTypeCoach, true
	case "stringer", "stringers":
		return EntityTypeStringer, true
	}
	return "", false
}

// ParseInfoType accepts the enum value ("PRICE") or a path segment ("prices", "price")
func ParseInfoType(raw string) (InfoType, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "price", "prices":
		return InfoTypePrice, true
	case "schedule", "schedules":
		return InfoTypeSchedule, true
	}
	return "", false
}
