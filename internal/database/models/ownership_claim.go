package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OwnershipClaim is a request by a user to become the verified owner of a listing
type OwnershipClaim struct {
	BaseModel
	EntityType EntityType     `json:"entity_type" gorm:"type:varchar(20);not null;index:idx_claims_target"`
	EntityID   uuid.UUID      `json:"entity_id" gorm:"type:uuid;not null;index:idx_claims_target"`
	CreatorID  uuid.UUID      `json:"creator_id" gorm:"type:uuid;not null;index"`
	Status     ClaimStatus    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Message    string         `json:"message" gorm:"type:text"`
	Files      pq.StringArray `json:"files" gorm:"type:text[]"` // object storage keys of verification documents
	ReviewedBy *uuid.UUID     `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt *time.Time     `json:"reviewed_at,omitempty"`
}

// TableName returns the table name for OwnershipClaim
func (OwnershipClaim) TableName() string {
	return "ownership_claims"
}
