package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upvote records that a user vouched for a fact. Facts live in per-type tables,
// so the target collection is identified by the EntityType/InfoType tags.
type Upvote struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	VoterID    uuid.UUID  `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_voter_fact,priority:1"`
	FactID     uuid.UUID  `json:"fact_id" gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_voter_fact,priority:2;index"`
	EntityType EntityType `json:"entity_type" gorm:"type:varchar(20);not null;index:idx_upvotes_type"`
	InfoType   InfoType   `json:"info_type" gorm:"type:varchar(20);not null;index:idx_upvotes_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the table name for Upvote
func (Upvote) TableName() string {
	return "upvotes"
}

// BeforeCreate sets the UUID if not already set
func (u *Upvote) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
