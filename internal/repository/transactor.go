package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormTransactor runs units of work in a database transaction
type GormTransactor struct {
	db *gorm.DB
}

// Ensure GormTransactor implements Transactor
var _ Transactor = (*GormTransactor)(nil)

// NewGormTransactor creates a new transactor
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}

// conn picks the transaction when present, else the default connection
func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
