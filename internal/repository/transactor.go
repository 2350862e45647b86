package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs a function with transaction-scoped repositories. Everything
// done through the passed repositories commits or rolls back together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, insights InsightRepository) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a GORM-backed transactor.
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, insights InsightRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewUserRepository(tx), NewInsightRepository(tx))
	})
}
