package store

import (
	"context"
	"fmt"

	"github.com/mlukin/go-expense-tracker/internal/config"
	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations
// and wires up all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ExpenseRepository: NewExpenseRepository(db, log),
	}, nil
}
