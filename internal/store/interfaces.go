package store

import (
	"context"

	"github.com/mlukin/go-expense-tracker/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. A duplicate email fails with [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SaveUser persists changed name and password hash of an existing
	// account and returns the stored row.
	SaveUser(ctx context.Context, user models.User) (models.User, error)
}

// ExpenseRepository is the persistence contract for expense records.
// Every method operates on raw rows; owner-scoping decisions live in the
// service layer, except for FindExpenses and SummarizeExpenses which are
// always owner-filtered by construction.
type ExpenseRepository interface {
	// CreateExpense persists a new record and returns it with
	// server-assigned fields.
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	// FindExpenses returns the rows matching filter, sorted by date
	// descending, bounded by the filter's limit and offset.
	// An empty result is a success, not an error.
	FindExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error)

	// FindExpenseByID fetches a single record by primary key.
	// Returns [ErrExpenseNotFound] when the id does not resolve.
	FindExpenseByID(ctx context.Context, expenseID int64) (models.Expense, error)

	// UpdateExpense applies the non-nil fields of update to the record and
	// returns the updated row. Returns [ErrExpenseNotFound] when the id
	// does not resolve.
	UpdateExpense(ctx context.Context, expenseID int64, update models.ExpenseUpdate) (models.Expense, error)

	// DeleteExpense removes the record. Returns [ErrExpenseNotFound] when
	// the id does not resolve.
	DeleteExpense(ctx context.Context, expenseID int64) error

	// SummarizeExpenses aggregates total amount and record count over ALL
	// expenses of the given owner. Zero records yield a {0, 0} summary.
	SummarizeExpenses(ctx context.Context, userID int64) (models.ExpenseSummary, error)
}
