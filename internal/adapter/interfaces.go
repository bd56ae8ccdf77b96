// Package adapter provides a typed Go client for the expense tracker's REST
// API. It is used by command-line tooling and integration tests that talk to
// a running server over HTTP.
package adapter

import (
	"context"

	"github.com/mlukin/go-expense-tracker/models"
)

// ServerAdapter is the client-side contract mirroring the server's public
// API. Register, Login and UpdateProfile store the returned bearer token on
// the adapter, so subsequent calls are authenticated automatically.
type ServerAdapter interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.AuthResponse, error)

	ListExpenses(ctx context.Context, query models.ExpenseQuery) ([]models.Expense, error)
	ExpenseSummary(ctx context.Context) (models.ExpenseSummary, error)
	CreateExpense(ctx context.Context, request models.CreateExpenseRequest) (models.Expense, error)
	UpdateExpense(ctx context.Context, expenseID int64, update models.ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) (models.DeleteExpenseResponse, error)

	// SetToken installs a previously obtained bearer token, e.g. one loaded
	// from a credentials file between invocations.
	SetToken(token string)

	// Token returns the bearer token currently used for authenticated calls.
	Token() string
}
