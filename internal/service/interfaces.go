package service

import (
	"context"

	"github.com/mlukin/go-expense-tracker/models"
)

// AuthService covers account lifecycle and token handling: registration,
// credential verification, profile updates and the JWT issue/parse pair
// used by the authentication middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	FindUser(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ExpenseService covers all owner-scoped expense operations. Every method
// takes the authenticated caller's userID and never lets one user touch
// another user's records.
type ExpenseService interface {
	ListExpenses(ctx context.Context, userID int64, query models.ExpenseQuery) ([]models.Expense, error)
	ExpenseSummary(ctx context.Context, userID int64) (models.ExpenseSummary, error)

	CreateExpense(ctx context.Context, userID int64, request models.CreateExpenseRequest) (models.Expense, error)
	UpdateExpense(ctx context.Context, userID int64, expenseID int64, update models.ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, userID int64, expenseID int64) error
}
