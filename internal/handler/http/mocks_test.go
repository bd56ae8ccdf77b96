package http

import (
	"context"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/service"
	"github.com/mlukin/go-expense-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn      func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	findUserFn      func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) FindUser(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserFn != nil {
		return m.findUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ExpenseService
// ─────────────────────────────────────────────

type mockExpenseService struct {
	listFn    func(ctx context.Context, userID int64, query models.ExpenseQuery) ([]models.Expense, error)
	summaryFn func(ctx context.Context, userID int64) (models.ExpenseSummary, error)
	createFn  func(ctx context.Context, userID int64, request models.CreateExpenseRequest) (models.Expense, error)
	updateFn  func(ctx context.Context, userID int64, expenseID int64, update models.ExpenseUpdate) (models.Expense, error)
	deleteFn  func(ctx context.Context, userID int64, expenseID int64) error
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, userID int64, query models.ExpenseQuery) ([]models.Expense, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, query)
	}
	return nil, nil
}

func (m *mockExpenseService) ExpenseSummary(ctx context.Context, userID int64) (models.ExpenseSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, userID)
	}
	return models.ExpenseSummary{}, nil
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, userID int64, request models.CreateExpenseRequest) (models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, request)
	}
	return models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, userID int64, expenseID int64, update models.ExpenseUpdate) (models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, expenseID, update)
	}
	return models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID int64, expenseID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, expenseID)
	}
	return nil
}

// newTestHandler wires the mocks into a Handler the way main wires the real
// services.
func newTestHandler(auth *mockAuthService, expenses *mockExpenseService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if expenses == nil {
		expenses = &mockExpenseService{}
	}
	return NewHandler(&service.Services{
		AuthService:    auth,
		ExpenseService: expenses,
	}, logger.Nop())
}
