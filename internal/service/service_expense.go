package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/store"
	"github.com/mlukin/go-expense-tracker/models"
)

const (
	// defaultPageLimit is the page size applied when the client omits or
	// botches the limit query parameter.
	defaultPageLimit = 10
)

// expenseService is the concrete implementation of ExpenseService.
// It validates incoming data, enforces ownership on every mutation and
// delegates persistence to an ExpenseRepository.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	logger            *logger.Logger
}

// NewExpenseService constructs an ExpenseService wired to the given
// repository.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

// ListExpenses returns one page of the caller's expenses, newest first.
//
// The query narrows the result by category and by an inclusive year or
// year+month date range. Page numbers are 1-based; out-of-range page and
// limit values fall back to 1 and the default page size. A month without a
// year is ignored. A page past the end of the data yields an empty slice,
// not an error.
func (e *expenseService) ListExpenses(ctx context.Context, userID int64, query models.ExpenseQuery) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	if query.Category != "" && !query.Category.Valid() {
		log.Error().Str("category", string(query.Category)).Msg("unknown category in listing query")
		return nil, ErrInvalidDataProvided
	}
	if query.Month < 0 || query.Month > 12 {
		log.Error().Int("month", query.Month).Msg("month out of range in listing query")
		return nil, ErrInvalidDataProvided
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	filter := models.ExpenseFilter{
		UserID:   userID,
		Category: query.Category,
		Limit:    uint64(limit),
		Offset:   uint64(page-1) * uint64(limit),
	}
	filter.From, filter.To = dateRange(query.Year, query.Month)

	expenses, err := e.expenseRepository.FindExpenses(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense listing failed")
		return nil, fmt.Errorf("expense listing failed: %w", err)
	}

	return expenses, nil
}

// ExpenseSummary aggregates total amount and record count over ALL of the
// caller's expenses, independent of any listing filters.
func (e *expenseService) ExpenseSummary(ctx context.Context, userID int64) (models.ExpenseSummary, error) {
	log := logger.FromContext(ctx)

	summary, err := e.expenseRepository.SummarizeExpenses(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense summary failed")
		return models.ExpenseSummary{}, fmt.Errorf("expense summary failed: %w", err)
	}

	return summary, nil
}

// CreateExpense validates the request and persists a new expense owned by
// the caller. Any owner value supplied by the client is ignored: the record
// is always attributed to userID. A missing date defaults to the current
// time.
func (e *expenseService) CreateExpense(ctx context.Context, userID int64, request models.CreateExpenseRequest) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Title) == "" || request.Amount <= 0 || !request.Category.Valid() {
		log.Error().
			Int64("user_id", userID).
			Str("category", string(request.Category)).
			Msg("invalid expense data provided")
		return models.Expense{}, ErrInvalidDataProvided
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	created, err := e.expenseRepository.CreateExpense(ctx, models.Expense{
		UserID:   userID,
		Title:    strings.TrimSpace(request.Title),
		Amount:   request.Amount,
		Category: request.Category,
		Date:     date,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("expense creation failed")
		return models.Expense{}, fmt.Errorf("expense creation failed: %w", err)
	}

	return created, nil
}

// UpdateExpense applies a partial patch to one of the caller's expenses.
//
// The record is fetched first: a missing id yields store.ErrExpenseNotFound
// and a record owned by someone else yields ErrNotOwner before any field is
// touched. Patch fields are validated with the same rules as creation. An
// empty patch returns the current record unchanged.
func (e *expenseService) UpdateExpense(ctx context.Context, userID int64, expenseID int64, update models.ExpenseUpdate) (models.Expense, error) {
	log := logger.FromContext(ctx)

	found, err := e.expenseRepository.FindExpenseByID(ctx, expenseID)
	if err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense lookup failed")
		return models.Expense{}, fmt.Errorf("expense lookup failed: %w", err)
	}
	if found.UserID != userID {
		log.Warn().
			Int64("expense_id", expenseID).
			Int64("owner_id", found.UserID).
			Int64("caller_id", userID).
			Msg("expense update denied: caller is not the owner")
		return models.Expense{}, ErrNotOwner
	}

	if update.Empty() {
		return found, nil
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.Expense{}, ErrInvalidDataProvided
	}
	if update.Amount != nil && *update.Amount <= 0 {
		return models.Expense{}, ErrInvalidDataProvided
	}
	if update.Category != nil && !update.Category.Valid() {
		return models.Expense{}, ErrInvalidDataProvided
	}

	updated, err := e.expenseRepository.UpdateExpense(ctx, expenseID, update)
	if err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense update failed")
		return models.Expense{}, fmt.Errorf("expense update failed: %w", err)
	}

	return updated, nil
}

// DeleteExpense removes one of the caller's expenses. Same ownership rules
// as UpdateExpense: missing id yields store.ErrExpenseNotFound, someone
// else's record yields ErrNotOwner.
func (e *expenseService) DeleteExpense(ctx context.Context, userID int64, expenseID int64) error {
	log := logger.FromContext(ctx)

	found, err := e.expenseRepository.FindExpenseByID(ctx, expenseID)
	if err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense lookup failed")
		return fmt.Errorf("expense lookup failed: %w", err)
	}
	if found.UserID != userID {
		log.Warn().
			Int64("expense_id", expenseID).
			Int64("owner_id", found.UserID).
			Int64("caller_id", userID).
			Msg("expense deletion denied: caller is not the owner")
		return ErrNotOwner
	}

	if err := e.expenseRepository.DeleteExpense(ctx, expenseID); err != nil {
		log.Err(err).Int64("expense_id", expenseID).Msg("expense deletion failed")
		return fmt.Errorf("expense deletion failed: %w", err)
	}

	return nil
}

// dateRange converts a year or year+month pair into an inclusive UTC time
// span. A zero year means no date filtering at all. With a month, the range
// runs from the first instant of that month to 23:59:59.999 of its last
// day; day 0 of the following month normalises to that last day, which also
// handles leap-year February. Year alone spans January 1 through
// December 31.
func dateRange(year, month int) (*time.Time, *time.Time) {
	if year == 0 {
		return nil, nil
	}

	var from, to time.Time
	if month >= 1 && month <= 12 {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.Month(month+1), 0, 23, 59, 59, 999000000, time.UTC)
	} else {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.December, 31, 23, 59, 59, 999000000, time.UTC)
	}

	return &from, &to
}
