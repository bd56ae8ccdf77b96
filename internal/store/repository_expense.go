package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/models"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository]. It executes all expense CRUD and aggregation
// operations directly against the "expenses" table using the embedded
// [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, expense_id, row counts, etc.).
type expenseRepository struct {
	*DB
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateExpense persists a new expense record and returns it with
// server-assigned fields (ExpenseID, CreatedAt).
//
// The INSERT uses the [createExpense] query which returns all columns via
// a RETURNING clause.
func (e *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := e.DB.QueryRowContext(ctx, createExpense, expense.UserID, expense.Title, expense.Amount, expense.Category, expense.Date)

	var created models.Expense
	if err := row.Scan(
		&created.ExpenseID,
		&created.UserID,
		&created.Title,
		&created.Amount,
		&created.Category,
		&created.Date,
		&created.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.CreateExpense").
			Int64("user_id", expense.UserID).
			Msg("failed to insert expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindExpenses retrieves the expense records matching the filter.
//
// The owner condition is always applied; category and date bounds narrow
// the result only when set. Rows come back newest first, bounded by the
// filter's limit and offset.
//
// Returns an empty slice when no records match.
func (e *expenseRepository) FindExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindExpensesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.FindExpenses").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.FindExpenses").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Expense, 0, filter.Limit)

	for rows.Next() {
		var item models.Expense

		scanErr := rows.Scan(
			&item.ExpenseID,
			&item.UserID,
			&item.Title,
			&item.Amount,
			&item.Category,
			&item.Date,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "expenseRepository.FindExpenses").
				Int64("user_id", filter.UserID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "expenseRepository.FindExpenses").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindExpenseByID fetches a single expense record by primary key.
//
// Returns [ErrExpenseNotFound] when the id does not resolve.
func (e *expenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := e.DB.QueryRowContext(ctx, findExpenseByID, expenseID)

	var found models.Expense
	if err := row.Scan(
		&found.ExpenseID,
		&found.UserID,
		&found.Title,
		&found.Amount,
		&found.Category,
		&found.Date,
		&found.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).
			Str("func", "expenseRepository.FindExpenseByID").
			Int64("expense_id", expenseID).
			Msg("failed to scan expense row")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateExpense applies the non-nil fields of the patch to the record and
// returns the updated row.
//
// The UPDATE statement is built dynamically so only the provided fields are
// written. Returns [ErrExpenseNotFound] when the id does not resolve.
func (e *expenseRepository) UpdateExpense(ctx context.Context, expenseID int64, update models.ExpenseUpdate) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateExpenseQuery(expenseID, update)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.UpdateExpense").
			Int64("expense_id", expenseID).
			Msg("failed to create query")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := e.DB.QueryRowContext(ctx, query, args...)

	var updated models.Expense
	if err := row.Scan(
		&updated.ExpenseID,
		&updated.UserID,
		&updated.Title,
		&updated.Amount,
		&updated.Category,
		&updated.Date,
		&updated.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).
			Str("func", "expenseRepository.UpdateExpense").
			Int64("expense_id", expenseID).
			Msg("failed to execute update statement")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteExpense removes the record with the given id.
//
// Returns [ErrExpenseNotFound] when the statement affected zero rows.
func (e *expenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	log := logger.FromContext(ctx)

	result, err := e.DB.ExecContext(ctx, deleteExpense, expenseID)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpense").
			Int64("expense_id", expenseID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpense").
			Int64("expense_id", expenseID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// SummarizeExpenses aggregates total amount and record count over all
// expenses of the given owner.
//
// An owner with no records yields a zero-valued summary, not an error:
// COALESCE turns the NULL SUM of an empty set into 0.
func (e *expenseRepository) SummarizeExpenses(ctx context.Context, userID int64) (models.ExpenseSummary, error) {
	log := logger.FromContext(ctx)

	row := e.DB.QueryRowContext(ctx, summarizeExpenses, userID)

	var summary models.ExpenseSummary
	if err := row.Scan(&summary.TotalAmount, &summary.ExpenseCount); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.SummarizeExpenses").
			Int64("user_id", userID).
			Msg("failed to scan summary row")
		return models.ExpenseSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return summary, nil
}
