package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mlukin/go-expense-tracker/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	saveUser = `UPDATE users
    SET name = $1, password_hash = $2
    WHERE user_id = $3
    RETURNING user_id, name, email, password_hash, created_at;`

	createExpense = `INSERT INTO expenses (user_id, title, amount, category, date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING expense_id, user_id, title, amount, category, date, created_at;`

	findExpenseByID = `SELECT expense_id, user_id, title, amount, category, date, created_at
    FROM expenses
    WHERE expense_id = $1;`

	deleteExpense = `DELETE FROM expenses
    WHERE expense_id = $1;`

	summarizeExpenses = `SELECT COALESCE(SUM(amount), 0), COUNT(*)
    FROM expenses
    WHERE user_id = $1;`
)

// psql is the statement builder used for queries whose shape depends on
// runtime arguments. PostgreSQL uses numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindExpensesQuery dynamically builds the SELECT for listing expenses.
// The owner condition is always present; category and date bounds are added
// only when set on the filter. Rows are sorted newest first, with the id as
// a tie-breaker so pagination stays stable.
func buildFindExpensesQuery(filter models.ExpenseFilter) (string, []any, error) {
	query := psql.
		Select("expense_id", "user_id", "title", "amount", "category", "date", "created_at").
		From(models.Expense{}.TableName()).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"date": *filter.To})
	}

	query = query.OrderBy("date DESC", "expense_id ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	return query.ToSql()
}

// buildUpdateExpenseQuery dynamically builds the UPDATE applying only the
// non-nil fields of the patch. The caller guarantees the patch is non-empty.
// The statement returns the updated row so no follow-up SELECT is needed.
func buildUpdateExpenseQuery(expenseID int64, update models.ExpenseUpdate) (string, []any, error) {
	query := psql.Update(models.Expense{}.TableName())

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Amount != nil {
		query = query.Set("amount", *update.Amount)
	}
	if update.Category != nil {
		query = query.Set("category", *update.Category)
	}
	if update.Date != nil {
		query = query.Set("date", *update.Date)
	}

	query = query.
		Where(sq.Eq{"expense_id": expenseID}).
		Suffix("RETURNING expense_id, user_id, title, amount, category, date, created_at")

	return query.ToSql()
}
