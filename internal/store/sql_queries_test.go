package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlukin/go-expense-tracker/models"
)

func Test_buildFindExpensesQuery_OwnerOnly(t *testing.T) {
	filter := models.ExpenseFilter{UserID: 42, Limit: 10, Offset: 0}

	query, args, err := buildFindExpensesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// query structure
	require.Contains(t, q, "select")
	require.Contains(t, q, "from expenses")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by date desc, expense_id asc")
	require.Contains(t, q, "limit 10")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// no optional filters applied; category is present in SELECT,
	// so check only the WHERE section
	whereIdx := strings.Index(q, "where")
	require.NotEqual(t, -1, whereIdx, "query should contain WHERE clause")
	wherePart := q[whereIdx:]
	require.NotContains(t, wherePart, "category")
	require.NotContains(t, wherePart, "date >=")
	require.NotContains(t, wherePart, "date <=")

	// exactly one argument: userID
	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])
}

func Test_buildFindExpensesQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildFindExpensesQuery(models.ExpenseFilter{UserID: 1, Limit: 10})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"expense_id",
		"user_id",
		"title",
		"amount",
		"category",
		"date",
		"created_at",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}

	require.NotContains(t, q[:strings.Index(q, " from ")], "*",
		"query should not use SELECT *")
}

func Test_buildFindExpensesQuery(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC)

	tests := []struct {
		name       string
		filter     models.ExpenseFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: category filter adds placeholder and argument",
			filter: models.ExpenseFilter{UserID: 42, Category: models.CategoryFood, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "category = $2")

				require.Len(t, args, 2)
				assert.Equal(t, int64(42), args[0])
				assert.Equal(t, models.CategoryFood, args[1])
			},
		},
		{
			name:   "success: date bounds add inclusive range conditions",
			filter: models.ExpenseFilter{UserID: 42, From: &from, To: &to, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "date >= $2")
				require.Contains(t, q, "date <= $3")

				require.Len(t, args, 3)
				assert.Equal(t, int64(42), args[0])
				assert.Equal(t, from, args[1])
				assert.Equal(t, to, args[2])
			},
		},
		{
			name: "success: all filters combined keep placeholder order",
			filter: models.ExpenseFilter{
				UserID:   42,
				Category: models.CategoryTransport,
				From:     &from,
				To:       &to,
				Limit:    10,
				Offset:   20,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "user_id = $1")
				require.Contains(t, q, "category = $2")
				require.Contains(t, q, "date >= $3")
				require.Contains(t, q, "date <= $4")
				require.Contains(t, q, "limit 10")
				require.Contains(t, q, "offset 20")

				require.Len(t, args, 4)
				assert.Equal(t, int64(42), args[0])
				assert.Equal(t, models.CategoryTransport, args[1])
				assert.Equal(t, from, args[2])
				assert.Equal(t, to, args[3])
			},
		},
		{
			name:   "success: zero limit omits pagination clauses",
			filter: models.ExpenseFilter{UserID: 42},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.NotContains(t, q, "limit")
				require.NotContains(t, q, "offset")
			},
		},
		{
			name:   "success: idempotent for same filter",
			filter: models.ExpenseFilter{UserID: 99, Category: models.CategoryBills, Limit: 5, Offset: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildFindExpensesQuery(models.ExpenseFilter{
					UserID: 99, Category: models.CategoryBills, Limit: 5, Offset: 5,
				})
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindExpensesQuery(tt.filter)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			if tt.checkQuery != nil {
				tt.checkQuery(t, query, args)
			}
		})
	}
}

func Test_buildUpdateExpenseQuery_SQLContainsParts(t *testing.T) {
	title := "Groceries"
	amount := 12.5
	category := models.CategoryFood
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expenseID  int64
		update     models.ExpenseUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:      "success: single field (title only)",
			expenseID: 7,
			update:    models.ExpenseUpdate{Title: &title},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "update expenses")
				require.Contains(t, q, "title = $1")
				require.Contains(t, q, "expense_id = $2")
				require.Contains(t, q, "returning expense_id, user_id, title, amount, category, date, created_at")

				require.NotContains(t, q, "amount = $")
				require.NotContains(t, q, "category = $")
				require.NotContains(t, q, "date = $")

				require.Len(t, args, 2)
				require.Equal(t, "Groceries", args[0])
				require.Equal(t, int64(7), args[1])
			},
		},
		{
			name:      "success: all fields keep sequential placeholders",
			expenseID: 7,
			update: models.ExpenseUpdate{
				Title:    &title,
				Amount:   &amount,
				Category: &category,
				Date:     &date,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "title = $1")
				require.Contains(t, q, "amount = $2")
				require.Contains(t, q, "category = $3")
				require.Contains(t, q, "date = $4")
				require.Contains(t, q, "expense_id = $5")

				// args order: title, amount, category, date, expenseID
				require.Len(t, args, 5)
				require.Equal(t, "Groceries", args[0])
				require.Equal(t, 12.5, args[1])
				require.Equal(t, models.CategoryFood, args[2])
				require.Equal(t, date, args[3])
				require.Equal(t, int64(7), args[4])
			},
		},
		{
			name:      "success: amount and date only",
			expenseID: 3,
			update:    models.ExpenseUpdate{Amount: &amount, Date: &date},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "amount = $1")
				require.Contains(t, q, "date = $2")
				require.Contains(t, q, "expense_id = $3")
				require.NotContains(t, q, "title = $")
				require.NotContains(t, q, "category = $")

				require.Len(t, args, 3)
				require.Equal(t, 12.5, args[0])
				require.Equal(t, date, args[1])
				require.Equal(t, int64(3), args[2])
			},
		},
		{
			name:      "success: idempotent for same patch",
			expenseID: 9,
			update:    models.ExpenseUpdate{Title: &title, Amount: &amount},
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildUpdateExpenseQuery(9, models.ExpenseUpdate{
					Title: &title, Amount: &amount,
				})
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateExpenseQuery(tt.expenseID, tt.update)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}
