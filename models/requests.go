package models

import "time"

// RegisterRequest is the POST /api/auth/register body.
// All three fields are required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the PUT /api/auth/update body.
// Empty fields are left unchanged; a non-empty password is re-hashed
// before persistence.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateExpenseRequest is the POST /api/expenses body. Title, Amount and
// Category are required; Date defaults to the current time when nil.
// Any owner field supplied by the client is ignored.
type CreateExpenseRequest struct {
	Title    string     `json:"title"`
	Amount   float64    `json:"amount"`
	Category Category   `json:"category"`
	Date     *time.Time `json:"date"`
}

// ExpenseQuery carries the raw GET /api/expenses query parameters before the
// service turns them into an [ExpenseFilter].
type ExpenseQuery struct {
	// Category filters by exact category match when non-empty.
	Category Category

	// Year and Month form an inclusive date range. Month (1-12) is only
	// meaningful together with Year; Year alone spans the whole year.
	Year  int
	Month int

	// Page is 1-based; values below 1 fall back to 1.
	Page int

	// Limit is the page size; values below 1 fall back to the default of 10.
	Limit int
}
