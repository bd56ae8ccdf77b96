package models

import "time"

// Category is the fixed classification assigned to every expense record.
type Category string

// The full set of categories an expense may belong to. Any other value is
// rejected at validation time.
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryOther         Category = "Other"
)

// Categories lists every valid expense category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryShopping,
	CategoryBills,
	CategoryOther,
}

// Valid reports whether c is one of the known expense categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense represents a single dated, categorized spending record tied to
// exactly one owning user. The owner reference is immutable after creation.
type Expense struct {
	// ExpenseID is the internal unique identifier of the record.
	ExpenseID int64 `json:"id"`

	// UserID references the owner of the record. It is always forced to the
	// authenticated caller on creation and is never patchable.
	UserID int64 `json:"userId"`

	// Title is a short non-empty description of the expense.
	Title string `json:"title"`

	// Amount is the non-negative monetary value; fractional values allowed.
	Amount float64 `json:"amount"`

	// Category is one of the fixed set declared in [Categories].
	Category Category `json:"category"`

	// Date is when the expense occurred. Defaults to the creation time
	// when the client omits it.
	Date time.Time `json:"date"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// ExpenseUpdate is a partial patch applied to an existing expense.
// Nil fields are left unchanged. The owner reference is deliberately
// absent: ownership cannot be transferred.
type ExpenseUpdate struct {
	Title    *string    `json:"title"`
	Amount   *float64   `json:"amount"`
	Category *Category  `json:"category"`
	Date     *time.Time `json:"date"`
}

// Empty reports whether the patch carries no fields at all.
func (u ExpenseUpdate) Empty() bool {
	return u.Title == nil && u.Amount == nil && u.Category == nil && u.Date == nil
}

// ExpenseFilter describes the repository-level selection applied when
// listing expenses. UserID is always set; the remaining fields are optional
// narrowing criteria computed by the service layer.
type ExpenseFilter struct {
	// UserID scopes the query to a single owner. Required.
	UserID int64

	// Category, when non-empty, restricts results to an exact match.
	Category Category

	// From and To bound the expense date inclusively on both ends.
	// Either both are set or both are nil.
	From *time.Time
	To   *time.Time

	// Limit caps the number of returned rows; Offset skips preceding rows.
	Limit  uint64
	Offset uint64
}

// ExpenseSummary is the aggregate over ALL expenses of one owner,
// independent of any listing filters.
type ExpenseSummary struct {
	TotalAmount  float64 `json:"totalAmount"`
	ExpenseCount int64   `json:"expenseCount"`
}
