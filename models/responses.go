package models

// AuthResponse is returned by the register, login, and profile-update
// endpoints. Token is always freshly minted; previously issued tokens stay
// valid until their own expiry.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// DeleteExpenseResponse confirms a successful DELETE /api/expenses/{id}.
type DeleteExpenseResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error body for every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
