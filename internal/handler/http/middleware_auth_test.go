package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlukin/go-expense-tracker/internal/service"
	"github.com/mlukin/go-expense-tracker/internal/store"
	"github.com/mlukin/go-expense-tracker/internal/utils"
	"github.com/mlukin/go-expense-tracker/models"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		parseFn     func(ctx context.Context, tokenString string) (models.Token, error)
		findUserFn  func(ctx context.Context, userID int64) (models.User, error)
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "not authorized, no token provided",
		},
		{
			name:        "header without token",
			authHeader:  "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "not authorized, no token provided",
		},
		{
			name:       "expired token",
			authHeader: "Bearer some-token",
			parseFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenExpired
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "not authorized, token expired",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer some-token",
			parseFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenInvalid
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "not authorized, invalid token",
		},
		{
			name:       "user deleted after token issue",
			authHeader: "Bearer some-token",
			parseFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 42}, nil
			},
			findUserFn: func(_ context.Context, _ int64) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "not authorized, user no longer exists",
		},
		{
			name:       "valid token passes through",
			authHeader: "Bearer some-token",
			parseFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 42}, nil
			},
			findUserFn: func(_ context.Context, userID int64) (models.User, error) {
				return models.User{UserID: userID, Name: "John", PasswordHash: "hash"}, nil
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&mockAuthService{
				parseTokenFn: tt.parseFn,
				findUserFn:   tt.findUserFn,
			}, nil)

			nextCalled := false
			var ctxUserID int64
			var ctxUser models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ctxUserID, _ = utils.GetUserIDFromContext(r.Context())
				ctxUser, _ = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeErrorBody(t, rec).Message)
			}
			if tt.wantNext {
				assert.Equal(t, int64(42), ctxUserID)
				assert.Equal(t, "John", ctxUser.Name)
				assert.Empty(t, ctxUser.PasswordHash, "password hash must never enter the request context")
			}
		})
	}
}
