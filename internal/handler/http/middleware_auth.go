package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/service"
	"github.com/mlukin/go-expense-tracker/internal/store"
	"github.com/mlukin/go-expense-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], confirms the account
// still exists and — on success — stores the authenticated user's ID and the
// passwordless user record in the request context before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent or not a bearer token ([ErrNoTokenProvided]).
//   - The token has expired ([ErrTokenExpired]).
//   - The token is otherwise invalid or cannot be parsed ([ErrInvalidToken]).
//   - The account behind the token has been deleted ([ErrUserNoLongerExists]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("authorization header is missing")
			utils.WriteJSONError(w, ErrNoTokenProvided.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("authorization header is not a bearer token")
			utils.WriteJSONError(w, ErrNoTokenProvided.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Warn().Msg("token expired")
				utils.WriteJSONError(w, ErrTokenExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Warn().Err(err).Msg("error occurred during parsing token")
				utils.WriteJSONError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}
		}

		// a valid token is not enough: the account may have been deleted
		// after the token was issued
		user, err := h.services.AuthService.FindUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Int64("user_id", token.UserID).Msg("token for a deleted account")
				utils.WriteJSONError(w, ErrUserNoLongerExists.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("user lookup failed during authentication")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Store the authenticated user's ID and the passwordless record in the
		// context so that downstream handlers can use them without re-parsing
		// the token.
		user.PasswordHash = ""
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
