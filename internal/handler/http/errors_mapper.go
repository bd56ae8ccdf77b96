package http

import (
	"errors"
	"net/http"

	"github.com/mlukin/go-expense-tracker/internal/service"
	"github.com/mlukin/go-expense-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrNotOwner:            http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrExpenseNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err. Well-known
// errors surface their own text; everything else collapses to the generic
// 500 text so that internal details never leak to clients.
func messageFromError(err error) string {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) && status < http.StatusInternalServerError {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
