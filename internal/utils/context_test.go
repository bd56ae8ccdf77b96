package utils

import (
	"context"
	"testing"

	"github.com/mlukin/go-expense-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserFromContext(t *testing.T) {
	user := models.User{UserID: 7, Name: "Jane", Email: "jane@example.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}
