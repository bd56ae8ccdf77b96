package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rr, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSONError(rr, "expense not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "expense not found", body["message"])
}
