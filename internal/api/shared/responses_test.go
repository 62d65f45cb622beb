package shared

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"name": "Acadia"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Acadia", body["name"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusNotFound, "not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "not found", body.Error)
	assert.Len(t, body.TraceID, 2*TraceIDLength)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Zion"}`))
		var payload struct {
			Name string `json:"name"`
		}
		require.NoError(t, DecodeJSON(req, &payload))
		assert.Equal(t, "Zion", payload.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
		var payload struct{}
		assert.ErrorIs(t, DecodeJSON(req, &payload), ErrEmptyBody)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		var payload struct{}
		err := DecodeJSON(req, &payload)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})
}
