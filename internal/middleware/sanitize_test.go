package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(t *testing.T, gotBody *string, gotQuery *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*gotBody = string(body)
		*gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	})
}

func TestSanitize(t *testing.T) {
	t.Run("strips operator keys from body", func(t *testing.T) {
		var body, query string
		handler := Sanitize(1<<20)(echoHandler(t, &body, &query))
		req := httptest.NewRequest(http.MethodPost, "/api/admin-login",
			strings.NewReader(`{"username":"admin","password":{"$ne":null}}`))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, map[string]any{"username": "admin", "password": map[string]any{}}, got)
	})

	t.Run("strips operator keys from query", func(t *testing.T) {
		var body, query string
		handler := Sanitize(1<<20)(echoHandler(t, &body, &query))
		req := httptest.NewRequest(http.MethodGet, "/api/contacts?email[$ne]=x&page=1", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "page=1", query)
	})

	t.Run("clean body is untouched", func(t *testing.T) {
		var body, query string
		handler := Sanitize(1<<20)(echoHandler(t, &body, &query))
		in := `{"name":"A","message":"price is $5 per kg."}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(in))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, in, body)
	})

	t.Run("body over limit", func(t *testing.T) {
		var body, query string
		handler := Sanitize(8)(echoHandler(t, &body, &query))
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"much too long"}`))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Empty(t, body)
	})

	t.Run("broken body is a bad request", func(t *testing.T) {
		var body, query string
		handler := Sanitize(1<<20)(echoHandler(t, &body, &query))
		req := httptest.NewRequest(http.MethodPost, "/api/contact", io.NopCloser(failingReader{}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Failed to read request body"}`, rr.Body.String())
		assert.Empty(t, body)
	})
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}
