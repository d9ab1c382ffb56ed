package admin_login

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	handler := NewHandler("admin", "karaoke2024", noopLogger{})

	t.Run("valid credentials", func(t *testing.T) {
		body := `{"username": "admin", "password": "karaoke2024"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "admin", resp.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"username": "admin", "password": "guess"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong username", func(t *testing.T) {
		body := `{"username": "root", "password": "karaoke2024"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
