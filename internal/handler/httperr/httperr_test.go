//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aqualux-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestAbortWithError(t *testing.T) {
	t.Run("writes the flat error body and aborts", func(t *testing.T) {
		c, rec := newTestContext(t)

		httperr.AbortWithError(c, http.StatusConflict, errors.New("state conflict"), "Invalid status transition")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.True(t, c.IsAborted())

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid status transition", body["error"])
		_, hasRequestID := body["request_id"]
		assert.False(t, hasRequestID)
	})

	t.Run("attaches the cause as a public gin error", func(t *testing.T) {
		c, _ := newTestContext(t)
		cause := errors.New("row scan failed")

		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error")

		require.Len(t, c.Errors, 1)
		assert.Equal(t, cause, c.Errors[0].Err)
		assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
	})

	t.Run("nil cause still writes the response", func(t *testing.T) {
		c, rec := newTestContext(t)

		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, c.Errors)
	})

	t.Run("echoes the request id when present", func(t *testing.T) {
		c, rec := newTestContext(t)
		c.Set("request_id", "20260901120000-abc123")

		httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Booking not found")

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "20260901120000-abc123", body["request_id"])
	})
}
