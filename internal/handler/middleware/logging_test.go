//go:build unit

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resort-checkout/internal/handler/httperr"
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{
		Level:      "debug",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
	}, &buf)

	engine := gin.New()
	engine.Use(CustomRecovery(logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(ErrorHandler(logger.GetSlogLogger()))
	engine.Use(func(c *gin.Context) {
		c.Set(ctxClientIDKey, "client-1")
		c.Next()
	})
	return engine, &buf
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("completed request carries the checkout stage and generation", func(t *testing.T) {
		engine, buf := newTestEngine(t)
		id := uuid.New()
		engine.POST("/api/checkouts", func(c *gin.Context) {
			SetCheckoutView(c, &readmodel.CheckoutRM{
				ID:         id,
				Stage:      "search",
				Generation: 3,
				InFlight:   []string{"availability"},
			})
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/checkouts", nil))

		require.Equal(t, http.StatusCreated, w.Code)
		out := buf.String()
		assert.Contains(t, out, "checkout_id="+id.String())
		assert.Contains(t, out, "stage=search")
		assert.Contains(t, out, "generation=3")
		assert.Contains(t, out, "in_flight=availability")
		assert.Contains(t, out, "client_id=client-1")
		assert.Contains(t, out, "status_code=201")
	})

	t.Run("path id is not repeated for the view", func(t *testing.T) {
		engine, buf := newTestEngine(t)
		id := uuid.New()
		engine.GET("/api/checkouts/:id", func(c *gin.Context) {
			SetCheckoutView(c, &readmodel.CheckoutRM{ID: id, Stage: "cabins", Generation: 1})
			c.JSON(http.StatusOK, gin.H{"stage": "cabins"})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkouts/"+id.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, buf.String(), "stage=cabins")
		assert.NotContains(t, buf.String(), "in_flight=")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("server-side failures are logged with the checkout", func(t *testing.T) {
		engine, buf := newTestEngine(t)
		engine.POST("/api/checkouts/:id/search", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadGateway, errors.New("booking api unreachable"), "Booking service unavailable", nil)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/checkouts/abc/search", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Booking service unavailable")
		assert.Contains(t, buf.String(), "checkout request failed")
		assert.Contains(t, buf.String(), "checkout_id=abc")
	})

	t.Run("client errors are rendered without an error log", func(t *testing.T) {
		engine, buf := newTestEngine(t)
		engine.GET("/api/checkouts/:id", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "Checkout not found", nil)
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkouts/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, buf.String(), "checkout request failed")
	})

	t.Run("panics are recovered", func(t *testing.T) {
		engine, buf := newTestEngine(t)
		engine.GET("/api/checkouts/:id", func(*gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkouts/abc", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, buf.String(), "recovered from panic")
		assert.Contains(t, buf.String(), "client_id=client-1")
	})
}
