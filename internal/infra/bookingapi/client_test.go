//go:build unit

package bookingapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resort-checkout/internal/domain/pricing"
	"resort-checkout/internal/infra/bookingapi"
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/testutil/builder"
	"resort-checkout/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *bookingapi.Client {
	t.Helper()
	return newClientWithTimeout(t, 500*time.Millisecond, handler)
}

func newClientWithTimeout(t *testing.T, timeout time.Duration, handler http.HandlerFunc) *bookingapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return bookingapi.NewClient(
		config.BookingAPIConfig{BaseURL: srv.URL + "/", Timeout: timeout},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestClient_SearchAvailability(t *testing.T) {
	ctx := context.Background()
	stay := builder.NewStayBuilder().Build()

	t.Run("decodes candidates with numeric and string prices", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reservas/disponibilidad", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2025-07-10", body["check_in"])
			assert.Equal(t, "2025-07-13", body["check_out"])
			assert.EqualValues(t, 3, body["cant_personas"])

			_, _ = io.WriteString(w, `{"data":[
				{"id":1,"tipo":"Lakeside","zona":"North","codigo":"N-01","capacidad":4,"precio_noche":35000,"noches":3,"precio_total":"105000.00"},
				{"id":2,"tipo":"Forest","zona":"South","codigo":"S-07","capacidad":2,"precio_noche":"20000.5","noches":3,"precio_total":60001.5}
			]}`)
		})

		result, err := client.SearchAvailability(ctx, stay)
		require.NoError(t, err)
		require.Len(t, result.Candidates, 2)
		assert.Equal(t, stay, result.Request)

		first := result.Candidates[0]
		assert.Equal(t, "N-01", first.Code)
		assert.Equal(t, 4, first.Capacity)
		assert.Equal(t, pricing.MoneyFromUnits(105000), first.TotalPrice)
		assert.Equal(t, int64(6000150), result.Candidates[1].TotalPrice.Cents())
	})

	t.Run("prefers the request echoed by the server", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":[],"meta":{"check_in":"2025-07-10","check_out":"2025-07-14","cant_personas":3}}`)
		})

		result, err := client.SearchAvailability(ctx, stay)
		require.NoError(t, err)
		assert.Empty(t, result.Candidates)
		assert.Equal(t, 4, result.Request.Nights())
	})

	t.Run("field errors are mapped to form names", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"errors":[{"field":"cant_personas","message":"too many guests"},{"field":"check_in","message":"closed season"}]}`)
		})

		_, err := client.SearchAvailability(ctx, stay)
		var fe *shared.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, map[string]string{"party_size": "too many guests", "check_in": "closed season"}, fe.Fields)
	})

	t.Run("general 4xx error is surfaced verbatim", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error":"no cabins left for those dates"}`)
		})

		_, err := client.SearchAvailability(ctx, stay)
		var re *shared.RemoteError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, http.StatusConflict, re.StatusCode)
		assert.Equal(t, "no cabins left for those dates", re.Message)
	})

	t.Run("5xx is a transport failure", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.SearchAvailability(ctx, stay)
		assert.True(t, errs.Is(err, shared.ErrRemoteUnavailable), "got %v", err)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":`)
		})

		_, err := client.SearchAvailability(ctx, stay)
		assert.True(t, errs.Is(err, shared.ErrRemoteUnavailable), "got %v", err)
	})

	t.Run("timeout", func(t *testing.T) {
		client := newClientWithTimeout(t, 50*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		_, err := client.SearchAvailability(ctx, stay)
		assert.True(t, errs.Is(err, shared.ErrRemoteTimeout), "got %v", err)
		assert.False(t, errs.Is(err, shared.ErrRemoteUnavailable))
	})
}

func TestClient_ListServices(t *testing.T) {
	t.Run("accepts a bare array", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/servicios", r.URL.Path)
			_, _ = io.WriteString(w, `[{"id":7,"nombre":"Desayuno","precio":5000}]`)
		})

		got, err := client.ListServices(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Desayuno", got[0].Name)
		assert.Equal(t, pricing.MoneyFromUnits(5000), got[0].UnitPrice)
	})

	t.Run("concurrent callers share one request", func(t *testing.T) {
		var calls atomic.Int32
		release := make(chan struct{})
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			<-release
			_, _ = io.WriteString(w, `{"data":[{"id":7,"nombre":"Desayuno","precio":5000}]}`)
		})

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := client.ListServices(context.Background())
				assert.NoError(t, err)
				assert.Len(t, got, 1)
			}()
		}
		time.Sleep(100 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_CreateReservation(t *testing.T) {
	t.Run("sends ids and bearer token only", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reservas", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{
				"check_in":"2025-07-10","check_out":"2025-07-13","cant_personas":3,
				"cabanas_ids":[1,2],"servicios_ids":[7]
			}`, string(raw))
			assert.NotContains(t, string(raw), "4111")

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":42,"estado":"pendiente","created_at":"2025-07-01T12:00:00Z"}}`)
		})

		cart := builder.NewCartBuilder().WithPayment(builder.ValidPayment()).Build()
		receipt, err := client.CreateReservation(context.Background(), "user-token", cart)
		require.NoError(t, err)
		assert.Equal(t, int64(42), receipt.ReservationID)
		assert.Equal(t, "pendiente", receipt.Status)
		assert.Equal(t, 2025, receipt.CreatedAt.Year())
	})

	t.Run("server rejection", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"cabin N-01 was just booked"}`)
		})

		_, err := client.CreateReservation(context.Background(), "t", builder.NewCartBuilder().Build())
		var re *shared.RemoteError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "cabin N-01 was just booked", re.Message)
	})
}
