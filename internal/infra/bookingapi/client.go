// Package bookingapi talks to the resort's booking API: availability
// lookups, the services catalog and reservation creation.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const (
	pathAvailability = "/reservas/disponibilidad"
	pathServices     = "/servicios"
	pathReservations = "/reservas"

	maxBodyBytes = 1 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
	logger  *slog.Logger
}

func NewClient(cfg config.BookingAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) SearchAvailability(ctx context.Context, req checkout.StayRequest) (*shared.AvailabilityResult, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, pathAvailability, "", toAvailabilityRequest(req), &env); err != nil {
		return nil, err
	}

	var dtos []candidateDTO
	if err := decodeData(env.Data, &dtos); err != nil {
		return nil, err
	}
	result := &shared.AvailabilityResult{
		Request:    req,
		Candidates: make([]checkout.CabinCandidate, len(dtos)),
	}
	for i, d := range dtos {
		result.Candidates[i] = d.toDomain()
	}
	if echoed, ok := echoedRequest(env.Meta, req.CheckIn.Location()); ok {
		result.Request = echoed
	}
	return result, nil
}

// ListServices collapses concurrent catalog fetches into one request. The
// shared fetch is detached from any single caller's cancellation and bounded
// by the client timeout.
func (c *Client) ListServices(ctx context.Context) ([]checkout.ServiceOption, error) {
	v, err, dup := c.group.Do(pathServices, func() (any, error) {
		return c.fetchServices(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if dup {
		c.logger.Debug("service catalog fetch shared")
	}
	return v.([]checkout.ServiceOption), nil
}

func (c *Client) fetchServices(ctx context.Context) ([]checkout.ServiceOption, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, pathServices, "", nil, &env); err != nil {
		return nil, err
	}
	var dtos []serviceDTO
	if err := decodeData(env.Data, &dtos); err != nil {
		return nil, err
	}
	out := make([]checkout.ServiceOption, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out, nil
}

// CreateReservation sends only the stay, cabin ids and service ids. Card data
// never leaves this service.
func (c *Client) CreateReservation(ctx context.Context, token string, cart checkout.Cart) (*checkout.Receipt, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, pathReservations, token, toReservationRequest(cart), &env); err != nil {
		return nil, err
	}
	var dto reservationDTO
	if err := decodeData(env.Data, &dto); err != nil {
		return nil, err
	}
	receipt := dto.toDomain()
	return &receipt, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out *envelope) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode booking api request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build booking api request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("booking api request failed", "method", method, "path", path, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return transportError(err)
	}
	c.logger.Debug("booking api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, raw)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		out.Data = trimmed
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode booking api response"), shared.ErrRemoteUnavailable)
	}
	// tolerate bare payloads without the data envelope
	if len(out.Data) == 0 {
		out.Data = trimmed
	}
	return nil
}

func decodeData(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return errs.Mark(errs.New("booking api response has no data"), shared.ErrRemoteUnavailable)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errs.Mark(errs.Wrap(err, "decode booking api data"), shared.ErrRemoteUnavailable)
	}
	return nil
}

func echoedRequest(meta *availabilityRequest, loc *time.Location) (checkout.StayRequest, bool) {
	if meta == nil {
		return checkout.StayRequest{}, false
	}
	in, err := field.ParseDate(meta.CheckIn, loc)
	if err != nil {
		return checkout.StayRequest{}, false
	}
	out, err := field.ParseDate(meta.CheckOut, loc)
	if err != nil || meta.CantPersonas < 1 {
		return checkout.StayRequest{}, false
	}
	return checkout.StayRequest{CheckIn: in, CheckOut: out, PartySize: meta.CantPersonas}, true
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errs.Mark(errs.Wrap(err, "booking api timeout"), shared.ErrRemoteTimeout)
	}
	return errs.Mark(errs.Wrap(err, "booking api unreachable"), shared.ErrRemoteUnavailable)
}

// statusError maps a non-2xx answer: field lists become a FieldError, 4xx
// messages are surfaced verbatim, 5xx is treated as the service being down.
func statusError(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	if len(body.Errors) > 0 {
		fe := &shared.FieldError{Fields: make(map[string]string, len(body.Errors))}
		for _, e := range body.Errors {
			name, ok := fieldNames[e.Field]
			if !ok {
				name = e.Field
			}
			fe.Fields[name] = e.Message
		}
		fe.Message = firstNonEmpty(body.Error, body.Message)
		return fe
	}

	msg := firstNonEmpty(body.Error, body.Message, http.StatusText(status))
	if status >= http.StatusInternalServerError {
		return errs.Mark(errs.Newf("booking api status %d: %s", status, msg), shared.ErrRemoteUnavailable)
	}
	return &shared.RemoteError{StatusCode: status, Message: msg}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
