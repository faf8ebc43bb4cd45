package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

const ctxCheckoutViewKey = "checkout_view"

// SetCheckoutView records the checkout a handler answered with so the request
// log carries its stage and generation.
func SetCheckoutView(c *gin.Context, view *readmodel.CheckoutRM) {
	if view != nil {
		c.Set(ctxCheckoutViewKey, view)
	}
}

func getCheckoutView(c *gin.Context) (*readmodel.CheckoutRM, bool) {
	v, exists := c.Get(ctxCheckoutViewKey)
	if !exists {
		return nil, false
	}
	view, ok := v.(*readmodel.CheckoutRM)
	return view, ok
}

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := l.generateRequestID()

		c.Set("request_id", requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}

		if checkoutID := c.Param("id"); checkoutID != "" {
			logAttrs = append(logAttrs, slog.String("checkout_id", checkoutID))
		}

		l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Request started", logAttrs...)

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		responseAttrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+10)
		copy(responseAttrs, logAttrs)
		responseAttrs = append(responseAttrs, userAttrs(c)...)
		if clientID := GetClientID(c); clientID != "" {
			responseAttrs = append(responseAttrs, slog.String("client_id", clientID))
		}
		responseAttrs = append(responseAttrs, checkoutAttrs(c)...)
		responseAttrs = append(responseAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", duration),
		)

		if responseSize := c.Writer.Size(); responseSize > 0 {
			responseAttrs = append(responseAttrs, slog.Int("response_size", responseSize))
		}

		if len(c.Errors) > 0 {
			responseAttrs = append(responseAttrs, slog.String("errors", c.Errors.String()))
		}

		logLevel := slog.LevelInfo
		if statusCode >= 500 {
			logLevel = slog.LevelError
		} else if statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		l.logger.LogAttrs(context.Background(), logLevel, "Request completed", responseAttrs...)
	}
}

func userAttrs(c *gin.Context) []slog.Attr {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}
	attrs := []slog.Attr{slog.String("user_id", userID.String())}
	if role := c.GetString(ctxUserRoleKey); role != "" {
		attrs = append(attrs, slog.String("role", role))
	}
	return attrs
}

// checkoutAttrs describes the checkout the handler answered with. Start and
// resume have no id in the path, so the id is added here for them.
func checkoutAttrs(c *gin.Context) []slog.Attr {
	view, ok := getCheckoutView(c)
	if !ok {
		return nil
	}
	var attrs []slog.Attr
	if c.Param("id") == "" {
		attrs = append(attrs, slog.String("checkout_id", view.ID.String()))
	}
	attrs = append(attrs,
		slog.String("stage", view.Stage),
		slog.Uint64("generation", view.Generation),
	)
	if len(view.InFlight) > 0 {
		attrs = append(attrs, slog.String("in_flight", strings.Join(view.InFlight, ",")))
	}
	return attrs
}

func NewLogger(cfg config.LogConfig) *Logger {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger.logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}

	randomHex := hex.EncodeToString(randomBytes)
	return fmt.Sprintf("%s-%s", timestamp, randomHex)
}

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}
