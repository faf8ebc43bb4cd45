package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, booking API, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	BookingAPI BookingAPIConfig
	Checkout   CheckoutConfig
	Mailbox    MailboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// JWTConfig verifies tokens issued by the auth service; this service never issues them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string        `envconfig:"COOKIE_SAMESITE" default:"lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_CLIENT_ID_MAX_AGE" default:"720h"`
}

type BookingAPIConfig struct {
	BaseURL       string        `envconfig:"BOOKING_API_BASE_URL" required:"true"`
	Timeout       time.Duration `envconfig:"BOOKING_API_TIMEOUT" default:"10s"`
	SubmitTimeout time.Duration `envconfig:"SUBMIT_TIMEOUT" default:"30s"`
}

type CheckoutConfig struct {
	CapacitySlack int           `envconfig:"CHECKOUT_CAPACITY_SLACK" default:"5"`
	MaxPartySize  int           `envconfig:"CHECKOUT_MAX_PARTY_SIZE" default:"10"`
	SessionTTL    time.Duration `envconfig:"CHECKOUT_SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"CHECKOUT_SWEEP_INTERVAL" default:"5m"`
	TimeZone      string        `envconfig:"CHECKOUT_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	SearchTermMax int           `envconfig:"SEARCH_TERM_MAX" default:"100"`
}

type MailboxConfig struct {
	// hex-encoded 32-byte key sealing parked carts at rest
	Secret string `envconfig:"MAILBOX_SECRET" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c CheckoutConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "America/Argentina/Buenos_Aires",
			MaxConns:        4,
			MaxConnLifetime: 5 * time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Cookie: CookieConfig{
			SameSite: "lax",
			MaxAge:   time.Hour,
		},
		BookingAPI: BookingAPIConfig{
			BaseURL:       "http://localhost:18080",
			Timeout:       2 * time.Second,
			SubmitTimeout: 5 * time.Second,
		},
		Checkout: CheckoutConfig{
			CapacitySlack: 5,
			MaxPartySize:  10,
			SessionTTL:    time.Hour,
			SweepInterval: time.Minute,
			TimeZone:      "America/Argentina/Buenos_Aires",
			SearchTermMax: 100,
		},
		Mailbox: MailboxConfig{
			Secret: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		},
	}
}
