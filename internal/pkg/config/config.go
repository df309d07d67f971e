package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Jobs    JobsConfig
	Gateway GatewayConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// JobsConfig drives the lock reaper and the gateway reconciliation sweep.
// The same secret signs the operator tokens accepted by the manual job endpoints.
type JobsConfig struct {
	OperatorSecret   string        `envconfig:"JOBS_OPERATOR_SECRET" required:"true"`
	OperatorTokenTTL time.Duration `envconfig:"JOBS_OPERATOR_TOKEN_TTL" default:"1h"`
	ReapSchedule     string        `envconfig:"JOBS_REAP_SCHEDULE" default:"*/1 * * * *"`
	SweepSchedule    string        `envconfig:"JOBS_SWEEP_SCHEDULE" default:"*/5 * * * *"`
	SweepBatchSize   int32         `envconfig:"JOBS_SWEEP_BATCH_SIZE" default:"50"`
}

type GatewayConfig struct {
	Provider      string        `envconfig:"GATEWAY_PROVIDER" default:"mercadopago"`
	BaseURL       string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.mercadopago.com"`
	AccessToken   string        `envconfig:"GATEWAY_ACCESS_TOKEN" required:"true"`
	WebhookSecret string        `envconfig:"GATEWAY_WEBHOOK_SECRET" default:""`
	Timeout       time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	ReturnURL     string        `envconfig:"GATEWAY_RETURN_URL" required:"true"`
	// CallbackURL is our public webhook endpoint registered on each
	// checkout session.
	CallbackURL string `envconfig:"GATEWAY_CALLBACK_URL" default:""`
}

type BookingConfig struct {
	LockTTL         time.Duration `envconfig:"BOOKING_LOCK_TTL" default:"15m"`
	ActionTokenTTL  time.Duration `envconfig:"BOOKING_ACTION_TOKEN_TTL" default:"72h"`
	DefaultDayStart string        `envconfig:"BOOKING_DEFAULT_DAY_START" default:"08:00"`
	DefaultDayEnd   string        `envconfig:"BOOKING_DEFAULT_DAY_END" default:"18:00"`
	NotifyURL       string        `envconfig:"BOOKING_NOTIFY_URL" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Jobs: JobsConfig{
			OperatorSecret:   "test-operator-secret",
			OperatorTokenTTL: time.Hour,
			ReapSchedule:     "*/1 * * * *",
			SweepSchedule:    "*/5 * * * *",
			SweepBatchSize:   10,
		},
		Gateway: GatewayConfig{
			Provider:    "mercadopago",
			BaseURL:     "http://localhost:18080",
			AccessToken: "test-token",
			Timeout:     2 * time.Second,
			ReturnURL:   "http://localhost:3000/booking/return",
		},
		Booking: BookingConfig{
			LockTTL:         15 * time.Minute,
			ActionTokenTTL:  72 * time.Hour,
			DefaultDayStart: "08:00",
			DefaultDayEnd:   "18:00",
		},
	}
}
