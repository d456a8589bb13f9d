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
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Business  BusinessConfig
	Mail      MailConfig
	Push      PushConfig
	Scheduler SchedulerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BusinessConfig holds venue rules the calendar and payment flows depend on.
type BusinessConfig struct {
	// Past/future day decisions are made in this zone, not the caller's.
	TimeZone string `envconfig:"BUSINESS_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	// How many months past the current one the booking calendar accepts.
	CalendarHorizonMonths int `envconfig:"CALENDAR_HORIZON_MONTHS" default:"6"`
	// Bank alias shown to clients for the booking deposit transfer.
	PaymentAlias string `envconfig:"PAYMENT_ALIAS" default:""`
	// Shared secret required to delete a recorded payment.
	MasterPassword string `envconfig:"MASTER_PASSWORD" required:"true"`
	// Contract revision stamped on every new reservation.
	ContractVersion string `envconfig:"CONTRACT_VERSION" default:"1.0"`
	// Base URL used to build password-reset links in outgoing mail.
	FrontendBaseURL string `envconfig:"FRONTEND_BASE_URL" default:"http://localhost:5173"`
}

type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	FromEmail      string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@salon.local"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"Salón de Eventos"`
}

type PushConfig struct {
	PushoverToken   string `envconfig:"PUSHOVER_TOKEN" default:""`
	PushoverUserKey string `envconfig:"PUSHOVER_USER_KEY" default:""`
}

type SchedulerConfig struct {
	Enabled bool `envconfig:"SCHEDULER_ENABLED" default:"true"`
	// Cron specs, robfig/cron standard format.
	PendingDigest    string `envconfig:"CRON_PENDING_DIGEST" default:"0 9 * * *"`
	UpcomingReminder string `envconfig:"CRON_UPCOMING_REMINDER" default:"0 18 * * *"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
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
			TimeZone: "America/Argentina/Buenos_Aires",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Business: BusinessConfig{
			TimeZone:              "America/Argentina/Buenos_Aires",
			CalendarHorizonMonths: 6,
			PaymentAlias:          "salon.eventos.test",
			MasterPassword:        "test-master",
			ContractVersion:       "1.0",
			FrontendBaseURL:       "http://localhost:5173",
		},
	}
}
