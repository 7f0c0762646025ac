package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retry policy, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Notify    NotifyConfig
	Scheduler SchedulerConfig
	SMTP      SMTPConfig
	SMS       SMSGatewayConfig
	WhatsApp  WhatsAppGatewayConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Scheduler-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// NotifyConfig tunes the notification queue: retry budget, backoff shape,
// batch sizing, retention of terminal rows and reclaim of stuck claims.
type NotifyConfig struct {
	MaxAttempts       int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"3"`
	BaseDelay         time.Duration `envconfig:"NOTIFY_BASE_DELAY" default:"1m"`
	MaxDelay          time.Duration `envconfig:"NOTIFY_MAX_DELAY" default:"1h"`
	BatchSize         int           `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	SendTimeout       time.Duration `envconfig:"NOTIFY_SEND_TIMEOUT" default:"10s"`
	Retention         time.Duration `envconfig:"NOTIFY_RETENTION" default:"720h"`
	StuckGracePeriod  time.Duration `envconfig:"NOTIFY_STUCK_GRACE_PERIOD" default:"15m"`
	OutcomeWriteRetry int           `envconfig:"NOTIFY_OUTCOME_WRITE_RETRY" default:"3"`
}

type SchedulerConfig struct {
	Token string `envconfig:"SCHEDULER_TOKEN" required:"true"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"noreply@letterdesk.app"`
}

type SMSGatewayConfig struct {
	URL    string `envconfig:"SMS_GATEWAY_URL" default:""`
	APIKey string `envconfig:"SMS_GATEWAY_API_KEY" default:""`
	Sender string `envconfig:"SMS_GATEWAY_SENDER" default:"letterdesk"`
}

type WhatsAppGatewayConfig struct {
	URL    string `envconfig:"WHATSAPP_GATEWAY_URL" default:""`
	Token  string `envconfig:"WHATSAPP_GATEWAY_TOKEN" default:""`
	Sender string `envconfig:"WHATSAPP_GATEWAY_SENDER" default:""`
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
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Notify: NotifyConfig{
			MaxAttempts:       3,
			BaseDelay:         time.Minute,
			MaxDelay:          time.Hour,
			BatchSize:         50,
			SendTimeout:       10 * time.Second,
			Retention:         720 * time.Hour,
			StuckGracePeriod:  15 * time.Minute,
			OutcomeWriteRetry: 3,
		},
		Scheduler: SchedulerConfig{
			Token: "test-scheduler-token",
		},
	}
}
