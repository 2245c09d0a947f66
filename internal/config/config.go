package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, loaded from the environment.
type App struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DB
	DBHost            string `envconfig:"DB_HOST" default:"localhost"`
	DBPort            int    `envconfig:"DB_PORT" default:"5432"`
	DBUser            string `envconfig:"DB_USER" default:"courtbook"`
	DBPassword        string `envconfig:"DB_PASSWORD" default:"courtbook"`
	DBName            string `envconfig:"DB_NAME" default:"courtbook"`
	DBSSLMode         string `envconfig:"DB_SSLMODE" default:"disable"`
	DBTimeZone        string `envconfig:"DB_TIMEZONE" default:"UTC"`
	DBMaxOpenConns    int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns    int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifeMin  int    `envconfig:"DB_CONN_MAX_LIFETIME_MIN" default:"30"`

	// JWT. pkg/auth reads JWT_SECRET from the environment directly.
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	// Messaging; empty disables publishing.
	AMQPURL      string `envconfig:"AMQP_URL" default:""`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"courtbook.events"`

	// Tracing; empty disables the exporter.
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	Env          string `envconfig:"ENV" default:"dev"`

	// Provisioning on startup.
	SeedOnStart bool   `envconfig:"SEED_ON_START" default:"false"`
	SeedDate    string `envconfig:"SEED_DATE" default:"2026-01-05"`

	// CORS origin of the court-browser frontend.
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
