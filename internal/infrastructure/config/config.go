package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/finora/liability-service/pkg/auth"
	"github.com/finora/liability-service/pkg/kafka"
	"github.com/finora/liability-service/pkg/observability"
	"github.com/finora/liability-service/pkg/postgres"
)

// Config is the full runtime configuration of the liability service, loaded
// from environment variables.
type Config struct {
	GRPCPort int
	HTTPPort int

	DB    postgres.Config
	Kafka kafka.Config
	JWT   auth.JWTConfig

	Log     observability.LogConfig
	Tracing observability.TracingConfig

	EventsTopic   string
	OverdueCron   string
	MigrationsDir string
	TLSCertFile   string
	TLSKeyFile    string
	ServiceName   string
}

// Validate panics on configuration that can never work. Called once at
// startup.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyPEM == "" {
		panic("JWT_SECRET or JWT_PUBLIC_KEY_FILE environment variable is required")
	}
}

// Load reads configuration from the environment with local-development
// defaults.
func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9095),
		HTTPPort: getEnvInt("HTTP_PORT", 8095),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "finora"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "finora_liability"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Kafka: kafka.Config{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		JWT: auth.JWTConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			PublicKeyPEM: loadOptionalFile(getEnv("JWT_PUBLIC_KEY_FILE", "")),
			Issuer:       getEnv("JWT_ISSUER", "finora"),
			Expiration:   time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: observability.TracingConfig{
			ServiceName: "liability-service",
			Endpoint:    getEnv("OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getEnvBool("OTLP_INSECURE", true),
		},
		EventsTopic:   getEnv("EVENTS_TOPIC", "finora.liability.events"),
		OverdueCron:   getEnv("OVERDUE_CRON", "0 15 2 * * *"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "internal/infrastructure/postgres/migrations"),
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		ServiceName:   "liability-service",
	}
}

// GRPCAddr returns the listen address for the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func loadOptionalFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read %s: %v", path, err))
	}
	return string(data)
}
