package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string `yaml:"serviceName" env:"SERVICE_NAME"`
	Environment string `yaml:"environment" env:"ENVIRONMENT"`
	LogLevel    string `yaml:"logLevel" env:"LOG_LEVEL"`

	HTTP struct {
		Port            string        `yaml:"port" env:"PORT"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT"`
		Playground      bool          `yaml:"playground" env:"GRAPHQL_PLAYGROUND"`
	} `yaml:"http"`

	Database struct {
		DSN             string        `yaml:"dsn" env:"DATABASE_URL"`
		MaxIdleConns    int           `yaml:"maxIdleConns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int           `yaml:"maxOpenConns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" env:"DB_CONN_MAX_LIFETIME"`
		LogLevel        string        `yaml:"logLevel" env:"DB_LOG_LEVEL"`
	} `yaml:"database"`

	Auth struct {
		TokenSecret string        `yaml:"tokenSecret" env:"TOKEN_SECRET"`
		TokenTTL    time.Duration `yaml:"tokenTTL" env:"TOKEN_TTL"`
		// Login attempts per minute per email, with an equal burst.
		LoginRate int `yaml:"loginRate" env:"LOGIN_RATE"`
	} `yaml:"auth"`

	Mail struct {
		APIKey  string `yaml:"apiKey" env:"MAILGUN_API_KEY"`
		Domain  string `yaml:"domain" env:"MAILGUN_DOMAIN_NAME"`
		From    string `yaml:"from" env:"MAILGUN_FROM_EMAIL"`
		BaseURL string `yaml:"baseUrl" env:"MAILGUN_BASE_URL"`
	} `yaml:"mail"`

	Tracing struct {
		Enabled      bool   `yaml:"enabled" env:"ENABLE_TRACING"`
		OTLPEndpoint string `yaml:"otlpEndpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	} `yaml:"tracing"`

	Restaurants struct {
		PageSize int `yaml:"pageSize" env:"RESTAURANTS_PAGE_SIZE"`
	} `yaml:"restaurants"`
}

// Load builds the config from defaults, the YAML file at $CONFIG_PATH if set,
// then environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	cfg := Config{
		ServiceName: "eats-backend",
		Environment: "development",
		LogLevel:    "info",
	}
	cfg.HTTP.Port = "8080"
	cfg.HTTP.ShutdownTimeout = 10 * time.Second
	cfg.HTTP.Playground = true
	cfg.Database.MaxIdleConns = 5
	cfg.Database.MaxOpenConns = 15
	cfg.Database.ConnMaxLifetime = 30 * time.Minute
	cfg.Database.LogLevel = "warn"
	cfg.Auth.LoginRate = 5
	cfg.Restaurants.PageSize = 25
	return cfg
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("missing database DSN (set database.dsn in config or DATABASE_URL)")
	}
	if strings.TrimSpace(c.Auth.TokenSecret) == "" {
		return errors.New("missing token secret (set auth.tokenSecret in config or TOKEN_SECRET)")
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.tokenTTL must not be negative (0 issues non-expiring tokens)")
	}
	if c.Auth.LoginRate <= 0 {
		return errors.New("auth.loginRate must be positive")
	}
	if c.Restaurants.PageSize <= 0 {
		return errors.New("restaurants.pageSize must be positive")
	}
	if c.Mail.APIKey != "" && c.Mail.Domain == "" {
		return errors.New("missing Mailgun domain (set mail.domain in config or MAILGUN_DOMAIN_NAME)")
	}
	if c.Tracing.Enabled && c.Tracing.OTLPEndpoint == "" {
		return errors.New("missing OTLP endpoint (set tracing.otlpEndpoint in config or OTEL_EXPORTER_OTLP_ENDPOINT)")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.HTTP.Port
}

// MailEnabled reports whether verification emails are delivered.
func (c Config) MailEnabled() bool {
	return c.Mail.APIKey != ""
}
