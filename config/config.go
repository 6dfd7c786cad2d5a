package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the API reads from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret   string `env:"JWT_SECRET"`
	LogFile     string `env:"LOG_FILE" envDefault:"logs/owlrecruit-api.log"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Database DatabaseConfig `envPrefix:"DB_"`
	SMTP     SMTPConfig     `envPrefix:"SMTP_"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"127.0.0.1"`
	Port     string `env:"PORT" envDefault:"3306"`
	Database string `env:"DATABASE" envDefault:"owlrecruit"`
	Username string `env:"USERNAME" envDefault:"root"`
	Password string `env:"PASSWORD"`
	DebugSQL bool   `env:"DEBUG_SQL" envDefault:"false"`
}

// DSN builds the MySQL data source name.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type SMTPConfig struct {
	Host          string `env:"HOST"`
	Port          int    `env:"PORT" envDefault:"587"`
	User          string `env:"USER"`
	Pass          string `env:"PASS"`
	From          string `env:"FROM"` // e.g. "OwlRecruit <no-reply@your.org>"
	SkipTLSVerify bool   `env:"SKIP_TLS_VERIFY" envDefault:"false"`
}

// Current is the configuration loaded by Load.
var Current = &Config{}

// Load reads .env (if present) and parses the environment into Current.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	Current = cfg
	return cfg, nil
}

// IsProduction reports whether the API runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
