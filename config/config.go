package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseDriver    string        `yaml:"database_driver"`
	DatabaseURL       string        `yaml:"database_url"`
	SessionSecret     string        `yaml:"session_secret"`
	SessionExpiration time.Duration `yaml:"session_expiration"`
	SecureCookies     bool          `yaml:"secure_cookies"`
	ServerPort        string        `yaml:"server_port"`
	GeminiAPIKey      string        `yaml:"gemini_api_key"`
	GeminiModel       string        `yaml:"gemini_model"`
	Timezone          string        `yaml:"timezone"`
	LogLevel          string        `yaml:"log_level"`
	CurrencySymbol    string        `yaml:"currency_symbol"`

	// Location is Timezone resolved; calendar days are taken here.
	Location *time.Location `yaml:"-"`
}

func defaults() *Config {
	return &Config{
		DatabaseDriver:    "postgres",
		DatabaseURL:       "postgresql://postgres@localhost:5432/worklog",
		SessionSecret:     "your-super-secret-key-change-in-production",
		SessionExpiration: 30 * 24 * time.Hour,
		ServerPort:        "8080",
		GeminiModel:       "gemini-2.5-flash",
		LogLevel:          "info",
		CurrencySymbol:    "₱",
	}
}

// Load reads, in increasing precedence: built-in defaults, the YAML file
// named by WORKLOG_CONFIG, a .env file in the working directory, and the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := defaults()
	if path := os.Getenv("WORKLOG_CONFIG"); path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.DatabaseDriver = getEnv("DATABASE_DRIVER", c.DatabaseDriver)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.GeminiAPIKey = getEnv("API_KEY", getEnv("GEMINI_API_KEY", c.GeminiAPIKey))
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.CurrencySymbol = getEnv("CURRENCY_SYMBOL", c.CurrencySymbol)

	if v := os.Getenv("SESSION_EXPIRATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_EXPIRATION: %w", err)
		}
		c.SessionExpiration = d
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SECURE_COOKIES: %w", err)
		}
		c.SecureCookies = b
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}

	if c.SessionExpiration <= 0 {
		return errors.New("session expiration must be positive")
	}

	switch c.Timezone {
	case "", "Local":
		c.Location = time.Local
	default:
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("timezone %q: %w", c.Timezone, err)
		}
		c.Location = loc
	}
	return nil
}

// Now is the current time in the configured timezone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
