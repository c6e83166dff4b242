package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	LLM         LLMConfig      `mapstructure:"llm"`
	Gold        GoldConfig     `mapstructure:"gold"`
	CORS        CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"` // sqlite file
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	SlowQuery       time.Duration `mapstructure:"slowQuery"`       // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LLMConfig selects and configures the completion provider
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"` // gemini or canned
	APIKey      string  `mapstructure:"apiKey"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
}

// GoldConfig contains the simulated pricing used for purchases
type GoldConfig struct {
	RatePerGram float64 `mapstructure:"ratePerGram"`
}

// CORSConfig contains cross-origin settings for the HTTP API
type CORSConfig struct {
	AllowOrigins []string      `mapstructure:"allowOrigins"`
	MaxAge       time.Duration `mapstructure:"maxAge"` // hours
}

// Validate reports every missing or invalid setting at once
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}

	switch c.LLM.Provider {
	case ProviderGemini:
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			problems = append(problems, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
		if c.LLM.Model == "" {
			problems = append(problems, errors.New("llm.model is required"))
		}
	case ProviderCanned:
	default:
		problems = append(problems, fmt.Errorf("unsupported llm.provider: %q", c.LLM.Provider))
	}

	if c.Gold.RatePerGram <= 0 {
		problems = append(problems, fmt.Errorf("gold.ratePerGram must be positive, got %v", c.Gold.RatePerGram))
	}

	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		problems = append(problems, fmt.Errorf("unsupported database.driver: %q", c.Database.Driver))
	}

	return errors.Join(problems...)
}

// Address returns the host:port the HTTP server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
