package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Completion providers
const (
	ProviderGemini = "gemini"
	ProviderCanned = "canned"
)

// EnvPrefix is prepended to every environment override, e.g. GA_SERVER_PORT
const EnvPrefix = "GA"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// durationUnits lists every duration key with the unit of a bare number.
// Values with a unit suffix ("30s", "2m") are taken as written.
var durationUnits = map[string]time.Duration{
	"server.readTimeout":       time.Second,
	"server.writeTimeout":      time.Second,
	"server.idleTimeout":       time.Second,
	"server.readHeaderTimeout": time.Second,
	"server.shutdownTimeout":   time.Second,
	"database.connMaxLifetime": time.Minute,
	"database.connMaxIdleTime": time.Minute,
	"database.slowQuery":       time.Millisecond,
	"database.retryDelay":      time.Second,
	"database.monitorInterval": time.Second,
	"cors.maxAge":              time.Hour,
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)
	if err := resolveDurations(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults covers every key so the service starts without a config file
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, completions can be slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "gold_assistant")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.slowQuery", 200)      // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)       // seconds
	v.SetDefault("database.monitorInterval", 30) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.apiKey", "")
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("gold.ratePerGram", 6000.0)

	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("cors.maxAge", 12) // hours
}

// getEnvironment determines the environment to use based on GA_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps variables that don't follow the GA_ naming
func processEnvOverrides(v *viper.Viper) {
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" && os.Getenv(EnvPrefix+"_LLM_APIKEY") == "" {
		v.Set("llm.apiKey", apiKey)
	}
	if origins := os.Getenv(EnvPrefix + "_CORS_ALLOWORIGINS"); origins != "" {
		v.Set("cors.allowOrigins", strings.Split(origins, ","))
	}
}

// resolveDurations replaces every duration key, from file, env or default, with a time.Duration
func resolveDurations(v *viper.Viper) error {
	for key, unit := range durationUnits {
		d, err := toDuration(v.Get(key), unit)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		v.Set(key, d)
	}
	return nil
}

// toDuration reads a bare number in unit, or a duration string such as "1m30s"
func toDuration(raw any, unit time.Duration) (time.Duration, error) {
	switch value := raw.(type) {
	case nil:
		return 0, nil
	case time.Duration:
		return value, nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return 0, nil
		}
		if n, err := cast.ToFloat64E(value); err == nil {
			return time.Duration(n * float64(unit)), nil
		}
		return time.ParseDuration(value)
	default:
		n, err := cast.ToFloat64E(value)
		if err != nil {
			return 0, err
		}
		return time.Duration(n * float64(unit)), nil
	}
}
