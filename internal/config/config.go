package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	Store    StoreConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
	Refresh  RefreshConfig
	Log      LogConfig
}

type StoreConfig struct {
	Driver         string
	PeoplePageSize int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	AccessSecret string
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RefreshConfig struct {
	Interval time.Duration
}

type LogConfig struct {
	File        string
	Level       string
	Environment string
}

// InitializationError reports store parameters that must be set before start-up
type InitializationError struct {
	Missing []string
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// LoadConfig reads the environment, after loading a .env file if one exists
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Store: StoreConfig{
			Driver:         strings.ToLower(getEnv("STORE_DRIVER", DriverMySQL)),
			PeoplePageSize: parseInt(getEnv("PEOPLE_PAGE_SIZE", "10"), 10),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_NAME"),
		},
		JWT: JWTConfig{
			AccessSecret: os.Getenv("JWT_ACCESS_SECRET"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Refresh: RefreshConfig{
			Interval: parseDuration(getEnv("REFRESH_INTERVAL", "5m"), 5*time.Minute),
		},
		Log: LogConfig{
			File:        os.Getenv("LOG_FILE"),
			Level:       getEnv("LOG_LEVEL", "info"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.JWT.AccessSecret == "" {
		config.JWT.AccessSecret = devAccessSecret
	}
	return config, nil
}

// devAccessSecret signs tokens only for the in-memory store
const devAccessSecret = "dev-access-secret"

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory:
		return nil
	case DriverMySQL:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Database.Database == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWT.AccessSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}
	if len(missing) > 0 {
		return &InitializationError{Missing: missing}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "0" {
		return 0
	}
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		fmt.Printf("Warning: Invalid number '%s', using default\n", s)
		return fallback
	}
	return n
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
