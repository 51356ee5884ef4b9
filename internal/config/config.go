package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DirectoryPostgres = "postgres"
	DirectorySQLite   = "sqlite"
	DirectoryMemory   = "memory"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Leave     LeaveConfig
	Directory DirectoryConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// LeaveConfig holds the leave policy: default annual paid-leave quota and
// advance-notice thresholds.
type LeaveConfig struct {
	DefaultQuota         int
	MinNoticeDays        int
	MediumSpanDays       int
	MediumSpanNoticeDays int
	LongSpanDays         int
	LongSpanNoticeDays   int
	MaxSpanDays          int
}

// DirectoryConfig selects the document store backing staff and leave records.
type DirectoryConfig struct {
	Driver     string
	SQLitePath string
	SeedStaff  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
		slog.Debug("No .env file found, using environment only")
	}

	config := &Config{}
	var err error

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	autoMigrate, err := getEnvBool("DB_AUTO_MIGRATE", false)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "learnhub_backoffice"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		MaxConns:    int32(maxConns),
		MinConns:    int32(minConns),
		AutoMigrate: autoMigrate,
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "learnhub-backoffice"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Leave policy
	if config.Leave, err = loadLeaveConfig(); err != nil {
		return nil, err
	}

	// Directory
	config.Directory = DirectoryConfig{
		Driver:     strings.ToLower(getEnv("DIRECTORY_DRIVER", DirectoryPostgres)),
		SQLitePath: getEnv("DIRECTORY_SQLITE_PATH", "./data/backoffice.db"),
		SeedStaff:  getEnv("DIRECTORY_SEED_STAFF", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadLeaveConfig() (LeaveConfig, error) {
	var (
		c   LeaveConfig
		err error
	)
	fields := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"LEAVE_DEFAULT_QUOTA", 12, &c.DefaultQuota},
		{"LEAVE_MIN_NOTICE_DAYS", 1, &c.MinNoticeDays},
		{"LEAVE_MEDIUM_SPAN_DAYS", 3, &c.MediumSpanDays},
		{"LEAVE_MEDIUM_SPAN_NOTICE_DAYS", 3, &c.MediumSpanNoticeDays},
		{"LEAVE_LONG_SPAN_DAYS", 5, &c.LongSpanDays},
		{"LEAVE_LONG_SPAN_NOTICE_DAYS", 7, &c.LongSpanNoticeDays},
		{"LEAVE_MAX_SPAN_DAYS", 366, &c.MaxSpanDays},
	}
	for _, f := range fields {
		if *f.dst, err = getEnvInt(f.key, f.fallback); err != nil {
			return LeaveConfig{}, err
		}
	}
	return c, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}

	switch c.Directory.Driver {
	case DirectoryPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DirectorySQLite:
		if c.Directory.SQLitePath == "" {
			return fmt.Errorf("DIRECTORY_SQLITE_PATH is required")
		}
	case DirectoryMemory:
	default:
		return fmt.Errorf("DIRECTORY_DRIVER must be one of %q, %q, %q, got %q",
			DirectoryPostgres, DirectorySQLite, DirectoryMemory, c.Directory.Driver)
	}

	if c.Leave.DefaultQuota < 0 {
		return fmt.Errorf("LEAVE_DEFAULT_QUOTA must not be negative")
	}
	if c.Leave.MinNoticeDays < 0 || c.Leave.MediumSpanNoticeDays < 0 || c.Leave.LongSpanNoticeDays < 0 {
		return fmt.Errorf("leave notice days must not be negative")
	}
	if c.Leave.MediumSpanDays > c.Leave.LongSpanDays {
		return fmt.Errorf("LEAVE_MEDIUM_SPAN_DAYS must not exceed LEAVE_LONG_SPAN_DAYS")
	}
	if c.Leave.MaxSpanDays < 1 || c.Leave.MaxSpanDays > 366 {
		return fmt.Errorf("LEAVE_MAX_SPAN_DAYS must be between 1 and 366")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
