package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		ReadTimeout    string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout   string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		Table           string `yaml:"table" env:"DB_TABLE"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		AcquireTimeout  string `yaml:"acquire_timeout" env:"DB_ACQUIRE_TIMEOUT"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Students holds optional column mappings used by the supplementary
	// roster features. An empty column name disables the feature.
	Students struct {
		ReasonColumn  string `yaml:"reason_column" env:"STUDENTS_REASON_COLUMN"`
		SectionColumn string `yaml:"section_column" env:"STUDENTS_SECTION_COLUMN"`
	} `yaml:"students"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory, if present, is loaded into the
// process environment first.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"*"}
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = ""
	config.Database.DBName = "pystudent"
	config.Database.Table = "students"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 10
	config.Database.MinConns = 0
	config.Database.ConnMaxLifetime = "1h"
	config.Database.AcquireTimeout = "5s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Students.ReasonColumn = "reason"
	config.Students.SectionColumn = "section"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.MaxConns <= 0 {
		return fmt.Errorf("database max_conns must be positive, got %d", config.Database.MaxConns)
	}

	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns, got %d", config.Database.MinConns)
	}

	// Table and column names are interpolated into SQL, never bound as
	// parameters, so they must be plain identifiers.
	if !identifierPattern.MatchString(config.Database.Table) {
		return fmt.Errorf("invalid table name %q", config.Database.Table)
	}
	for _, column := range []string{config.Students.ReasonColumn, config.Students.SectionColumn} {
		if column != "" && !identifierPattern.MatchString(column) {
			return fmt.Errorf("invalid column name %q", column)
		}
	}

	for name, value := range map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"database acquire_timeout":   config.Database.AcquireTimeout,
		"server read_timeout":        config.Server.ReadTimeout,
		"server write_timeout":       config.Server.WriteTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		net.JoinHostPort(c.Database.Host, c.Database.Port),
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
