//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-tradegen.
// Values come from a YAML config file, an optional .env file, the process
// environment and CLI flags. CLI flags take precedence over everything
// else; environment variables take precedence over the config file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DateLayout is the format of start_date and end_date.
const DateLayout = "2006-01-02"

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.name":     "DB_NAME",
	"generate.seed":     "TRADEGEN_SEED",
}

// Config holds all configuration for pgedge-tradegen.
type Config struct {
	// Connection is the PostgreSQL connection string. When set it
	// overrides the individual Database fields.
	Connection string `mapstructure:"connection"`

	// Database holds the connection parts, usually supplied as DB_*
	// environment variables.
	Database DatabaseConfig `mapstructure:"database"`

	// App is the data set to generate.
	App string `mapstructure:"app"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// DatabaseConfig holds the parts of a connection string.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// GenerateConfig holds configuration for data generation.
type GenerateConfig struct {
	// Seed makes a run reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`

	// Records is the base record count that per-table counts scale from.
	Records int `mapstructure:"records"`

	// StartDate is the first day of generated history (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`

	// EndDate is the last day of generated history. Empty means now.
	EndDate string `mapstructure:"end_date"`

	// Atomic writes the whole run in a single transaction.
	Atomic bool `mapstructure:"atomic"`

	// DryRun generates into memory without touching the database.
	DryRun bool `mapstructure:"dry_run"`

	// ExportDir, when set, receives one CSV file per table.
	ExportDir string `mapstructure:"export_dir"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		App:      "trading",
		LogLevel: "info",
		Database: DatabaseConfig{
			Host: "localhost",
			Port: 5432,
		},
		Generate: GenerateConfig{
			Records:   100,
			StartDate: "2024-01-01",
		},
	}
}

// Load reads configuration from config files, .env and the environment.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-tradegen.yaml
// 3. ~/.config/pgedge-tradegen/config.yaml
func Load(configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("pgedge-tradegen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-tradegen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// DSN returns the connection string, building it from the Database parts
// when Connection is empty.
func (c *Config) DSN() string {
	if c.Connection != "" {
		return c.Connection
	}
	d := c.Database
	if d.Name == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, fmt.Sprint(d.Port)),
		Path:   "/" + d.Name,
	}
	switch {
	case d.User != "" && d.Password != "":
		u.User = url.UserPassword(d.User, d.Password)
	case d.User != "":
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// Window returns the generated history bounds. The end bound is midnight
// after end_date so the whole last day is covered. A zero end means now.
func (g GenerateConfig) Window() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, g.StartDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", g.StartDate, err)
	}
	if g.EndDate == "" {
		return start, time.Time{}, nil
	}
	end, err := time.ParseInLocation(DateLayout, g.EndDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", g.EndDate, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date must be after start_date")
	}
	return start, end.AddDate(0, 0, 1), nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DSN() == "" {
		return fmt.Errorf("connection string or DB_NAME is required")
	}
	if c.App == "" {
		return fmt.Errorf("app type is required")
	}
	return nil
}

// ValidateGenerate checks configuration required for the generate command.
// A dry run needs no connection.
func (c *Config) ValidateGenerate() error {
	if c.App == "" {
		return fmt.Errorf("app type is required")
	}
	if !c.Generate.DryRun && c.DSN() == "" {
		return fmt.Errorf("connection string or DB_NAME is required")
	}
	if c.Generate.Records < 1 {
		return fmt.Errorf("records must be at least 1")
	}
	if _, _, err := c.Generate.Window(); err != nil {
		return err
	}
	return nil
}
