// filepath: internal/config/config.go
package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Location    string `toml:"location"`      // ISO country code reported by /info
	MaxSyncs    int64  `toml:"max_syncs"`     // 0 means unlimited
	MaxSyncSize string `toml:"max_sync_size"` // e.g. "512000", "500KB"

	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Status   StatusConfig   `toml:"status"`

	Version           string        `toml:"-"` // Injected from the build
	MaxSyncSizeBytes  int64         `toml:"-"` // Runtime computed value
	AcceptanceTimeout time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	AcceptanceTimeout string `toml:"acceptance_timeout"` // e.g. "5s", "0" disables the deadline
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// StatusConfig controls what the service advertises to clients.
type StatusConfig struct {
	Online        bool   `toml:"online"`
	AllowNewSyncs bool   `toml:"allow_new_syncs"`
	Message       string `toml:"message"` // May contain HTML, sanitized before it is served
}

// Default returns a configuration populated with the default settings.
func Default() *Config {
	return &Config{
		Location:    "gb",
		MaxSyncs:    5242,
		MaxSyncSize: "512000",
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			AcceptanceTimeout: "5s",
		},
		Database: DatabaseConfig{Path: "bookmarkhub.db"},
		Logging:  LoggingConfig{Level: "info"},
		Status: StatusConfig{
			Online:        true,
			AllowNewSyncs: true,
		},
	}
}

// LoadConfig loads the configuration from a TOML file.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	if c.MaxSyncSize == "" {
		c.MaxSyncSize = "512000"
	}
	sizeBytes, err := parseSize(c.MaxSyncSize)
	if err != nil {
		return fmt.Errorf("invalid max_sync_size: %w", err)
	}
	if sizeBytes <= 0 {
		return fmt.Errorf("invalid max_sync_size: %s must be greater than zero", c.MaxSyncSize)
	}
	c.MaxSyncSizeBytes = sizeBytes

	if c.Server.AcceptanceTimeout == "" {
		c.Server.AcceptanceTimeout = "5s"
	}
	timeout, err := parseTimeout(c.Server.AcceptanceTimeout)
	if err != nil {
		return fmt.Errorf("invalid acceptance_timeout: %w", err)
	}
	c.AcceptanceTimeout = timeout

	if c.MaxSyncs < 0 {
		return fmt.Errorf("invalid max_syncs: %d must not be negative", c.MaxSyncs)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration: %s", s)
	}
	return d, nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	var multiplier int64 = 1
	switch unit {
	case "T":
		multiplier = 1 << 40
	case "G":
		multiplier = 1 << 30
	case "M":
		multiplier = 1 << 20
	case "K":
		multiplier = 1 << 10
	}

	if value > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("invalid size: %s overflows", sizeStr)
	}
	return value * multiplier, nil
}
