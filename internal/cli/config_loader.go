// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strconv"

	"bookmarkhub/internal/config"
	"bookmarkhub/internal/logging"
)

// configPath resolves the configuration file path. BMH_CONFIG_PATH is used
// unless the flag was set to something other than the default.
func (options *GlobalOptions) configPath() string {
	if envPath := os.Getenv("BMH_CONFIG_PATH"); envPath != "" && options.CfgFilePath == defaultConfigPath {
		return envPath
	}
	if options.CfgFilePath == "" {
		return defaultConfigPath
	}
	return options.CfgFilePath
}

// loadConfig loads the configuration file and applies env/flag overrides.
// A missing file is not an error, the defaults are used instead.
func loadConfig(globalOptions *GlobalOptions, serveOptions *ServeOptions) (*config.Config, error) {
	path := globalOptions.configPath()

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Default()
		} else {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	if err := prepareConfig(cfg, globalOptions, serveOptions); err != nil {
		return nil, err
	}

	return cfg, nil
}

// prepareConfig applies overrides, validates and sets the log level.
// It also runs on every live reload.
func prepareConfig(c *config.Config, globalOptions *GlobalOptions, serveOptions *ServeOptions) error {
	applyOverrides(c, globalOptions, serveOptions)
	if err := c.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logging.Init(c.Logging.Level)
	return nil
}

func applyOverrides(c *config.Config, globalOptions *GlobalOptions, serveOptions *ServeOptions) {
	getEnv := func(key string) string { return os.Getenv(key) }

	c.Version = Version

	// --- Environment Variables ---
	if v := getEnv("BMH_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getEnv("BMH_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("BMH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("BMH_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("BMH_MAX_SYNCS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxSyncs = n
		}
	}
	if v := getEnv("BMH_ONLINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Status.Online = b
		}
	}

	// --- CLI Flags ---
	if globalOptions != nil && globalOptions.LogLevel != "" {
		c.Logging.Level = globalOptions.LogLevel
	}
	if serveOptions != nil {
		if serveOptions.Host != "" {
			c.Server.Host = serveOptions.Host
		}
		if serveOptions.Port != 0 {
			c.Server.Port = serveOptions.Port
		}
	}
}
