package config

import (
	"errors"
	"fmt"
	"sync/atomic"

	"bookmarkhub/internal/logging"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrNotLoaded is returned by Store.Get before any configuration was set.
var ErrNotLoaded = errors.New("configuration not loaded")

// Provider gives read access to the current configuration.
type Provider interface {
	Get() (*Config, error)
}

// PrepareFunc finalizes a freshly decoded configuration, e.g. by applying
// env/flag overrides and calling ParseAndValidate.
type PrepareFunc func(*Config) error

var _ Provider = (*Store)(nil)

// Store holds the process-wide configuration snapshot.
// Snapshots are replaced as a whole and must not be mutated once set.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store holding cfg. cfg may be nil.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	if cfg != nil {
		s.current.Store(cfg)
	}
	return s
}

// Get returns the current configuration snapshot.
func (s *Store) Get() (*Config, error) {
	cfg := s.current.Load()
	if cfg == nil {
		return nil, ErrNotLoaded
	}
	return cfg, nil
}

// Set replaces the current snapshot.
func (s *Store) Set(cfg *Config) {
	s.current.Store(cfg)
}

// Reload reads path again and swaps the snapshot in.
// On failure the previous snapshot stays active.
func (s *Store) Reload(path string, prepare PrepareFunc) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload configuration from %s: %w", path, err)
	}
	if prepare != nil {
		if err := prepare(cfg); err != nil {
			return fmt.Errorf("reloaded configuration rejected: %w", err)
		}
	}
	s.Set(cfg)
	return nil
}

// Watch reloads the store whenever the file at path changes.
// The watcher lives for the rest of the process.
func (s *Store) Watch(path string, prepare PrepareFunc) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := s.Reload(path, prepare); err != nil {
			logging.Log.Errorf("Keeping previous configuration: %v", err)
			return
		}
		logging.Log.WithField("file", e.Name).Info("Configuration reloaded.")
	})
	v.WatchConfig()
	logging.Log.Infof("Watching %s for configuration changes.", path)
}
