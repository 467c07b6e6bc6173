package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config is the versioned configuration snapshot consumed by the core.
// Snapshots are immutable: every mutation goes through Manager.Replace,
// which swaps the whole object so caches keyed on its identity notice.
type Config struct {
	Candidates  CandidatesConfig  `mapstructure:"candidates" yaml:"candidates"`
	Schema      SchemaConfig      `mapstructure:"schema" yaml:"schema"`
	ColorScheme ColorSchemeConfig `mapstructure:"color_scheme" yaml:"color_scheme"`
	Deployment  DeploymentConfig  `mapstructure:"deployment" yaml:"deployment"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// CandidatesConfig holds candidate presentation settings.
type CandidatesConfig struct {
	// PageSize is the maximum candidate count per page.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// SchemaConfig holds input schema selection settings.
type SchemaConfig struct {
	ActiveID string `mapstructure:"active_id" yaml:"active_id"`
	// ResetOnSwitch drops in-flight composition when switching schemas.
	ResetOnSwitch bool `mapstructure:"reset_on_switch" yaml:"reset_on_switch"`
}

// ColorSchemeConfig holds palette selection settings.
type ColorSchemeConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Name    string `mapstructure:"name" yaml:"name"`
}

// DeploymentConfig holds shared-asset and user-data locations.
type DeploymentConfig struct {
	SharedDataDir string `mapstructure:"shared_data_dir" yaml:"shared_data_dir"`
	UserDataDir   string `mapstructure:"user_data_dir" yaml:"user_data_dir"`
	// OverrideUserData is a one-shot flag: when true the next session
	// start forces a full resource re-scan, then the flag is cleared.
	OverrideUserData bool `mapstructure:"override_user_data" yaml:"override_user_data"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Manager loads, persists, and publishes configuration snapshots.
type Manager struct {
	mu             sync.RWMutex
	viper          *viper.Viper
	config         *Config
	callbacks      []func(Change)
	watching       bool
	skipNextReload bool
	configFile     string
}

// NewManager creates a manager rooted at the XDG config directory,
// writing a default config file (and its JSON schema) on first run.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a manager rooted at an explicit directory.
func NewManagerAt(configDir string) (*Manager, error) {
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	configFile := filepath.Join(configDir, "config.yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := v.WriteConfigAs(configFile); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		if err := GenerateSchemaFile(configDir); err != nil {
			// Schema generation is convenience, not correctness.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}

	return &Manager{
		viper:      v,
		config:     cfg,
		configFile: configFile,
	}, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaultPaths(cfg)
	return cfg, nil
}

// applyDefaultPaths fills directory fields left empty by the user.
func applyDefaultPaths(cfg *Config) {
	if cfg.Deployment.SharedDataDir == "" {
		if dir, err := GetSharedDataDir(); err == nil {
			cfg.Deployment.SharedDataDir = dir
		}
	}
	if cfg.Deployment.UserDataDir == "" {
		if dir, err := GetUserDataDir(); err == nil {
			cfg.Deployment.UserDataDir = dir
		}
	}
}

// Get returns the current configuration snapshot. Callers must treat
// it as read-only; mutations go through Replace.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ConfigFilePath returns the backing config file location.
func (m *Manager) ConfigFilePath() string {
	return m.configFile
}

// Replace swaps in a new configuration snapshot, persists it, and
// notifies subscribers of the discrete changes. This is the only
// mutation path; in-place field writes are invisible to caches keyed
// on snapshot identity.
func (m *Manager) Replace(next *Config) error {
	if next == nil {
		return fmt.Errorf("config: replace with nil snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	old := m.config
	m.config = next
	m.syncViperLocked(next)
	m.skipNextReload = true
	err := m.viper.WriteConfig()
	changes := diff(old, next)
	m.notifyLocked(changes)
	if err != nil {
		return fmt.Errorf("failed to persist config: %w", err)
	}
	return nil
}

// syncViperLocked mirrors the snapshot into viper's key space.
// Caller must hold m.mu for write.
func (m *Manager) syncViperLocked(cfg *Config) {
	m.viper.Set("candidates.page_size", cfg.Candidates.PageSize)
	m.viper.Set("schema.active_id", cfg.Schema.ActiveID)
	m.viper.Set("schema.reset_on_switch", cfg.Schema.ResetOnSwitch)
	m.viper.Set("color_scheme.enabled", cfg.ColorScheme.Enabled)
	m.viper.Set("color_scheme.name", cfg.ColorScheme.Name)
	m.viper.Set("deployment.shared_data_dir", cfg.Deployment.SharedDataDir)
	m.viper.Set("deployment.user_data_dir", cfg.Deployment.UserDataDir)
	m.viper.Set("deployment.override_user_data", cfg.Deployment.OverrideUserData)
	m.viper.Set("logging.level", cfg.Logging.Level)
	m.viper.Set("logging.format", cfg.Logging.Format)
}

// notifyLocked copies callbacks and releases the lock before invoking
// them. Caller must hold m.mu for write; the lock is held again on
// return.
func (m *Manager) notifyLocked(changes []Change) {
	if len(changes) == 0 || len(m.callbacks) == 0 {
		return
	}
	callbacks := make([]func(Change), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()
	for _, cb := range callbacks {
		for _, ch := range changes {
			cb(ch)
		}
	}
	m.mu.Lock()
}

// OnChange registers a subscriber for discrete configuration change
// events. Subscribers marshal the event onto their own serialized
// context before touching session state.
func (m *Manager) OnChange(cb func(Change)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// ConsumeOverrideUserData returns the one-shot override flag and
// clears it. The first session start after the flag is set gets a full
// resource re-scan; later starts do not.
func (m *Manager) ConsumeOverrideUserData() bool {
	m.mu.Lock()
	if !m.config.Deployment.OverrideUserData {
		m.mu.Unlock()
		return false
	}
	next := *m.config
	next.Deployment.OverrideUserData = false
	m.config = &next
	m.syncViperLocked(&next)
	m.skipNextReload = true
	err := m.viper.WriteConfig()
	m.mu.Unlock()
	if err != nil {
		// The in-memory flag is already consumed; persistence is
		// best-effort.
		fmt.Fprintf(os.Stderr, "warning: failed to persist override flag: %v\n", err)
	}
	return true
}
