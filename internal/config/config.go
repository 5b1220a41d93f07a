// Package config handles the persistent application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration.
type Config struct {
	// DataFile is a complaints JSON file to load instead of the bundled
	// dataset. Empty means use the bundled one.
	DataFile string `json:"data_file"`

	// UI preferences
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	CompactMode   bool `json:"compact_mode"`    // single line per complaint
	MinLoadMillis int  `json:"min_load_millis"` // minimum loader display time
	KeywordLimit  int  `json:"keyword_limit"`   // keywords shown in sidebar/analytics
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			CompactMode:   false,
			MinLoadMillis: 800,
			KeywordLimit:  20,
		},
	}
}

// Dir returns the application data directory (~/.warroom).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".warroom")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from disk, or returns defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.UI.MinLoadMillis == 0 {
		cfg.UI.MinLoadMillis = DefaultConfig().UI.MinLoadMillis
	}
	if cfg.UI.KeywordLimit == 0 {
		cfg.UI.KeywordLimit = DefaultConfig().UI.KeywordLimit
	}
	cfg.ApplyEnv()
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides config fields from environment variables.
func (c *Config) ApplyEnv() {
	if path := os.Getenv("WARROOM_DATA"); path != "" {
		c.DataFile = path
	}
}
