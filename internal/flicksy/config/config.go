// Package config holds runtime settings for the Flicksy terminal client.
//
// Resolution order: defaults, then the optional JSON config file under the
// client home directory, then command-line flags (applied by the command
// layer). Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerURL: base URL of the backend, e.g. "http://127.0.0.1:8080".
//   - HomeDir: directory for the credential file and config.json.
//   - RequestTimeout: per-request timeout for API calls.
//   - LogLevel: slog level name ("debug", "info", "warn", "error").
type Config struct {
	ServerURL      string
	HomeDir        string
	RequestTimeout time.Duration
	LogLevel       string
}

// ConfigFileName is the optional JSON overlay under HomeDir.
const ConfigFileName = "config.json"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.HomeDir = defaultHomeDir()
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
}

// Load constructs a Config from defaults overlaid with the JSON file in
// homeDir (when homeDir is empty, the default home is used). Flag values
// are applied afterwards by the caller.
func Load(homeDir string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if homeDir != "" {
		cfg.HomeDir = homeDir
	}
	if err := cfg.applyFile(filepath.Join(cfg.HomeDir, ConfigFileName)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".flicksy"
	}
	return filepath.Join(dir, ".flicksy")
}
