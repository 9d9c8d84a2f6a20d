package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/flicksy/flicksy-cli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the file can specify timeouts either as strings
// like "15s" or as integer nanoseconds.
type jsonConfig struct {
	ServerURL      string          `json:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
}

// applyFile overlays c with values from the JSON file at path. A missing
// file is fine; an unreadable or malformed one is an error, since silently
// ignoring a broken config would be confusing.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		c.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		c.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		c.LogLevel = jc.LogLevel
	}
	return nil
}
