// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration loadable from a JSON file. All
// fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Inputs
	SessionID        string `json:"session_id,omitempty"`        // Reflection session identifier
	SelfResponses    string `json:"self_responses,omitempty"`    // Path to self response JSON file
	AdvisorResponses string `json:"advisor_responses,omitempty"` // Path to advisor response JSON file

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per collaborator-call timeout
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	Output         string `json:"output,omitempty"`          // Optional path to write the synthesis JSON

	// Persistence / serving
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are checked after flag merging, not here.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.SelfResponses != "" {
		if _, err := os.Stat(c.SelfResponses); os.IsNotExist(err) {
			return fmt.Errorf("config error: self responses file not found: %s", c.SelfResponses)
		}
	}
	if c.AdvisorResponses != "" {
		if _, err := os.Stat(c.AdvisorResponses); os.IsNotExist(err) {
			return fmt.Errorf("config error: advisor responses file not found: %s", c.AdvisorResponses)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SessionID == "" {
		result.SessionID = defaults.SessionID
	}
	if result.SelfResponses == "" {
		result.SelfResponses = defaults.SelfResponses
	}
	if result.AdvisorResponses == "" {
		result.AdvisorResponses = defaults.AdvisorResponses
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}
