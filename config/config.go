// Package config provides configuration loading and management for the
// ontolabel service.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontolabel configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	NATS    NATSConfig    `yaml:"nats"`
	Labels  LabelsConfig  `yaml:"labels"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	// Addr is the listen address for the HTTP API (default: ":8095")
	Addr string `yaml:"addr"`
	// APIPrefix is the path prefix for label endpoints (default: "api/labels")
	APIPrefix string `yaml:"api_prefix"`
}

// NATSConfig configures the NATS request/reply responder
type NATSConfig struct {
	// URL is the NATS server URL (empty = NATS responder disabled)
	URL string `yaml:"url"`
	// Subject is the request subject to serve (default: "catalog.label.resolve")
	Subject string `yaml:"subject"`
}

// LabelsConfig configures label resolution behavior
type LabelsConfig struct {
	// DefaultLanguage is the language used when a request carries none
	// (default: "en")
	DefaultLanguage string `yaml:"default_language"`
	// OverridesPath points to the label override YAML file (empty = no overrides)
	OverridesPath string `yaml:"overrides_path"`
}

// CatalogConfig configures the catalog snapshot source
type CatalogConfig struct {
	// TriplesPath points to a YAML snapshot of knowledge-graph triples
	// served by the API (empty = start with an empty catalog)
	TriplesPath string `yaml:"triples_path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8095",
			APIPrefix: "api/labels",
		},
		NATS: NATSConfig{
			URL:     "", // Disabled
			Subject: "catalog.label.resolve",
		},
		Labels: LabelsConfig{
			DefaultLanguage: "en",
			OverridesPath:   "",
		},
		Catalog: CatalogConfig{
			TriplesPath: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Labels.DefaultLanguage == "" {
		return fmt.Errorf("labels.default_language is required")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.APIPrefix != "" {
		c.Server.APIPrefix = other.Server.APIPrefix
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}

	// Labels
	if other.Labels.DefaultLanguage != "" {
		c.Labels.DefaultLanguage = other.Labels.DefaultLanguage
	}
	if other.Labels.OverridesPath != "" {
		c.Labels.OverridesPath = other.Labels.OverridesPath
	}

	// Catalog
	if other.Catalog.TriplesPath != "" {
		c.Catalog.TriplesPath = other.Catalog.TriplesPath
	}
}
