// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing, and accessing
//              configuration data from TOML and YAML files. Provides format
//              auto-detection and typed accessors with defaults for the
//              dynstr command-line tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	dserror "github.com/msto63/dynstr/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration file
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format
}

// Load loads configuration from a file, auto-detecting the format
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file with an explicit format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, dserror.New("config file path cannot be empty").
			WithCode(dserror.CodeConfigError).
			WithOperation("config.LoadWithFormat")
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dserror.Newf("config file not found: %s", filePath).
				WithCode(dserror.CodeNotFound).
				WithOperation("config.LoadWithFormat").
				WithDetail("filePath", filePath)
		}
		return nil, dserror.Wrap(err, "reading config file").
			WithCode(dserror.CodeIOError).
			WithOperation("config.LoadWithFormat").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, dserror.Wrap(err, "parsing TOML config").
				WithCode(dserror.CodeConfigError).
				WithOperation("config.LoadWithFormat").
				WithDetail("filePath", filePath)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, dserror.Wrap(err, "parsing YAML config").
				WithCode(dserror.CodeConfigError).
				WithOperation("config.LoadWithFormat").
				WithDetail("filePath", filePath)
		}
	default:
		return nil, dserror.Newf("unsupported config format: %v", format).
			WithCode(dserror.CodeConfigError).
			WithOperation("config.LoadWithFormat")
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// detectFormat maps a file extension to a Format, defaulting to TOML
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	if c == nil {
		return ""
	}
	return c.filePath
}

// Format returns the format the configuration was parsed with
func (c *Config) Format() Format {
	if c == nil {
		return FormatAuto
	}
	return c.format
}

// Get returns the raw value at a dot-notation key, or nil if absent
func (c *Config) Get(key string) interface{} {
	if c == nil || key == "" {
		return nil
	}

	parts := strings.Split(key, ".")
	var current interface{} = c.data
	for _, part := range parts {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil
			}
			current = value
		case map[interface{}]interface{}:
			// yaml.v3 can produce interface-keyed maps for some documents
			value, ok := node[part]
			if !ok {
				return nil
			}
			current = value
		default:
			return nil
		}
	}
	return current
}

// GetString returns the string at key, or defaultValue if absent or untyped
func (c *Config) GetString(key, defaultValue string) string {
	value := c.Get(key)
	if value == nil {
		return defaultValue
	}
	if s, ok := value.(string); ok {
		return s
	}
	return defaultValue
}

// GetInt returns the integer at key, or defaultValue if absent or untyped.
// TOML decodes integers as int64 and YAML as int; both are accepted, as are
// numeric strings.
func (c *Config) GetInt(key string, defaultValue int) int {
	value := c.Get(key)
	if value == nil {
		return defaultValue
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetBool returns the boolean at key, or defaultValue if absent or untyped
func (c *Config) GetBool(key string, defaultValue bool) bool {
	value := c.Get(key)
	if value == nil {
		return defaultValue
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return defaultValue
}
