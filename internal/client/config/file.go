package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the settings file DTO. Pointer fields tell "absent" apart
// from zero values so a file only overrides what it names.
type fileConfig struct {
	APIBaseURL *string        `json:"api_url" yaml:"api_url"`
	ConfigDir  *string        `json:"config_dir" yaml:"config_dir"`
	LedgerDSN  *string        `json:"ledger" yaml:"ledger"`
	Retries    *int           `json:"retries" yaml:"retries"`
	Timeout    *string        `json:"timeout" yaml:"timeout"`
	LogLevel   *string        `json:"log_level" yaml:"log_level"`
	NoColor    *bool          `json:"no_color" yaml:"no_color"`
	Archive    *ArchiveConfig `json:"archive" yaml:"archive"`
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}

	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.ConfigDir != nil {
		cfg.ConfigDir = *fc.ConfigDir
	}
	if fc.LedgerDSN != nil {
		cfg.LedgerDSN = *fc.LedgerDSN
	}
	if fc.Retries != nil {
		cfg.Retries = *fc.Retries
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("settings timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.Archive != nil {
		cfg.Archive = *fc.Archive
	}
	return nil
}
