package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/client"
	"github.com/dmitrijs2005/easypost-cli/internal/common"
	"github.com/dmitrijs2005/easypost-cli/internal/filex"
	"github.com/dmitrijs2005/easypost-cli/internal/logging"
	"github.com/spf13/pflag"
)

// ArchiveConfig selects the S3 bucket postage labels are copied to.
// An empty Bucket disables archiving.
type ArchiveConfig struct {
	Bucket    string `json:"bucket" yaml:"bucket"`
	Region    string `json:"region" yaml:"region"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"access_key" yaml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key"`
}

// Enabled reports whether a bucket is configured.
func (a ArchiveConfig) Enabled() bool { return a.Bucket != "" }

// Config holds runtime settings for the CLI.
//
// Retries is the total number of attempts for read requests; writes are
// always sent once. Timeout zero means no HTTP timeout.
type Config struct {
	APIBaseURL string
	ConfigDir  string
	LedgerDSN  string
	Retries    int
	Timeout    time.Duration
	LogLevel   string
	NoColor    bool
	Archive    ArchiveConfig
}

// LoadDefaults populates c with the values used when nothing else is set.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.ConfigDir = defaultConfigDir()
	c.LedgerDSN = ""
	c.Retries = 1
	c.Timeout = 0
	c.LogLevel = "error"
	c.NoColor = false
	c.Archive = ArchiveConfig{}
}

func defaultConfigDir() string {
	dir, err := filex.UserDir(common.AppDirName)
	if err != nil {
		return common.AppDirName
	}
	return dir
}

// CredentialsPath is the credential file inside ConfigDir.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.ConfigDir, common.CredentialsFileName)
}

// Load applies defaults, the settings file and then the flags changed on fs.
// The settings file is the one named by --config, or settings.yaml inside
// the config directory when that exists.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = defaultSettingsPath(cfg, fs); err != nil {
			return nil, err
		}
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}

	if cfg.LedgerDSN == "" {
		cfg.LedgerDSN = filepath.Join(cfg.ConfigDir, common.LedgerFileName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultSettingsPath returns settings.yaml in the config directory, or ""
// when there is none.
func defaultSettingsPath(cfg *Config, fs *pflag.FlagSet) (string, error) {
	dir := cfg.ConfigDir
	if fs.Changed(flagConfigDir) {
		var err error
		if dir, err = fs.GetString(flagConfigDir); err != nil {
			return "", err
		}
	}
	path := filepath.Join(dir, common.SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat settings: %w", err)
	}
	return path, nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	if c.Retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", c.Retries)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api url must not be empty")
	}
	return nil
}
