package config

import (
	"time"

	"github.com/spf13/pflag"
)

const (
	flagConfig          = "config"
	flagConfigDir       = "config-dir"
	flagAPIURL          = "api-url"
	flagLedger          = "ledger"
	flagRetries         = "retries"
	flagTimeout         = "timeout"
	flagLogLevel        = "log-level"
	flagNoColor         = "no-color"
	flagArchiveBucket   = "archive-bucket"
	flagArchiveRegion   = "archive-region"
	flagArchiveEndpoint = "archive-endpoint"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// come from LoadDefaults.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "settings file (JSON or YAML)")
	fs.String(flagConfigDir, d.ConfigDir, "directory holding the credential file and history")
	fs.String(flagAPIURL, d.APIBaseURL, "EasyPost API base URL")
	fs.String(flagLedger, "", "purchase history DSN: sqlite file path or postgres:// URL (default <config-dir>/history.db)")
	fs.Int(flagRetries, d.Retries, "attempts per read request (1 disables retries)")
	fs.Duration(flagTimeout, d.Timeout, "HTTP timeout, 0 for none")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	fs.Bool(flagNoColor, d.NoColor, "disable colored output")
	fs.String(flagArchiveBucket, "", "S3 bucket to copy purchased labels to")
	fs.String(flagArchiveRegion, "", "S3 region for the label archive")
	fs.String(flagArchiveEndpoint, "", "custom S3 endpoint, e.g. http://localhost:9000")
}

// applyFlags copies only the flags the user changed, so that settings file
// values survive flag defaults.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err != nil || !fs.Changed(name) {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(flagConfigDir, &cfg.ConfigDir)
	str(flagAPIURL, &cfg.APIBaseURL)
	str(flagLedger, &cfg.LedgerDSN)
	str(flagLogLevel, &cfg.LogLevel)
	str(flagArchiveBucket, &cfg.Archive.Bucket)
	str(flagArchiveRegion, &cfg.Archive.Region)
	str(flagArchiveEndpoint, &cfg.Archive.Endpoint)
	if err != nil {
		return err
	}

	if fs.Changed(flagRetries) {
		if cfg.Retries, err = fs.GetInt(flagRetries); err != nil {
			return err
		}
	}
	if fs.Changed(flagTimeout) {
		var d time.Duration
		if d, err = fs.GetDuration(flagTimeout); err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if fs.Changed(flagNoColor) {
		if cfg.NoColor, err = fs.GetBool(flagNoColor); err != nil {
			return err
		}
	}
	return nil
}
