// Package common contains shared constants and sentinel errors used across
// the EasyPost CLI packages.
package common

import "fmt"

const (
	// AppDirName is the per-user directory under $HOME.
	AppDirName = ".easypost-cli"
	// CredentialsFileName is the credential store inside AppDirName.
	CredentialsFileName = "config"
	// SettingsFileName is the optional settings overlay inside AppDirName.
	SettingsFileName = "settings.yaml"
	// LedgerFileName is the default sqlite purchase history inside AppDirName.
	LedgerFileName = "history.db"
)

// APIKeyName returns the credential line key for a mode, e.g.
// EASYPOST_TEST_API_KEY.
func APIKeyName(mode string) string {
	return fmt.Sprintf("EASYPOST_%s_API_KEY", mode)
}
