// Package session resolves the operating mode and API key the CLI runs with.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/common"
)

// Mode selects the credential and the EasyPost environment.
type Mode string

const (
	ModeTest Mode = "TEST"
	ModeProd Mode = "PROD"
)

// ParseMode is lenient: only "p" or "prod" (any case) select PROD.
func ParseMode(s string) Mode {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "P", "PROD":
		return ModeProd
	default:
		return ModeTest
	}
}

// ParseModeArg validates a mode given on the command line.
func ParseModeArg(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "TEST":
		return ModeTest, nil
	case "P", "PROD":
		return ModeProd, nil
	default:
		return "", fmt.Errorf("%w: %q (want t, test, p or prod)", common.ErrInvalidMode, s)
	}
}

// IsProd reports whether m is production.
func (m Mode) IsProd() bool { return m == ModeProd }

func (m Mode) String() string { return string(m) }

// Session is created once at startup and passed by value afterwards.
type Session struct {
	Mode   Mode
	APIKey string
}

// Prompter reads user input. ReadSecret must not echo on a terminal.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// CredentialStore is the subset of credentials.Store the bootstrap needs.
type CredentialStore interface {
	Load(mode string) (string, bool)
	Save(mode, key string) error
	DisplayPath() string
}

// Bootstrap determines the mode (from hint or by asking) and loads the key
// for it, asking for and saving a new one when none is stored.
func Bootstrap(ctx context.Context, hint string, p Prompter, store CredentialStore, out io.Writer) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	if strings.TrimSpace(hint) == "" {
		line, err := p.ReadLine("Start EasyPost CLI in Test or Prod mode? [T/p]\n")
		if err != nil {
			return Session{}, fmt.Errorf("read mode: %w", err)
		}
		hint = line
	}
	mode := ParseMode(hint)

	if key, ok := store.Load(mode.String()); ok {
		return Session{Mode: mode, APIKey: key}, nil
	}

	var key string
	for key == "" {
		if err := ctx.Err(); err != nil {
			return Session{}, err
		}
		v, err := p.ReadSecret(fmt.Sprintf("What is your EasyPost %s API key?\n", mode))
		if err != nil {
			return Session{}, fmt.Errorf("read api key: %w", err)
		}
		key = strings.TrimSpace(v)
	}

	if err := store.Save(mode.String(), key); err != nil {
		return Session{}, fmt.Errorf("save api key: %w", err)
	}
	fmt.Fprintf(out, "EasyPost %s API key saved to %s\n", mode, store.DisplayPath())

	return Session{Mode: mode, APIKey: key}, nil
}
