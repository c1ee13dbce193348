// Package config resolves the runtime configuration from the process
// environment. pd deliberately has no config file: one session, two
// knobs, both overridable by flags.
package config

import (
	"os"

	"pd/internal/errors"
	"pd/internal/keymap"
)

// Environment variables recognized at startup.
const (
	// EnvKeymap selects the keybinding scheme: "vim" or "emacs".
	EnvKeymap = "PD_KEYMAP"
	// EnvDebugLog names a file to append debug logs to. Logging is off
	// without it; stdout carries the result and stderr carries the UI.
	EnvDebugLog = "PD_DEBUG_LOG"
)

// Config holds the resolved settings for one session.
type Config struct {
	// Keymap is the keybinding scheme, fixed for the session.
	Keymap keymap.Keymap
	// DebugLog is the debug log file path; empty disables logging.
	DebugLog string
}

// New returns the default configuration: Vim keys, no logging.
func New() *Config {
	return &Config{Keymap: keymap.Vim}
}

// Load resolves the configuration from the real environment.
func Load() (*Config, error) {
	return LoadEnv(os.Getenv)
}

// LoadEnv resolves the configuration through getenv. An unrecognized
// keymap value falls back to Vim and is reported as an advisory
// errors.UnknownKeymap alongside the usable config; the caller decides
// how loudly to warn. No other value can fail.
func LoadEnv(getenv func(string) string) (*Config, error) {
	cfg := New()
	cfg.DebugLog = getenv(EnvDebugLog)

	var warn error
	if value := getenv(EnvKeymap); value != "" {
		km, ok := keymap.Parse(value)
		if !ok {
			warn = errors.NewConfigError("unrecognized keymap", value, errors.UnknownKeymap, nil)
		}
		cfg.Keymap = km
	}
	return cfg, warn
}

// Validate checks the configuration for programmer-error states. A
// config coming out of LoadEnv is always valid; this guards values
// patched in afterwards, e.g. by flag handling.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.Keymap != keymap.Vim && c.Keymap != keymap.Emacs {
		return errors.Newf("keymap out of range: %d", int(c.Keymap))
	}
	return nil
}
