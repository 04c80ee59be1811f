// Package config owns the durable installer store: the in-memory Config plus
// load/persist against the human-editable config.toml on the application
// server. The store is the sole source of truth for what is installed on this
// host.
package config

import (
	"errors"
	"fmt"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

// ErrMalformed is a sentinel that wraps TOML parse failures (as opposed to
// filesystem errors or an absent file, which yields a fresh store).
// Callers can use errors.Is(err, ErrMalformed) to distinguish a corrupt
// config from other Load failure modes.
var ErrMalformed = errors.New("config is malformed")

// ErrTokenConflict is a sentinel wrapped by Add when the installer token is
// already registered.
var ErrTokenConflict = errors.New("installer token conflict")

// ErrPortConflict is a sentinel wrapped by Add when the run port is already
// bound to another installer.
var ErrPortConflict = errors.New("run port conflict")

// Installer is one installed application instance recorded in config.toml.
type Installer struct {
	// URL is the control-plane endpoint this instance was registered against.
	// It is opaque here and never reused for artifact downloads.
	URL string `toml:"url"`
	// InstallerToken uniquely identifies this instance. It is assigned by the
	// control plane and never regenerated locally.
	InstallerToken string `toml:"installer_token"`
	AppName        string `toml:"app_name"`
	AppVersion     string `toml:"app_version"`
	AppFileName    string `toml:"app_file_name"`
	AppRunPort     uint32 `toml:"app_run_port"`
	JDKName        string `toml:"jdk_name"`
	JDKVersion     string `toml:"jdk_version"`
	JDKFileName    string `toml:"jdk_file_name"`
}

// Config is the full installer store: the immutable server identity plus the
// ordered sequence of installed instances.
type Config struct {
	// ServerIdentity uniquely identifies this server. Derived once when the
	// store is first synthesized; never regenerated afterwards.
	ServerIdentity string      `toml:"server_identity"`
	Installers     []Installer `toml:"installers,omitempty"`
}

// Add appends rec to the installer sequence. It enforces the store
// invariants itself: a duplicate installer token yields ErrTokenConflict and
// a duplicate run port yields ErrPortConflict, in both cases without
// mutating the sequence.
func (c *Config) Add(rec Installer) error {
	for _, existing := range c.Installers {
		if existing.InstallerToken == rec.InstallerToken {
			return fmt.Errorf("%w: "+messages.ConfigTokenConflictFmt, ErrTokenConflict, rec.InstallerToken)
		}
		if existing.AppRunPort == rec.AppRunPort {
			return fmt.Errorf("%w: "+messages.ConfigPortConflictFmt, ErrPortConflict, rec.AppRunPort, existing.InstallerToken)
		}
	}
	c.Installers = append(c.Installers, rec)
	return nil
}

// Remove deletes the installer with the given token. A token that is not
// present is a no-op, not a failure. It reports whether a record was removed.
func (c *Config) Remove(installerToken string) bool {
	for i, installer := range c.Installers {
		if installer.InstallerToken == installerToken {
			c.Installers = append(c.Installers[:i], c.Installers[i+1:]...)
			return true
		}
	}
	return false
}

// FindByPort returns the installer bound to port, or nil when the port is free.
func (c *Config) FindByPort(port uint32) *Installer {
	for i := range c.Installers {
		if c.Installers[i].AppRunPort == port {
			return &c.Installers[i]
		}
	}
	return nil
}

// FindByToken returns the installer with the given token, or nil.
func (c *Config) FindByToken(installerToken string) *Installer {
	for i := range c.Installers {
		if c.Installers[i].InstallerToken == installerToken {
			return &c.Installers[i]
		}
	}
	return nil
}
