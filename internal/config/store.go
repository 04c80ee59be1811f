package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/deploy-agent/internal/fsutil"
	"github.com/conn-castle/deploy-agent/internal/hostid"
	"github.com/conn-castle/deploy-agent/internal/messages"
)

// DeriveServerIdentity is a seam for tests.
var DeriveServerIdentity = hostid.ServerIdentity

// Store binds the installer store to its file on disk.
type Store struct {
	// Path is the location of config.toml.
	Path string
}

// NewStore returns a store persisted at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads config.toml. An absent file is not an error: a fresh Config is
// synthesized with a newly derived server identity and an empty installer
// sequence, and nothing is written to disk until Save is called.
func (s *Store) Load() (*Config, error) {
	if s.Path == "" {
		return nil, errors.New(messages.ConfigPathRequired)
	}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		token, derr := DeriveServerIdentity()
		if derr != nil {
			return nil, derr
		}
		return &Config{ServerIdentity: token}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, s.Path, err)
	}
	return Parse(data, s.Path)
}

// Parse decodes config TOML data with strict unknown-field rejection.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigInvalidFmt, ErrMalformed, source, err)
	}
	return &cfg, nil
}

// Save serializes cfg and overwrites config.toml in one shot. The write goes
// through a sibling temp file plus rename, so a crash mid-write never leaves
// a torn config behind; the last Save wins.
func (s *Store) Save(cfg *Config) error {
	if s.Path == "" {
		return errors.New(messages.ConfigPathRequired)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(messages.ConfigWriteFmt, s.Path, err)
	}
	if err := fsutil.WriteFileAtomic(s.Path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFmt, s.Path, err)
	}
	return nil
}
