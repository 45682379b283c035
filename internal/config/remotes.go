package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// RemotesConfig holds all named server profiles and tracks which one is
// active. The CLI's data commands go through the active remote's HTTP API
// when one is set, and straight at the database otherwise.
type RemotesConfig struct {
	Active  string            `toml:"active"`
	Remotes map[string]Remote `toml:"remotes"`
}

// Remote is a named server profile.
type Remote struct {
	URL   string `toml:"url"`
	Token string `toml:"token,omitempty"`
}

// ActiveRemote returns the profile the config points at, if any.
func (c RemotesConfig) ActiveRemote() (Remote, bool) {
	if c.Active == "" {
		return Remote{}, false
	}
	r, ok := c.Remotes[c.Active]
	return r, ok
}

// DefaultRemotesPath resolves the remotes file location, creating the
// config directory if needed.
func DefaultRemotesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "brewdex")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "remotes.toml"), nil
}

// LoadRemotes reads the remotes file; a missing file is an empty config.
func LoadRemotes(path string) (RemotesConfig, error) {
	var cfg RemotesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return RemotesConfig{Remotes: map[string]Remote{}}, nil
		}
		return RemotesConfig{}, err
	}
	if cfg.Remotes == nil {
		cfg.Remotes = map[string]Remote{}
	}
	return cfg, nil
}

// SaveRemotes writes the remotes file with owner-only permissions; it may
// hold tokens.
func SaveRemotes(path string, cfg RemotesConfig) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
