// Package trashconfig persists the trash placement defaults (spec.md §3's
// Options flags plus BypassTrash) across runs, so a CLI or long-lived
// caller doesn't have to repeat the same Options literal at every call
// site. Grounded on disk-peek's internal/settings: same
// load-into-package-global-under-a-mutex shape, same JSON-on-disk format,
// generalized from one disabledCategories map to the trash package's
// Options fields and repointed at an XDG-aware config path instead of
// disk-peek's fixed ~/.config/disk-peek.
package trashconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Config mirrors trash.Options plus the one setting that has no in-process
// per-call equivalent: whether to bypass the trash entirely.
type Config struct {
	UseTopDirs        bool `json:"useTopDirs"`
	CheckStickyBit    bool `json:"checkStickyBit"`
	FallbackToUserDir bool `json:"fallbackToUserDir"`
	FallbackToHomeDir bool `json:"fallbackToHomeDir"`
	BypassTrash       bool `json:"bypassTrash"`
}

// Default returns the specification's default placement behavior with
// trash bypass off.
func Default() *Config {
	return &Config{
		UseTopDirs:        true,
		CheckStickyBit:    true,
		FallbackToUserDir: true,
		FallbackToHomeDir: true,
	}
}

var (
	current *Config
	mu      sync.RWMutex
)

// path resolves $XDG_CONFIG_HOME/trashcan/config.json, defaulting to
// ~/.config/trashcan/config.json, creating the directory if needed.
func path() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "trashconfig: resolve home directory")
		}
		dir = filepath.Join(home, ".config")
	}
	configDir := filepath.Join(dir, "trashcan")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", errors.Wrap(err, "trashconfig: create config directory")
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the persisted config, falling back silently to Default when
// the file is absent or unparsable (a corrupt config shouldn't make the
// library unusable).
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	p, err := path()
	if err != nil {
		current = Default()
		return current, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			current = Default()
			return current, nil
		}
		return nil, errors.Wrap(err, "trashconfig: read config")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		current = Default()
		return current, nil
	}

	current = cfg
	return current, nil
}

// Save persists cfg and makes it the in-process current config.
func Save(cfg *Config) error {
	mu.Lock()
	defer mu.Unlock()

	p, err := path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "trashconfig: marshal config")
	}

	if err := os.WriteFile(p, data, 0o644); err != nil {
		return errors.Wrap(err, "trashconfig: write config")
	}

	current = cfg
	return nil
}

// Get returns the in-process current config, loading it from disk on
// first use.
func Get() *Config {
	mu.RLock()
	if current != nil {
		defer mu.RUnlock()
		return current
	}
	mu.RUnlock()

	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}
