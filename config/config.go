package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted in configuration.
const (
	BackendGitCLI = "gitcli"
	BackendGoGit  = "gogit"
)

// Config is the root configuration structure.
type Config struct {
	// RepoDir is the package directory to snapshot. The --dir flag takes
	// precedence when given.
	RepoDir string `json:"repoDir"`

	// AutoCommit controls whether recorded mutations produce commits at
	// all. Default: true.
	AutoCommit bool `json:"autoCommit"`

	// Backend selects the version-control implementation
	// (gitcli or gogit).
	Backend string `json:"backend"`

	Filters FilterConfig `json:"filters"`
}

// FilterConfig holds glob patterns applied when displaying pending changes.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		RepoDir:    "",
		AutoCommit: true,
		Backend:    BackendGitCLI,
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// Validate checks field values that cannot be caught by JSON decoding.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGitCLI, BackendGoGit:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, BackendGitCLI, BackendGoGit)
	}
}

// LoadConfig loads configuration from a file, merging with defaults. When
// path is empty it searches the working directory and the home directory for
// .pkgsnap.json; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".pkgsnap.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".pkgsnap.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
