package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fcasibu/minigit/pkg/object"
)

// Config stores repository-local settings.
type Config struct {
	User UserConfig `toml:"user"`
}

// UserConfig is the commit identity recorded in author/committer lines.
type UserConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Fallback identity for repositories with no config, so commit-tree works
// out of the box and stays deterministic.
const (
	defaultUserName  = "minigit"
	defaultUserEmail = "minigit@localhost"
)

func (r *Repo) configPath() string {
	return filepath.Join(r.RepoDir, "config.toml")
}

// ReadConfig reads .minigit/config.toml. A missing file yields defaults.
func (r *Repo) ReadConfig() (*Config, error) {
	cfg := &Config{
		User: UserConfig{Name: defaultUserName, Email: defaultUserEmail},
	}

	data, err := os.ReadFile(r.configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", r.configPath(), err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", r.configPath(), err)
	}
	if cfg.User.Name == "" {
		cfg.User.Name = defaultUserName
	}
	if cfg.User.Email == "" {
		cfg.User.Email = defaultUserEmail
	}
	return cfg, nil
}

// Identity returns the configured commit identity.
func (r *Repo) Identity() (object.Identity, error) {
	cfg, err := r.ReadConfig()
	if err != nil {
		return object.Identity{}, err
	}
	return object.Identity{Name: cfg.User.Name, Email: cfg.User.Email}, nil
}
