package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file-backed settings. Flags override these values.
type Config struct {
	// Database is the progress database path.
	Database string `yaml:"database"`

	// Catalog is the generated catalog artifact path.
	Catalog string `yaml:"catalog"`
}

// DefaultConfigPath returns the conventional config location,
// ~/.config/arcquest/config.yaml on Linux.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "arcquest", "config.yaml"), nil
}

// LoadConfig reads the YAML config at path, or the default location when
// path is empty. A missing file yields the built-in defaults; an
// unreadable or malformed file is an error, because the user asked for
// specific settings and silently ignoring them would be worse.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		def, err := DefaultConfigPath()
		if err != nil {
			return defaultConfig(), nil
		}
		path = def
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() Config {
	cfg := Config{
		Database: "arcquest.db",
		Catalog:  "catalog.json",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.Database = filepath.Join(dir, "arcquest", "progress.db")
	}
	return cfg
}
