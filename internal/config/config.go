package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file.
const (
	EnvDBPath   = "CASEBOOK_DB_PATH"
	EnvHTTPAddr = "CASEBOOK_HTTP_ADDR"
	EnvLogFile  = "CASEBOOK_LOG_FILE"
)

// Config represents the casebook configuration.
// The admin password is fixed in code and never read from here.
type Config struct {
	DBPath   string `yaml:"db_path"`
	HTTPAddr string `yaml:"http_addr"`
	LogFile  string `yaml:"log_file"` // empty disables the log file
}

// Dir returns the config directory under dir.
func Dir(dir string) string {
	return filepath.Join(dir, ".casebook")
}

// Path returns the config file path under dir.
func Path(dir string) string {
	return filepath.Join(Dir(dir), "config.yaml")
}

// Default returns the configuration used when no file or override is present.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Config{
		DBPath:   filepath.Join(Dir(home), "casebook.db"),
		HTTPAddr: ":8080",
		LogFile:  filepath.Join(Dir(home), "casebook.log"),
	}, nil
}

// Load resolves the configuration: defaults, then <dir>/.casebook/config.yaml
// if present, then a .env file in the working directory, then the environment.
func Load(dir string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal; existing variables take precedence over it.
	_ = godotenv.Load()
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok && v != "" {
		c.HTTPAddr = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
}

// Save writes config.yaml under dir.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(dir), 0755); err != nil {
		return fmt.Errorf("failed to create .casebook dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
