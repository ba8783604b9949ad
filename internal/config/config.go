// Package config resolves client settings from the environment and an
// optional YAML file. Precedence: environment > config file > defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when no API endpoint is configured.
const DefaultAPIURL = "http://localhost:8000"

// Config holds client configuration
type Config struct {
	// APIURL is the base URL of the Warfront API
	APIURL string `yaml:"api_url"`

	// DataDir is where credentials and local state are stored
	DataDir string `yaml:"data_dir"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`
}

// Load resolves the client configuration. A .env file in the working
// directory is honored when present; a missing file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:   DefaultAPIURL,
		DataDir:  defaultDataDir(),
		LogLevel: "info",
	}

	// The data dir env var decides where the config file itself lives, so
	// it must be resolved before the file is read.
	if v := os.Getenv("WARFRONT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if err := cfg.applyFile(filepath.Join(cfg.DataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	return cfg, nil
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".warfront")
	}
	return ".warfront"
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WARFRONT_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("WARFRONT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("WARFRONT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WARFRONT_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}
