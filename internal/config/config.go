package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// BackendFile persists sessions to a local JSON snapshot file
	BackendFile = "file"
	// BackendPostgres persists sessions to a single keyed PostgreSQL row
	BackendPostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	StorageBackend string `yaml:"storageBackend" validate:"required,oneof=file postgres"`
	StorePath      string `yaml:"storePath,omitempty" validate:"required_if=StorageBackend file"`
	PostgresURL    string `yaml:"postgresURL,omitempty" validate:"required_if=StorageBackend postgres"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the out-of-the-box configuration: a JSON snapshot file
// under the user's home directory.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		StorageBackend: BackendFile,
		StorePath:      filepath.Join(home, ".daybalancer", "sessions.json"),
	}
}

// Load loads and validates the configuration from daybalancer_config.yaml,
// looking in the current directory first and then the user's home
// directory. When no config file exists the defaults are used.
func Load() (*Config, error) {
	configPath, found, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	if !found {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for daybalancer_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, bool, error) {
	configFileName := "daybalancer_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, true, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, true, nil
	}

	return "", false, nil
}
