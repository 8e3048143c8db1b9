package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type ServerConfig struct {
	Address string `toml:"address" yaml:"address"`
}

type Config struct {
	Environment   Environment  `toml:"environment" yaml:"environment"`
	DataDirectory string       `toml:"data_directory" yaml:"data_directory"`
	LogDirectory  string       `toml:"log_directory" yaml:"log_directory"`
	Server        ServerConfig `toml:"server" yaml:"server"`
}

func defaultConfig(configDirectory string) Config {
	return Config{
		Environment:   EnvironmentProduction,
		DataDirectory: configDirectory,
		LogDirectory:  filepath.Join(configDirectory, "logs"),
		Server: ServerConfig{
			Address: "localhost:8080",
		},
	}
}

func defaultConfigDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dirtree"), nil
}

// ReadConfig reads a toml or yaml file at configPath on top of the default config.
// If configPath is empty, default.toml under ~/.config/dirtree is read if it exists.
func ReadConfig(configPath string) (Config, error) {
	var conf Config

	if configPath == "" {
		configDirectory, err := defaultConfigDirectory()
		if err != nil {
			return conf, fmt.Errorf("defaultConfigDirectory: %w", err)
		}
		if err = os.MkdirAll(configDirectory, 0755); err != nil {
			return conf, fmt.Errorf("os.MkdirAll: %w", err)
		}

		configPath = filepath.Join(configDirectory, "default.toml")
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(configDirectory), nil
		}
	}

	conf = defaultConfig(filepath.Dir(configPath))
	file, err := os.Open(configPath)
	if err != nil {
		return conf, fmt.Errorf("os.Open: %w", err)
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return conf, fmt.Errorf("io.ReadAll: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, &conf); err != nil {
			return conf, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	default:
		if _, err := toml.Decode(string(contents), &conf); err != nil {
			return conf, fmt.Errorf("toml.Decode: %w", err)
		}
	}

	if conf.Environment != EnvironmentDevelopment && conf.Environment != EnvironmentProduction {
		return conf, fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, conf.Environment)
	}
	return conf, nil
}
