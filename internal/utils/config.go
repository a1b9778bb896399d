package utils

import (
	"errors"
	"os"
	"sync"

	"github.com/vskvj3/linkedlist/internal/datastructures"
	"gopkg.in/yaml.v3"
)

// Config struct holds application configuration
type Config struct {
	ListKind    string   `yaml:"list_kind"`
	Language    string   `yaml:"language"`
	LogFile     string   `yaml:"log_file"`
	Debug       bool     `yaml:"debug"`
	HistorySize int      `yaml:"history_size"`
	Scenario    []string `yaml:"scenario"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
	configErr      error
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfigFromFile(filename)
	})
	return configInstance, configErr
}

// loadConfigFromFile reads and parses the config file.
// A missing file yields the defaults.
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.ListKind != "" {
		if _, err := datastructures.ParseKind(config.ListKind); err != nil {
			return nil, err
		}
	}
	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.ListKind == "" {
		config.ListKind = string(datastructures.Singly)
	}
	if config.Language == "" {
		config.Language = "en"
	}
	if config.HistorySize <= 0 {
		config.HistorySize = 16
	}
}
