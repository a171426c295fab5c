// Package config resolves solver settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ribbit/core/internal/dictionary"
	"github.com/ribbit/core/internal/parser"
	"github.com/ribbit/core/internal/search"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Dictionary  string `yaml:"dictionary"`
	DictSize    int    `yaml:"dict_size"`
	MinLength   int    `yaml:"min_length"`
	MaxSteps    int    `yaml:"max_steps"`
	AutoEdges   string `yaml:"auto_edges"`
	MetricsFile string `yaml:"metrics_file"`
}

func Default() Config {
	return Config{
		Dictionary: dictionary.DefaultPath,
		DictSize:   parser.DefaultWordLimit,
		MinLength:  search.DefaultMinLength,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, raw)
	}
	return n, nil
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then the RIBBIT_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	var err error

	c.Dictionary = getEnv("RIBBIT_DICTIONARY", c.Dictionary)
	c.AutoEdges = getEnv("RIBBIT_AUTO_EDGES", c.AutoEdges)
	c.MetricsFile = getEnv("RIBBIT_METRICS_FILE", c.MetricsFile)

	if c.DictSize, err = getEnvInt("RIBBIT_DICT_SIZE", c.DictSize); err != nil {
		return err
	}
	if c.MinLength, err = getEnvInt("RIBBIT_MIN_LENGTH", c.MinLength); err != nil {
		return err
	}
	if c.MaxSteps, err = getEnvInt("RIBBIT_MAX_STEPS", c.MaxSteps); err != nil {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("%w: dictionary path is empty", ErrInvalidConfig)
	}
	if c.DictSize < 1 {
		return fmt.Errorf("%w: dict_size must be positive, got %d", ErrInvalidConfig, c.DictSize)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min_length must be positive, got %d", ErrInvalidConfig, c.MinLength)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must not be negative, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if c.AutoEdges != "" {
		if _, err := parser.ParseConnectivity(c.AutoEdges); err != nil {
			return fmt.Errorf("%w: auto_edges: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
