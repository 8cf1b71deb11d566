package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults for every command. Flags given on the
// command line take precedence.
type Config struct {
	Kind        string               `yaml:"kind"`
	Order       string               `yaml:"order"`
	Size        int                  `yaml:"size"`
	Seed        int64                `yaml:"seed"`
	Workers     int                  `yaml:"workers"`
	MaxAttempts int                  `yaml:"max_attempts"`
	Logging     logger.Configuration `yaml:"logging"`
}

// the logger refuses anything smaller
const (
	minLogSize  = 20000
	minLogCount = 10
)

var defaultConfig = Config{
	Kind:        kindBinary,
	Order:       "in",
	Size:        10,
	MaxAttempts: 100000,
	Logging: logger.Configuration{
		Directory: os.TempDir(),
		File:      "forest.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	},
}

// LoadConfig reads the YAML file at path over the defaults.
// An empty path or a missing file gives the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	config.Logging.Levels = map[string]string{}
	for k, v := range defaultConfig.Logging.Levels {
		config.Logging.Levels[k] = v
	}

	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if err := checkKind(c.Kind); err != nil {
		return err
	}
	if _, err := parseOrder(c.Order); err != nil {
		return err
	}
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Size)
	}
	if c.Logging.Directory == "" || c.Logging.File == "" {
		return errors.New("logging directory and file must be set")
	}
	if filepath.Base(c.Logging.File) != c.Logging.File {
		return fmt.Errorf("logging file %q must not be a path", c.Logging.File)
	}
	if c.Logging.Size < minLogSize {
		return fmt.Errorf("logging size must be at least %d, got %d", minLogSize, c.Logging.Size)
	}
	if c.Logging.Count < minLogCount {
		return fmt.Errorf("logging count must be at least %d, got %d", minLogCount, c.Logging.Count)
	}
	return nil
}
