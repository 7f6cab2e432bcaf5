package config

import (
	"os"
	"path"

	apperrors "cachebox/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen   = ":8080"
	DefaultCapacity = 1024
	DefaultLogLevel = "info"

	// ConfigFileName is the file NewConfig looks for inside its dir argument.
	ConfigFileName = "cachebox.yaml"
)

// Config carries the runtime settings for the cache service.
type Config struct {
	Listen   string `yaml:"listen"`
	Capacity int    `yaml:"capacity"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Option overrides a single config field.
type Option func(*Config)

// WithCapacity overrides the cache capacity.
func WithCapacity(capacity int) Option {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithListen overrides the listen address.
func WithListen(addr string) Option {
	return func(c *Config) {
		c.Listen = addr
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func defaults() *Config {
	return &Config{
		Listen:   DefaultListen,
		Capacity: DefaultCapacity,
		LogLevel: DefaultLogLevel,
	}
}

// NewConfig builds a config for dir. If dir contains cachebox.yaml it is
// loaded first, then options are applied on top, then the result is
// validated.
func NewConfig(dir string, opts ...Option) (*Config, error) {
	conf := defaults()

	filePath := path.Join(dir, ConfigFileName)
	if _, err := os.Stat(filePath); err == nil {
		loaded, err := FromFile(filePath)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}

	for _, opt := range opts {
		opt(conf)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// FromFile loads a config from a yaml file. Fields missing from the file keep
// their defaults; the result is not validated.
func FromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	conf := defaults()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate rejects configurations the cache cannot be built from. A capacity
// below one is an error, never a fallback.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return apperrors.ErrInvalidCapacity
	}
	return nil
}
