// Package config loads the configuration of the conformance runner and the tssz command.
//
// Configuration is read from a single YAML file, on top of the defaults.
// Command line flags may override individual values after loading.
package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/protolambda/tssz/htr"
)

// Config configures a conformance run.
type Config struct {
	// TestsDir is the root of the ssz_generic test vectors.
	TestsDir string `yaml:"tests_dir"`

	// Handlers restricts the run to these handlers. Empty runs every registered handler.
	Handlers []string `yaml:"handlers"`

	// Hasher is the hash function to merkleize with: "sha256" or "blake3".
	// Default: sha256
	Hasher string `yaml:"hasher"`

	// HashCacheSize is the amount of pair hashes to memoize. 0 disables the cache.
	HashCacheSize int `yaml:"hash_cache_size"`

	// FailFast stops the run at the first failing case.
	FailFast bool `yaml:"fail_fast"`

	// LogLevel is the minimum zap level to log: debug, info, warn or error.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TestsDir: "tests/ssz_generic",
		Hasher:   "sha256",
		LogLevel: "info",
	}
}

// Load reads the configuration file at path, on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TestsDir == "" {
		return errors.New("tests_dir is required")
	}
	if _, err := htr.ByName(c.Hasher); err != nil {
		return errors.Wrap(err, "invalid hasher")
	}
	if c.HashCacheSize < 0 {
		return errors.Errorf("hash_cache_size must not be negative, got %d", c.HashCacheSize)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	return nil
}

// Hasher returns the configured hasher, with a pair-hash cache if one is configured.
func (c *Config) Hasher() (*htr.Hasher, error) {
	var fn htr.HashFn
	switch c.Hasher {
	case "", "sha256":
		fn = htr.SHA256Sum
	case "blake3":
		fn = htr.BLAKE3Sum
	default:
		return nil, errors.Errorf("unknown hasher %q", c.Hasher)
	}
	if c.HashCacheSize == 0 {
		return htr.ByName(c.Hasher)
	}
	h, err := htr.NewCachedHasher(fn, c.HashCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create hash cache")
	}
	return h, nil
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log_level")
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
