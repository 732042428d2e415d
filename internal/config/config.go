// Package config loads server settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/sprite-ai/tghtml/internal/logging"
)

// ErrInvalidPort is returned for ports outside 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds the settings for the HTTP service.
type Config struct {
	Addr                string `yaml:"addr"`
	Port                int    `yaml:"port"`
	LogLevel            string `yaml:"log_level"`
	LogFormat           string `yaml:"log_format"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	MaxBodyBytes        int64  `yaml:"max_body_bytes"`
}

// Default returns the built-in settings. Port 10000 matches what the
// hosting platform expects when PORT is unset.
func Default() Config {
	return Config{
		Addr:                "0.0.0.0",
		Port:                10000,
		LogLevel:            "info",
		LogFormat:           "text",
		ReadTimeoutSeconds:  30,
		WriteTimeoutSeconds: 60,
		MaxBodyBytes:        1 << 20,
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// environment overrides read through getenv. A nil getenv uses os.Getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT %q: %w", v, ErrInvalidPort)
		}
		c.Port = port
	}
	if v := getenv("TGHTML_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("TGHTML_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("TGHTML_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d: %w", c.Port, ErrInvalidPort)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// ListenAddr returns the host:port to listen on.
func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Addr, strconv.Itoa(c.Port))
}

// ReadTimeout returns the server read timeout.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}
