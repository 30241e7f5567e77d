package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"TokenPulse/internal/model"
)

// Config holds all application configuration. It is built once at startup and
// passed explicitly to the components that need it; nothing reads it through
// package globals.
type Config struct {
	Birdeye struct {
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		Chain          string `yaml:"chain"`
		RequestDelayMS int    `yaml:"request_delay_ms"`
	} `yaml:"birdeye"`
	Defaults struct {
		Interval string `yaml:"interval"`
		DaysBack int    `yaml:"days_back"`
	} `yaml:"defaults"`
	Proxy string `yaml:"proxy"`
}

// LoadEnvFiles loads .env and then .env.local, with .env.local winning.
// Missing files are fine; the environment may carry everything already.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BIRDEYE_API_KEY"); v != "" {
		cfg.Birdeye.APIKey = v
	}
	if v := os.Getenv("BIRDEYE_BASE_URL"); v != "" {
		cfg.Birdeye.BaseURL = v
	}
	if v := os.Getenv("BIRDEYE_CHAIN"); v != "" {
		cfg.Birdeye.Chain = v
	}
	if v := os.Getenv("BIRDEYE_REQUEST_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Birdeye.RequestDelayMS = ms
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Birdeye.BaseURL == "" {
		cfg.Birdeye.BaseURL = "https://public-api.birdeye.so"
	}
	if cfg.Birdeye.Chain == "" {
		cfg.Birdeye.Chain = "solana"
	}
	if cfg.Defaults.Interval == "" {
		cfg.Defaults.Interval = string(model.Interval1h)
	}
	if cfg.Defaults.DaysBack == 0 {
		cfg.Defaults.DaysBack = 7
	}

	return cfg, nil
}

// RequestDelay returns the advisory pre-request delay as a duration.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.Birdeye.RequestDelayMS) * time.Millisecond
}

// Validate checks that all required fields are set. A missing API key is a
// fatal configuration error; an invalid key surfaces later as an upstream
// rejection and is treated the same way by callers.
func (c *Config) Validate() error {
	if c.Birdeye.APIKey == "" {
		return fmt.Errorf("birdeye.api_key is required (set BIRDEYE_API_KEY)")
	}
	if !model.Interval(c.Defaults.Interval).Valid() {
		return fmt.Errorf("defaults.interval %q is not a supported interval", c.Defaults.Interval)
	}
	if c.Defaults.DaysBack < 1 {
		return fmt.Errorf("defaults.days_back must be >= 1")
	}
	return nil
}
