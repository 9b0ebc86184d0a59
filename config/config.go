// Package config loads the settings of the adv command.
//
// Settings come, in increasing priority, from built-in defaults, an optional
// YAML file, and ADV_* environment variables. A .env file in the working
// directory is loaded into the environment first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/etnz/advisor"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "adv.yaml"

// Config holds all application configuration.
type Config struct {
	Currency string `yaml:"currency"`
	Profile  string `yaml:"profile"` // path to the profile YAML file

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`

	Simulation struct {
		MinPaths     int    `yaml:"min_paths"`
		MaxPaths     int    `yaml:"max_paths"`
		DisplayPaths int    `yaml:"display_paths"`
		Seed         uint64 `yaml:"seed"` // 0 draws a new seed every run
	} `yaml:"simulation"`

	Market struct {
		RequestsPerSecond float64       `yaml:"requests_per_second"`
		BreakerFailures   uint32        `yaml:"breaker_failures"`
		BreakerTimeout    time.Duration `yaml:"breaker_timeout"`
	} `yaml:"market"`

	FX struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"fx"`

	Assistant struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"assistant"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies the environment variable overrides.
func (c *Config) applyEnv() error {
	if v := os.Getenv("ADV_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("ADV_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := os.Getenv("ADV_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ADV_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ADV_LOG_PRETTY: %w", err)
		}
		c.Log.Pretty = b
	}
	if v := os.Getenv("ADV_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ADV_SEED: %w", err)
		}
		c.Simulation.Seed = seed
	}
	if v := os.Getenv("ADV_FX_URL"); v != "" {
		c.FX.BaseURL = v
	}
	if v := os.Getenv("ADV_ASSISTANT_MODEL"); v != "" {
		c.Assistant.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("ADV_ASSISTANT_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Simulation.MinPaths == 0 {
		c.Simulation.MinPaths = advisor.DefaultPathLimits.Min
	}
	if c.Simulation.MaxPaths == 0 {
		c.Simulation.MaxPaths = advisor.DefaultPathLimits.Max
	}
	if c.Simulation.DisplayPaths == 0 {
		c.Simulation.DisplayPaths = advisor.DefaultDisplayPaths
	}
	if c.Market.RequestsPerSecond == 0 {
		c.Market.RequestsPerSecond = 2
	}
	if c.Market.BreakerFailures == 0 {
		c.Market.BreakerFailures = 3
	}
	if c.Market.BreakerTimeout == 0 {
		c.Market.BreakerTimeout = 30 * time.Second
	}
	if c.FX.BaseURL == "" {
		c.FX.BaseURL = "https://api.frankfurter.app"
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gemini-2.5-flash"
	}
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Currency != "" && !advisor.IsCurrency(c.Currency) {
		return fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	if c.Simulation.MinPaths < 1 || c.Simulation.MaxPaths < c.Simulation.MinPaths {
		return fmt.Errorf("simulation paths range %d..%d is empty", c.Simulation.MinPaths, c.Simulation.MaxPaths)
	}
	if c.Simulation.DisplayPaths < 0 {
		return fmt.Errorf("simulation.display_paths must not be negative")
	}
	if c.Market.RequestsPerSecond < 0 {
		return fmt.Errorf("market.requests_per_second must be positive")
	}
	return nil
}

// PathLimits returns the bounds of the Monte Carlo path count.
func (c *Config) PathLimits() advisor.PathLimits {
	return advisor.PathLimits{Min: c.Simulation.MinPaths, Max: c.Simulation.MaxPaths}
}
