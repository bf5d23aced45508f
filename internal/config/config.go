package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"market-intel/internal/forecast"
	"market-intel/internal/logging"
	"market-intel/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load a scenario from a separate YAML (e.g. scenarios/*.yaml).
	// Sections set inline under scenario override the file's.
	ScenarioFile string   `yaml:"scenario_file"`
	Scenario     Scenario `yaml:"scenario"`

	Server     ServerConfig     `yaml:"server"`
	Log        logging.Config   `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
	Forecast   forecast.Options `yaml:"forecast"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type ServerConfig struct {
	Port           int      `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
	Env            string   `yaml:"env" default:"development" validate:"oneof=development production test"`
	CORSOrigins    []string `yaml:"cors_origins" default:"[\"*\"]"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps" default:"10" validate:"gt=0"`
	RateLimitBurst int      `yaml:"rate_limit_burst" default:"20" validate:"gte=1"`
}

type StoreConfig struct {
	Backend   string        `yaml:"backend" default:"memory" validate:"oneof=memory redis"`
	RedisAddr string        `yaml:"redis_addr" default:"localhost:6379"`
	TTL       time.Duration `yaml:"ttl" default:"24h" validate:"gt=0"`
}

type SimulationConfig struct {
	// Seed 0 draws a fresh seed per run.
	Seed       uint64  `yaml:"seed"`
	MarketSize float64 `yaml:"market_size" default:"10000" validate:"gt=0"`
	Strategy   string  `yaml:"strategy" default:"moderate"`
}

// Default returns a config with every default applied and no scenario.
func Default() *Config {
	var c Config
	_ = defaults.Set(&c)
	return &c
}

// LoadDotEnv loads .env files into the process environment. Missing
// files are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads path (an empty path means defaults only), applies defaults
// and environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		loaded, err := LoadUnchecked(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	c.inheritSimulationDefaults()
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer the config file's directory, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

// ApplyEnv overrides fields from API_PORT, API_ENV, LOG_LEVEL, LOG_FORMAT,
// STORE_BACKEND and REDIS_ADDR. Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if val := os.Getenv("API_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Server.Port = port
		}
	}
	if val := os.Getenv("API_ENV"); val != "" {
		c.Server.Env = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("STORE_BACKEND"); val != "" {
		c.Store.Backend = val
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Store.RedisAddr = val
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := model.Validate(c); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	if !c.Forecast.Method.Valid() {
		return fmt.Errorf("config invalid: %w", &model.UnsupportedMethodError{Method: string(c.Forecast.Method)})
	}
	return c.Scenario.validate()
}

// inheritSimulationDefaults fills unset scenario fields from the
// simulation section.
func (c *Config) inheritSimulationDefaults() {
	s := &c.Scenario
	if s.Seed == 0 {
		s.Seed = c.Simulation.Seed
	}
	if s.PriceWar != nil && s.PriceWar.Strategy == "" {
		s.PriceWar.Strategy = c.Simulation.Strategy
	}
	if s.Launch != nil && s.Launch.MarketSize == 0 {
		s.Launch.MarketSize = c.Simulation.MarketSize
	}
}
