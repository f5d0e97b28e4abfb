package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stubdoc/internal/helptext"
)

type Config struct {
	Paths struct {
		Dumps    string `yaml:"dumps"`    // pre-captured help dumps, optional
		Docs     string `yaml:"docs"`     // documentation database directory
		Stubs    string `yaml:"stubs"`    // official .pyi stubs
		Enhanced string `yaml:"enhanced"` // enhanced stub output
		Markdown string `yaml:"markdown"` // rendered markdown pages
		SQLite   string `yaml:"sqlite"`   // sqlite mirror, optional
	} `yaml:"paths"`
	Pipeline struct {
		Workers        int `yaml:"workers"`
		UnitTimeoutSec int `yaml:"unit_timeout_sec"`
	} `yaml:"pipeline"`
	Cleaner struct {
		MaxLen         int `yaml:"max_len"`
		TruncateAt     int `yaml:"truncate_at"`
		HeaderColonLen int `yaml:"header_colon_len"`
	} `yaml:"cleaner"`
	HelpCommand []string `yaml:"help_command"` // overrides the embedded reflection script
	AI          struct {
		Model         string `yaml:"model"`
		APIKey        string `yaml:"api_key"`
		RateLimit     int    `yaml:"rate_limit"` // requests per minute
		MaxConcurrent int    `yaml:"max_concurrent"`
	} `yaml:"ai"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Paths.Docs = "output/docs"
	cfg.Paths.Stubs = "output/stubs"
	cfg.Paths.Enhanced = "output/enhanced"
	cfg.Paths.Markdown = "output/markdown"
	cfg.Pipeline.Workers = 12
	cfg.Pipeline.UnitTimeoutSec = 300
	cfg.Cleaner.MaxLen = 400
	cfg.Cleaner.TruncateAt = 300
	cfg.Cleaner.HeaderColonLen = 20
	cfg.AI.Model = "gemini-2.0-flash"
	cfg.AI.RateLimit = 60
	cfg.AI.MaxConcurrent = 10
	return cfg
}

// LoadConfig builds the effective configuration: defaults, then the YAML
// file if present, then environment overrides.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := DefaultConfig()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("STUBDOC_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("STUBDOC_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if workers := os.Getenv("STUBDOC_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			cfg.Pipeline.Workers = n
		}
	}

	return cfg, nil
}

// HelpCleaner builds the text cleaner from the configured thresholds.
func (c *Config) HelpCleaner() helptext.Cleaner {
	return helptext.Cleaner{
		MaxLen:         c.Cleaner.MaxLen,
		TruncateAt:     c.Cleaner.TruncateAt,
		HeaderColonLen: c.Cleaner.HeaderColonLen,
	}
}

// UnitTimeout is the per-module deadline for batch work.
func (c *Config) UnitTimeout() time.Duration {
	return time.Duration(c.Pipeline.UnitTimeoutSec) * time.Second
}
