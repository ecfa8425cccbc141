package config

import (
	"fmt"
	"os"
	"strconv"

	"erpgen/internal/generator"
	"erpgen/internal/logger"
)

type Config struct {
	// Dataset shape
	Companies         int
	BatchSize         int
	InvoicesPerPeriod int
	YearsBack         int

	// Sampling and amounts
	ActivePct  float64
	AmountLow  float64
	AmountHigh float64
	SplitPct   float64

	// Execution
	Workers   int
	Seed      uint64
	OutputDir string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment, falling back to the
// standard generation defaults for anything unset.
func Load() (*Config, error) {
	defaults := generator.DefaultConfig()

	config := &Config{
		Companies:         getEnvInt("ERPGEN_COMPANIES", defaults.Companies),
		BatchSize:         getEnvInt("ERPGEN_BATCH_SIZE", defaults.BatchSize),
		InvoicesPerPeriod: getEnvInt("ERPGEN_INVOICES_PER_PERIOD", defaults.InvoicesPerPeriod),
		YearsBack:         getEnvInt("ERPGEN_YEARS_BACK", defaults.YearsBack),
		ActivePct:         getEnvFloat("ERPGEN_ACTIVE_PCT", defaults.ActivePct),
		AmountLow:         getEnvFloat("ERPGEN_AMOUNT_LOW", defaults.AmountLow),
		AmountHigh:        getEnvFloat("ERPGEN_AMOUNT_HIGH", defaults.AmountHigh),
		SplitPct:          getEnvFloat("ERPGEN_SPLIT_PCT", defaults.SplitPct),
		Workers:           getEnvInt("ERPGEN_WORKERS", defaults.Workers),
		Seed:              getEnvUint("ERPGEN_SEED", defaults.Seed),
		OutputDir:         getEnv("ERPGEN_OUTPUT_DIR", "data"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:         getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("ERPGEN_OUTPUT_DIR cannot be empty")
	}
	return c.GeneratorConfig().Validate()
}

// GeneratorConfig returns the generation pipeline configuration.
func (c *Config) GeneratorConfig() generator.Config {
	return generator.Config{
		Companies:         c.Companies,
		BatchSize:         c.BatchSize,
		InvoicesPerPeriod: c.InvoicesPerPeriod,
		ActivePct:         c.ActivePct,
		AmountLow:         c.AmountLow,
		AmountHigh:        c.AmountHigh,
		SplitPct:          c.SplitPct,
		Workers:           c.Workers,
		YearsBack:         c.YearsBack,
		Seed:              c.Seed,
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseUint(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
