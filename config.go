package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func init() {
	godotenv.Load()
}

type Config struct {
	// Env selects the log encoding: "production" logs JSON, anything else
	// logs human readable lines.
	Env string `yaml:"env" env:"NIGHTPAY_ENV" validate:"oneof=development production"`

	Logger LoggerConfig `yaml:"logger"`
	Hours  HoursConfig  `yaml:"hours"`
	Rates  RatesConfig  `yaml:"rates"`
}

type LoggerConfig struct {
	Level string `yaml:"level" env:"NIGHTPAY_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// HoursConfig holds the accepted range of each raw hour. Midnight may be
// written as 24 for bed time, so ranges go up to 24.
type HoursConfig struct {
	StartMin int `yaml:"start_min" env:"NIGHTPAY_START_MIN" validate:"min=0,max=24"`
	StartMax int `yaml:"start_max" env:"NIGHTPAY_START_MAX" validate:"min=0,max=24,gtefield=StartMin"`
	BedMin   int `yaml:"bed_min" env:"NIGHTPAY_BED_MIN" validate:"min=0,max=24"`
	BedMax   int `yaml:"bed_max" env:"NIGHTPAY_BED_MAX" validate:"min=0,max=24,gtefield=BedMin"`
	EndMin   int `yaml:"end_min" env:"NIGHTPAY_END_MIN" validate:"min=0,max=24"`
	EndMax   int `yaml:"end_max" env:"NIGHTPAY_END_MAX" validate:"min=0,max=24,gtefield=EndMin"`
}

// RatesConfig keeps the rates as decimal strings so they reach
// decimal.Decimal without going through float64.
type RatesConfig struct {
	BeforeBed   string `yaml:"before_bed" env:"NIGHTPAY_RATE_BEFORE_BED" validate:"numeric"`
	AfterBed    string `yaml:"after_bed" env:"NIGHTPAY_RATE_AFTER_BED" validate:"numeric"`
	AfterCutoff string `yaml:"after_cutoff" env:"NIGHTPAY_RATE_AFTER_CUTOFF" validate:"numeric"`

	// CutoffHour ends the after-bed band. It is a clock hour, not an offset.
	CutoffHour int `yaml:"cutoff_hour" env:"NIGHTPAY_CUTOFF_HOUR" validate:"min=0,max=23"`
}

// DefaultConfig is the configuration used when nothing is set. Defaults are
// filled in before reading so an explicit 0 in a file or variable is kept.
func DefaultConfig() Config {
	return Config{
		Env:    "development",
		Logger: LoggerConfig{Level: "warn"},
		Hours: HoursConfig{
			StartMin: DefaultHourRules.Start.Min,
			StartMax: DefaultHourRules.Start.Max,
			BedMin:   DefaultHourRules.Bed.Min,
			BedMax:   DefaultHourRules.Bed.Max,
			EndMin:   DefaultHourRules.End.Min,
			EndMax:   DefaultHourRules.End.Max,
		},
		Rates: RatesConfig{
			BeforeBed:   DefaultRates.BeforeBed.String(),
			AfterBed:    DefaultRates.AfterBed.String(),
			AfterCutoff: DefaultRates.AfterCutoff.String(),
			CutoffHour:  DefaultCutoffHour,
		},
	}
}

// LoadConfig reads the YAML file at path when given, environment variables
// otherwise. Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rates := []struct {
		name  string
		value string
	}{
		{name: "before_bed", value: cfg.Rates.BeforeBed},
		{name: "after_bed", value: cfg.Rates.AfterBed},
		{name: "after_cutoff", value: cfg.Rates.AfterCutoff},
	}
	for _, rate := range rates {
		d, err := decimal.NewFromString(rate.value)
		if err != nil {
			return nil, fmt.Errorf("invalid config: rate %s: %w", rate.name, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("invalid config: rate %s must not be negative", rate.name)
		}
	}

	return &cfg, nil
}

func (c *Config) Rules() HourRules {
	return HourRules{
		Start: HourRange{Min: c.Hours.StartMin, Max: c.Hours.StartMax},
		Bed:   HourRange{Min: c.Hours.BedMin, Max: c.Hours.BedMax},
		End:   HourRange{Min: c.Hours.EndMin, Max: c.Hours.EndMax},
	}
}

// PayRates expects rates already checked by LoadConfig.
func (c *Config) PayRates() Rates {
	return Rates{
		BeforeBed:   decimal.RequireFromString(c.Rates.BeforeBed),
		AfterBed:    decimal.RequireFromString(c.Rates.AfterBed),
		AfterCutoff: decimal.RequireFromString(c.Rates.AfterCutoff),
	}
}
