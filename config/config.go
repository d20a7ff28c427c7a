// Package config loads the run configuration from YAML with environment
// overrides and validates it before any work starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/superdistricts/plan"
	"github.com/katalvlaran/superdistricts/tally"
)

// ErrInvalid is returned for a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables that override the file.
const (
	EnvSeed        = "FRA_SEED"
	EnvMaxAttempts = "FRA_MAX_ATTEMPTS"
	EnvWorkers     = "FRA_WORKERS"
	EnvLogLevel    = "FRA_LOG_LEVEL"
	EnvOutputDir   = "FRA_OUTPUT_DIR"
)

// Config is one gluing run.
type Config struct {
	Inputs            Inputs  `yaml:"inputs"`
	Outputs           Outputs `yaml:"outputs"`
	NumDistricts      int     `yaml:"num_districts" validate:"required,gt=0"`
	TargetSizes       []int   `yaml:"target_sizes" validate:"required,min=1,dive,gt=0"`
	Seed              int64   `yaml:"seed"`
	MaxAttempts       int     `yaml:"max_attempts" validate:"gt=0"`
	Workers           int     `yaml:"workers" validate:"gte=1"`
	StrictFeasibility bool    `yaml:"strict_feasibility"`
	Rounding          string  `yaml:"rounding" validate:"oneof=half-even half-up"`
	Metrics           bool    `yaml:"metrics"`
	Log               Log     `yaml:"log"`
}

// Inputs names the three input files.
type Inputs struct {
	Units      string `yaml:"units" validate:"required"`
	Adjacency  string `yaml:"adjacency" validate:"required"`
	Assignment string `yaml:"assignment" validate:"required"`
}

// Outputs names the output directory.
type Outputs struct {
	Dir string `yaml:"dir" validate:"required"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the values used for keys the file omits: the NC plan of
// 14 districts glued into 5+5+4, seed 42, 100 attempts.
func Default() *Config {
	return &Config{
		Outputs:      Outputs{Dir: "outputs"},
		NumDistricts: 14,
		TargetSizes:  []int{5, 5, 4},
		Seed:         42,
		MaxAttempts:  100,
		Workers:      1,
		Rounding:     tally.RoundHalfEven.String(),
		Log:          Log{Level: "info"},
	}
}

// Load reads path over Default, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default, applies environment overrides and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from FRA_* variables that are set and non-empty.
func (c *Config) ApplyEnv() error {
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvMaxAttempts); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxAttempts, v, err)
		}
		c.MaxAttempts = n
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvOutputDir); ok {
		c.Outputs.Dir = v
	}

	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

var validate = validator.New()

// Validate checks struct tags, then the cross-field rule that the targets
// sum to NumDistricts (plan.ErrInvalidConfiguration).
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}

	return plan.TargetSizes(c.TargetSizes).Validate(c.NumDistricts)
}

// RoundingMode returns the parsed rounding rule.
func (c *Config) RoundingMode() tally.Rounding {
	r, _ := tally.ParseRounding(c.Rounding)
	return r
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be %s %s", field, e.Tag(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
