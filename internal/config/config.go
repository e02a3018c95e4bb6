// Package config loads and validates the run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when a configuration value fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete run configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig names the source files, relative to DataDir unless absolute.
type InputConfig struct {
	DataDir  string `yaml:"data_dir" validate:"required"`
	Players  string `yaml:"players" validate:"required,csvname"`
	Batting  string `yaml:"batting" validate:"required,csvname"`
	Pitching string `yaml:"pitching" validate:"required,csvname"`
	Salaries string `yaml:"salaries" validate:"required,csvname"`
	Factors  string `yaml:"factors" validate:"required,csvname"`
}

// OutputConfig controls where and what the run writes.
type OutputConfig struct {
	Dir      string `yaml:"dir" validate:"required"`
	Workbook bool   `yaml:"workbook"`
	Metrics  bool   `yaml:"metrics"`
}

// AnalysisConfig holds the analysis parameters.
type AnalysisConfig struct {
	MinSalarySeason       int     `yaml:"min_salary_season" validate:"min=1871,max=2100"`
	TopN                  int     `yaml:"top_n" validate:"min=1,max=1000"`
	WOBAMinAB             int     `yaml:"woba_min_ab" validate:"min=0"`
	NullFractionThreshold float64 `yaml:"null_fraction_threshold" validate:"gt=0,lte=1"`
	CorrelationSeason     int     `yaml:"correlation_season" validate:"min=1871,max=2100"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DataDir:  "data",
			Players:  "Master.csv",
			Batting:  "Batting.csv",
			Pitching: "Pitching.csv",
			Salaries: "Salaries.csv",
			Factors:  "FanGraphs Leaderboard.csv",
		},
		Output: OutputConfig{
			Dir:      "output",
			Workbook: true,
			Metrics:  true,
		},
		Analysis: AnalysisConfig{
			MinSalarySeason:       1985,
			TopN:                  10,
			WOBAMinAB:             50,
			NullFractionThreshold: 0.5,
			CorrelationSeason:     2014,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Use YAML tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("csvname", isCSVName)
	return v
}

func isCSVName(fl validator.FieldLevel) bool {
	return strings.EqualFold(filepath.Ext(fl.Field().String()), ".csv")
}
