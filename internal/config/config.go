/*
PURPOSE:
  Defines the configuration structure and loading logic for Headway Lab.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - "Reset" defaults and "Randomize" ranges are fixed, but live here so a
    page variant can ship its own.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Model constants are NOT configuration; they stay in internal/metrics.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to DefaultConfig.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Validate after load so a bad file fails before any output is written.

USAGE:
  cfg, err := config.Load("headway.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
  - internal/model/types.go
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/headway-lab/internal/model"
)

// Config represents the full configuration for Headway Lab.
type Config struct {
	Defaults model.Controls     `yaml:"defaults"`
	Random   model.RandomRanges `yaml:"random"`

	OutputDir   string `yaml:"output_dir"`
	CSVFile     string `yaml:"csv_file"`
	JSONFile    string `yaml:"json_file"`
	ChartFormat string `yaml:"chart_format"` // svg or png
	ChartWidth  int    `yaml:"chart_width"`
	ChartHeight int    `yaml:"chart_height"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultFiles are searched, in order, when no --config is given.
var DefaultFiles = []string{"headway.yaml", "headway_lab.yaml"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults:    model.DefaultControls(),
		Random:      model.DefaultRanges(),
		OutputDir:   ".",
		CSVFile:     "sweep.csv",
		JSONFile:    "snapshot.jsonl",
		ChartFormat: "svg",
		ChartWidth:  800,
		ChartHeight: 400,
		LogLevel:    "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the defaults and ranges against the control domains.
func (c *Config) Validate() error {
	var errs []error
	d := c.Defaults
	if d.Headway <= 0 {
		errs = append(errs, fmt.Errorf("defaults.headway must be > 0, got %v", d.Headway))
	}
	if d.Dwell < 0 {
		errs = append(errs, fmt.Errorf("defaults.dwell must be >= 0, got %v", d.Dwell))
	}
	if d.Clearance < 0 {
		errs = append(errs, fmt.Errorf("defaults.clearance must be >= 0, got %v", d.Clearance))
	}
	if d.Variability < 0 || d.Variability > 100 {
		errs = append(errs, fmt.Errorf("defaults.variability must be in [0,100], got %v", d.Variability))
	}
	if d.AI < 0 || d.AI > 1 {
		errs = append(errs, fmt.Errorf("defaults.ai must be in [0,1], got %v", d.AI))
	}

	ranges := map[string]model.Range{
		"headway":     c.Random.Headway,
		"dwell":       c.Random.Dwell,
		"clearance":   c.Random.Clearance,
		"variability": c.Random.Variability,
	}
	for _, name := range []string{"headway", "dwell", "clearance", "variability"} {
		r := ranges[name]
		if r.Min < 0 || r.Span < 0 {
			errs = append(errs, fmt.Errorf("random.%s: min and span must be >= 0", name))
		}
	}
	if c.Random.Headway.Min <= 0 {
		errs = append(errs, errors.New("random.headway.min must be > 0"))
	}
	if c.Random.Variability.Min+c.Random.Variability.Span > 100 {
		errs = append(errs, errors.New("random.variability must stay within 100"))
	}

	switch c.ChartFormat {
	case "svg", "png":
	default:
		errs = append(errs, fmt.Errorf("chart_format must be svg or png, got %q", c.ChartFormat))
	}
	return errors.Join(errs...)
}
