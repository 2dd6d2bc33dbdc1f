// Package config resolves plangen settings from defaults, the optional
// .plangen.yaml file, and command-line flags, in that precedence order.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults. Input and output paths match the runner's report layout.
const (
	DefaultInputPath  = "reports/test-results.json"
	DefaultOutputPath = "reports/test-plan-output.xlsx"
	DefaultTitle      = "Node Split Automation Functional Validation Scenarios"

	configFileName = ".plangen.yaml"
)

// Config holds the resolved settings for one run.
type Config struct {
	Input   string `yaml:"input,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Title   string `yaml:"title,omitempty"`
	NoColor bool   `yaml:"no_color"`
}

// Flags holds command-line flag values. The *Set fields track whether
// the user passed the flag explicitly, so an unset flag cannot clobber
// the config file value and an explicit empty string still overrides.
type Flags struct {
	Input      string
	InputSet   bool
	Output     string
	OutputSet  bool
	Title      string
	TitleSet   bool
	NoColor    bool
	NoColorSet bool
}

// Load returns the defaults overlaid with the config file at path. When
// path is empty, .plangen.yaml in the working directory is used if it
// exists. File errors other than not-exist produce a warning on stderr
// and leave the defaults in place.
func Load(path string, stderr io.Writer) *Config {
	cfg := &Config{
		Input:  DefaultInputPath,
		Output: DefaultOutputPath,
		Title:  DefaultTitle,
	}

	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.Input != "" {
		cfg.Input = fileCfg.Input
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.Title != "" {
		cfg.Title = fileCfg.Title
	}
	cfg.NoColor = fileCfg.NoColor
	return cfg
}

// Merge applies explicitly set flags over cfg and returns cfg.
func Merge(cfg *Config, fl Flags) *Config {
	if fl.InputSet {
		cfg.Input = fl.Input
	}
	if fl.OutputSet {
		cfg.Output = fl.Output
	}
	if fl.TitleSet {
		cfg.Title = fl.Title
	}
	if fl.NoColorSet {
		cfg.NoColor = fl.NoColor
	}
	return cfg
}
