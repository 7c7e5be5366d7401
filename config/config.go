package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cube2222/vlcompiler/vegalite"
)

var VLCompilerHomeDir = func() string {
	dir, err := homedir.Dir()
	if err != nil {
		log.Fatalf("couldn't get user home directory: %s", err)
	}
	return filepath.Join(dir, ".vlcompiler")
}()

var configFile = filepath.Join(VLCompilerHomeDir, "config.yml")

type Config struct {
	// InvalidValues is used for specs which don't set config.invalidValues themselves.
	InvalidValues vegalite.InvalidValuesMode `yaml:"invalidValues"`
	Output        OutputConfig               `yaml:"output"`
	Optimize      *bool                      `yaml:"optimize"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Report string `yaml:"report"`
}

func Default() *Config {
	optimize := true
	return &Config{
		InvalidValues: vegalite.InvalidValuesFilter,
		Output: OutputConfig{
			Format: "json",
			Report: "table",
		},
		Optimize: &optimize,
	}
}

// Read reads the user configuration file. A missing file results in the default configuration.
func Read() (*Config, error) {
	return ReadFile(configFile)
}

func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(err, "couldn't read config file")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml configuration")
	}
	if err := config.fillDefaults(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (config *Config) fillDefaults() error {
	defaults := Default()
	switch config.InvalidValues {
	case "":
		config.InvalidValues = defaults.InvalidValues
	case vegalite.InvalidValuesFilter, vegalite.InvalidValuesKeep:
	default:
		return errors.Errorf("invalid invalidValues setting '%s', expected filter or keep", config.InvalidValues)
	}
	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}
	if config.Output.Report == "" {
		config.Output.Report = defaults.Output.Report
	}
	if config.Optimize == nil {
		config.Optimize = defaults.Optimize
	}
	return nil
}
