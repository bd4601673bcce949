package cli

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nicolasfella/qtbridge/internal/errors"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// --config flag is given
const DefaultConfigFile = "qtbridge.yaml"

// TypeConfig declares how one bridge-side type name maps to C++
type TypeConfig struct {
	CxxName   string `yaml:"cxx_name"`  // C++ spelling, empty keeps the bridge name
	Namespace string `yaml:"namespace"` // C++ namespace the type lives in
	Include   string `yaml:"include"`   // header declaring the type
}

// Config carries everything a generation run needs. Values resolve in three
// layers: the qtbridge.yaml project file, then QTBRIDGE_-prefixed environment
// variables, then command line flags
type Config struct {
	Directories []string              `yaml:"directories" env:"QTBRIDGE_DIRECTORIES" envSeparator:","` // scan roots for bridge files
	OutputDir   string                `yaml:"output_dir" env:"QTBRIDGE_OUTPUT_DIR"`                    // artifact directory, empty writes next to each bridge file
	Namespace   string                `yaml:"namespace" env:"QTBRIDGE_NAMESPACE"`                      // namespace for bridge files that declare none
	Includes    []string              `yaml:"includes" env:"QTBRIDGE_INCLUDES" envSeparator:","`       // extra include directives for every generated header
	Types       map[string]TypeConfig `yaml:"types"`                                                   // per-type C++ mappings, bridge file declarations win on conflict
	Aliases     map[string]string     `yaml:"aliases"`                                                 // extra scalar spellings registered with the type registry
	Verbose     bool                  `yaml:"verbose" env:"QTBRIDGE_VERBOSE"`
	Quiet       bool                  `yaml:"quiet" env:"QTBRIDGE_QUIET"`
}

// LoadConfig reads the project configuration file when present and overlays
// QTBRIDGE_-prefixed environment variables on top. A missing default config
// file is fine, a missing explicitly named one is an error
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.WrapConfigurationError(path, "decode", err).
				WithSuggestion("Check the YAML syntax against the documented qtbridge.yaml shape")
		}
	case os.IsNotExist(err) && !explicit:
		// No project file, environment and flags alone drive the run
	default:
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	if err := env.Parse(config); err != nil {
		return nil, errors.WrapConfigurationError("environment", "parse", err).
			WithSuggestion("QTBRIDGE_ variables must match their documented types, for example QTBRIDGE_VERBOSE=true")
	}

	return config, nil
}
