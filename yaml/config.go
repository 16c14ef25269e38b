// Package yaml loads the generator's optional run configuration file.
// Values from the file sit beneath CLI flags: a flag set on the command
// line always wins.
package yaml

import (
	"os"

	"gopkg.in/yaml.v3"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// Config holds the run configuration.
type Config struct {
	// Out is the directory the docset bundle is created under.
	Out string `yaml:"out"`

	// BaseURL overrides the documentation site root.
	BaseURL string `yaml:"base_url"`

	// RPS caps requests per second. Zero means unlimited.
	RPS float64 `yaml:"rps"`

	// Quiet suppresses progress output.
	Quiet bool `yaml:"quiet"`
}

// Load reads a configuration file. A missing file is ENOTFOUND; a file
// that fails to parse is EINVALID.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, docset.Errorf(docset.ENOTFOUND, "config file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, docset.Errorf(docset.EINVALID, "invalid config file %q: %v", path, err)
	}
	return &cfg, nil
}
