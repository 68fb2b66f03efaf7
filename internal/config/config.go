package config

import (
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// FileNames are the config file names looked up by Load, in order.
var FileNames = []string{"archpy.yml", "archpy.yaml"}

// ProjectConfig holds project-level settings loaded from archpy.yml.
// Workers of 0 means GOMAXPROCS; MCPAddr is "stdio" or a host:port.
type ProjectConfig struct {
	Workers  int    `yaml:"workers,omitempty" validate:"gte=0,lte=1024"`
	Verbose  bool   `yaml:"verbose,omitempty"`
	LogColor *bool  `yaml:"logColor,omitempty"`
	MCPAddr  string `yaml:"mcpAddr,omitempty" validate:"omitempty,eq=stdio|hostname_port"`
}

// Color reports whether log output is colored. Unset means yes.
func (c *ProjectConfig) Color() bool {
	return c.LogColor == nil || *c.LogColor
}

var validate = validator.New()

// Load attempts to read archpy.yml or archpy.yaml from the given directory
// of fs. Returns a zero-value config (not an error) if no config file
// exists.
func Load(fs afero.Fs, dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Errorf("parse %s: %w", path, err)
		}
		if err := validate.Struct(&cfg); err != nil {
			return nil, errors.Errorf("invalid %s: %w", path, err)
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
