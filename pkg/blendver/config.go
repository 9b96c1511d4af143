package blendver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigName is the optional per-directory configuration file, looked
// up next to the document.
const ConfigName = ".blendver.yml"

// Config carries operator defaults for every document in a directory.
// Explicit options take precedence over it.
type Config struct {
	// Git overrides the backend executable.
	Git string `yaml:"git"`
	// DepsTool overrides the dependency scanner executable.
	DepsTool string `yaml:"deps_tool"`
	// Blender is forwarded to the scanner as its executable override.
	Blender string `yaml:"blender"`
	// Exclude lists glob patterns for dependencies that should never be
	// captured, even when eligible.
	Exclude []string `yaml:"exclude"`
	// Description is written into the repository handle on init when no
	// explicit description is given.
	Description string `yaml:"description"`
}

// LoadConfig reads the config file from dir. A missing file is not an
// error and yields the zero Config.
func LoadConfig(dir string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(dir, ConfigName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigName, err)
	}
	return cfg, nil
}
