package colfmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file and applies its values over
// [DefaultConfig]. Keys are the tv config-file names: min_col_width,
// max_col_width, sigfig, preserve_scientific, max_decimal_width. Keys
// absent from the file keep their defaults; callers layer CLI flag
// overrides on top of the returned Config themselves.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
