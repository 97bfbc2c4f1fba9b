package gats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a Catalog in plain data form. It is both the YAML schema
// of the override file and the argument of NewCatalog.
type Config struct {
	// RecommendedRelease is returned when the caller names no release.
	// It must be set explicitly; the table shape never implies it.
	RecommendedRelease string `yaml:"recommendedRelease"`

	// Releases are the supported full releases in ascending version order.
	Releases []string `yaml:"releases"`

	// LightReleases are the supported light releases in ascending order.
	LightReleases []string `yaml:"lightReleases"`

	// DataTags maps a supported release to its recommended data GT.
	DataTags map[string]string `yaml:"dataTags"`

	// MCTags maps a supported release to its recommended run-dependent MC GT.
	MCTags map[string]string `yaml:"mcTags"`

	// AnalysisTags maps a supported release to its recommended analysis GT.
	AnalysisTags map[string]string `yaml:"analysisTags"`
}

// LoadConfig reads a catalog override file. A missing file (or an empty
// path) is not an error and returns nil: the default tables apply unless
// the integrator says otherwise.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return &cfg, nil
}

// Catalog materializes the config, falling back to the default tables for
// every field left unset. Safe to call on a nil receiver, which yields a
// catalog equal to the default one.
func (c *Config) Catalog() (*Catalog, error) {
	cfg := defaultConfig()

	if c != nil {
		if c.RecommendedRelease != "" {
			cfg.RecommendedRelease = c.RecommendedRelease
		}
		if c.Releases != nil {
			cfg.Releases = c.Releases
		}
		if c.LightReleases != nil {
			cfg.LightReleases = c.LightReleases
		}
		if c.DataTags != nil {
			cfg.DataTags = c.DataTags
		}
		if c.MCTags != nil {
			cfg.MCTags = c.MCTags
		}
		if c.AnalysisTags != nil {
			cfg.AnalysisTags = c.AnalysisTags
		}
	}

	return NewCatalog(cfg)
}
