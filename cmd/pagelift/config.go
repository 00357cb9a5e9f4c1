package main

import (
	"fmt"
	"os"

	"github.com/pagelift/pagelift/enhance"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. Absent fields keep their
// defaults; step toggles default to enabled.
type Config struct {
	Steps struct {
		Links    *bool `yaml:"links"`
		Headings *bool `yaml:"headings"`
		Tables   *bool `yaml:"tables"`
		Generic  *bool `yaml:"generic"`
		TreeWalk *bool `yaml:"treeWalk"`
	} `yaml:"steps"`

	// SocialDomains overrides the ordered social-platform list used for
	// link classification.
	SocialDomains []string `yaml:"socialDomains"`

	// UserAgent overrides the User-Agent header of the HTTP fetcher.
	UserAgent string `yaml:"userAgent"`
}

// LoadConfig reads and parses a YAML config file. An empty path returns the
// zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// EngineConfig builds the engine configuration from the defaults and the
// file's overrides.
func (c Config) EngineConfig() enhance.Config {
	ec := enhance.DefaultConfig()
	apply := func(dst, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&ec.Links, c.Steps.Links)
	apply(&ec.Headings, c.Steps.Headings)
	apply(&ec.Tables, c.Steps.Tables)
	apply(&ec.Generic, c.Steps.Generic)
	apply(&ec.TreeWalk, c.Steps.TreeWalk)
	if len(c.SocialDomains) > 0 {
		ec.SocialDomains = c.SocialDomains
	}
	return ec
}
