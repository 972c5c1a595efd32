package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Features controls which tool endpoints are served.
//
// The zero value disables everything; use DefaultFeatures for the
// everything-on default that applies when no features file is configured.
type Features struct {
	Breakdown  bool `yaml:"breakdown"`
	Summarizer bool `yaml:"summarizer"`
	Quiz       bool `yaml:"quiz"`
	Locator    bool `yaml:"locator"`
}

// DefaultFeatures returns the feature set with every tool enabled.
func DefaultFeatures() Features {
	return Features{
		Breakdown:  true,
		Summarizer: true,
		Quiz:       true,
		Locator:    true,
	}
}

// LoadFeatures reads a YAML feature-flags file.
//
// An empty path returns DefaultFeatures. A missing or malformed file is
// an error rather than a silent default, so typos in FEATURES_PATH do
// not accidentally enable disabled tools.
func LoadFeatures(path string) (Features, error) {
	if path == "" {
		return DefaultFeatures(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Features{}, fmt.Errorf("read features file: %w", err)
	}

	features := DefaultFeatures()
	if err := yaml.Unmarshal(data, &features); err != nil {
		return Features{}, fmt.Errorf("parse features file: %w", err)
	}

	return features, nil
}
