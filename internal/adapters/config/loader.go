// Package config provides the scenario-script loader: a thin YAML-file
// adapter over internal/scenarios.Script.
package config

import (
	"os"

	"go.trai.ch/delta/internal/scenarios"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileScenarioLoader implements ports.ScenarioLoader by reading a YAML
// script file from disk.
type FileScenarioLoader struct{}

// Load reads and parses a scenario script file from path.
func (FileScenarioLoader) Load(path string) (*scenarios.Script, error) {
	return Load(path)
}

// Load reads a scenario script file from path and returns its parsed form.
func Load(path string) (*scenarios.Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read scenario file")
	}

	var script scenarios.Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, zerr.Wrap(err, "failed to parse scenario file")
	}

	return &script, nil
}
