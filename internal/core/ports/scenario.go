package ports

import "go.trai.ch/delta/internal/core/script"

// ScenarioLoader defines the interface for loading a demonstration script
// that drives a registered scenario against the engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=scenario.go -destination=mocks/mock_scenario.go -package=mocks
type ScenarioLoader interface {
	// Load reads a scenario script from the given path.
	Load(path string) (*script.Script, error)
}
