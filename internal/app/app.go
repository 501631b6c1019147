// Package app implements the application layer that drives the engine from
// a scenario script: load, run, report.
package app

import (
	"go.trai.ch/delta/internal/core/ports"
	"go.trai.ch/delta/internal/scenarios"
	"go.trai.ch/zerr"
)

// App ties a ScenarioLoader to a Logger to run demonstration scripts
// against the letter-grade graph.
type App struct {
	loader ports.ScenarioLoader
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.ScenarioLoader, logger ports.Logger) *App {
	return &App{loader: loader, logger: logger}
}

// Run loads the scenario script at path and executes it against a fresh
// letter-grade graph, logging each step's outcome.
func (a *App) Run(path string) (*scenarios.LetterGrade, error) {
	script, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load scenario script")
	}

	grade, err := scenarios.Run(script, a.logger)
	if err != nil {
		return nil, zerr.Wrap(err, "scenario run failed")
	}

	return grade, nil
}
