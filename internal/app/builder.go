package app

import "go.trai.ch/delta/internal/core/ports"

// Components contains all the initialized application components,
// providing controlled access to what the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents assembles a Components value from its dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{App: app, Logger: logger}
}
