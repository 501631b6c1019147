// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/delta/internal/adapters/config"
	_ "go.trai.ch/delta/internal/adapters/logger"
	_ "go.trai.ch/delta/internal/adapters/trace"
	// Register app and engine nodes.
	_ "go.trai.ch/delta/internal/app"
	_ "go.trai.ch/delta/internal/engine/lookup"
)
