// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cookbook/internal/adapters/config"
	_ "go.trai.ch/cookbook/internal/adapters/logger"
	_ "go.trai.ch/cookbook/internal/adapters/memstore"
	_ "go.trai.ch/cookbook/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cookbook/internal/app"
	_ "go.trai.ch/cookbook/internal/engine/resolver"
)
