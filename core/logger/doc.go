// Package logger provides a structured logging facility based on Zap.
//
// All commands and services receive their logger as a parameter; no core
// package logs through global state. The kiosk artifact server attaches a
// ray_id to each request so request logs can be correlated via WithRayID.
//
// # Configuration
//
//   - Level: debug, info, warn, error (debug selects the development
//     config with ISO8601 timestamps)
//   - Format: console (colored, for CLI use) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Bell times generated", zap.Int("entries", n))
package logger
