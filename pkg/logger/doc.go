// Package logger builds configured log/slog loggers with the functional
// options pattern.
//
// The factory covers the common axes: level, output format (text for humans,
// JSON for aggregation systems), destination writer and static attributes.
// Environment presets pick sensible defaults per deployment stage:
//
//	log := logger.New(logger.WithEnvironment(environment.Current(), "redux"))
//	log.Info("store created")
//
// Small attribute helpers (Error, Errors, Group) keep call sites tidy:
//
//	log.Error("dispatch failed", logger.Error(err))
//
// The redux warning sink and the middleware.Logger middleware use this
// package for their default loggers.
package logger
