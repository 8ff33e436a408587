// Package logger provides structured logging based on Zap.
//
// New builds a development or production logger from Config. The level is
// honored as configured and the encoding is json or console, with fixed
// level/time/message keys so log shippers see a stable shape.
//
// WithRayID scopes a logger to the ray id the rayid middleware stored on the
// request, so every line logged while serving a request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithRayID(log, c)
//	l.Warn("Directory fetch failed", zap.Error(err))
package logger
