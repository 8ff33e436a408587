// Package server holds the HTTP server configuration.
//
// The start command reads Port, ApiKey and ShutdownSeconds from here; the
// fiber app itself is assembled in cmd.
package server
