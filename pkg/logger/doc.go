// Package logger builds configured slog.Logger instances for applications
// embedding sessionkit.
//
// The session core itself never logs — every failure is returned to the
// caller — so logging belongs at the application edge: CLIs, bootstrap
// code, sign-in handlers. This package provides the factory those edges
// use, with text output for development and JSON for production.
package logger
