// Package config loads environment variables into typed configuration
// structs.
//
// Struct fields are described with `env` and `envDefault` tags and parsed
// via github.com/caarlos0/env. A .env file in the working directory is
// loaded once per process, if present, before the first parse.
//
// Unlike process-wide config registries, Load parses fresh on every call:
// sessionkit components are constructed per session scope, and two scopes
// may legitimately want different values for the same struct type (for
// example, distinct SESSION_STORAGE_KEY entries in tests).
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
