// Package config handles configuration loading, parsing, and validation
// from defaults, an optional configuration file, TASKTRACK_ prefixed
// environment variables and explicitly set command-line flags, in increasing
// order of precedence.
package config
