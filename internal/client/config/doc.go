// Package config loads runtime configuration for the terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-e string   runtime env document produced by genenv
//	-s string   SQLite file of the persistent key-value store
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Keys that are absent keep their previous value. The timeout accepts either
// a duration string or integer nanoseconds:
//
//	{
//	  "runtime_env_file": "public/env.json",
//	  "storage_file": "storage.db",
//	  "request_timeout": "15s",
//	  "log_level": "debug"
//	}
package config
