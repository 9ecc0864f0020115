// Package config loads runtime configuration for the useraccount CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the PasswordService
//	-v int      validate timeout (seconds, 0 = none)
//	-t int      hash timeout (seconds, 0 = none)
//	-s int      shutdown timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "password_service_addr": "127.0.0.1:50551",
//	  "validate_timeout": "5s",
//	  "hash_timeout": "30s",
//	  "shutdown_timeout": "5s",
//	  "log_level": "info"
//	}
package config
