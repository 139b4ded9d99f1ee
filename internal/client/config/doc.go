// Package config loads runtime configuration for the notes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON.
//  3. A .env file in the working directory, if present.
//  4. NOTEAPP_* environment variables, which win over .env.
//  5. Command-line flags.
//
// Supported flags
//
//	-a string     base URL of the notes server
//	-s string     path of the local SQLite file holding the session
//	-m duration   how long notifications stay visible
//	-i int        online status check interval (seconds)
//	-l string     log level (debug, info, warn, error)
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	server_url: http://localhost:3001
//	notes_path: /api/notes
//	login_path: /api/login
//	storage_path: noteapp.db
//	message_timeout: 5s
//	note_message_timeout: 1s
//	request_timeout: 10s
//	online_check_interval: 5s
//	log_level: info
//	log_format: console
package config
