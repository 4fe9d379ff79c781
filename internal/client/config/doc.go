// Package config loads runtime configuration for the medreminder CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML file selected via -c or -config.
//  3. Optional .env file in the working directory.
//  4. Process environment: MEDREMINDER_SERVER_URL, MEDREMINDER_DB_PATH,
//     MEDREMINDER_REQUEST_TIMEOUT, MEDREMINDER_LOG_LEVEL, MEDREMINDER_COLORED.
//     BACKEND_URL is accepted as an alias of MEDREMINDER_SERVER_URL.
//  5. Command-line flags.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local database file
//	-t int      request timeout (seconds)
//
// # YAML schema
//
//	server_url: http://localhost:5000
//	db_path: medreminder.db
//	request_timeout: 10
//	log_level: warn
//	colored: true
package config
