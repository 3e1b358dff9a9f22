// Package config loads runtime configuration for the ordercli program.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment: ORDERCLI_* variables, falling back to a .env file in the
//     working directory. Real environment variables win over .env entries.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string           directory holding the data files
//	-u string           account file name
//	-t string           transaction file name
//	-l string           operational log file name
//	-log-level string   debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "data_dir": "./data",
//	  "users_file": "users.txt",
//	  "transactions_file": "transactions.txt",
//	  "log_file": "logs.txt",
//	  "log_level": "info"
//	}
//
// Relative file names are resolved against the data directory.
package config
