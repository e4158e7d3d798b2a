// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: Listen host (default: 127.0.0.1)
  - Port: Server listen port (default: 5000)
  - StuntsPath: Stunt workbook location (default: data/stunts.xlsx)
  - LogLevel: debug, info, warn or error (default: info)
  - AllowedOrigin: CORS origin (default: reflect the request Origin)

# Sources

Values are resolved in three layers, each overriding the last:

 1. A .env file in the working directory, if present (never overrides
    variables that are already set)
 2. Environment variables
 3. CLI flags

# CLI Flags

	-host         Listen host
	-p            Server port
	-d            Stunt workbook path
	-log-level    Log level
	-cors-origin  Allowed CORS origin

# Environment Variables

	HOST        → -host
	PORT        → -p
	STUNTS_PATH → -d
	LOG_LEVEL   → -log-level
	CORS_ORIGIN → -cors-origin

# Validation

ParseFlags returns an error if:

  - PORT is not a number or the port is outside 1-65535
  - the stunt workbook path is empty
  - the log level is unknown
*/
package cliparse
