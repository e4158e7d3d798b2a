// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AGE Toolbox API server.

AGE Toolbox is a helper for Adventure Game Engine tables: it rolls ability
checks (two blue dice and a red stunt die) and manages a catalog of stunts
kept in an xlsx workbook, one sheet per category.

# Starting the Server

Everything has a default, so this is enough:

	go run .

Or with flags:

	go run . -p 5000 -d data/stunts.xlsx -log-level debug

# Configuration

  - HOST (-host): Listen host (default: 127.0.0.1)
  - PORT (-p): Server port (default: 5000)
  - STUNTS_PATH (-d): Stunt workbook (default: data/stunts.xlsx)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - CORS_ORIGIN (-cors-origin): Allowed origin (default: reflect request)

A .env file in the working directory is loaded first if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (dice, stunts, status)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and validation
  - dice: Roll resolution rules
  - db: Stunt workbook store with positional ids
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
