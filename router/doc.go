// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the AGE Toolbox API.

# Route Registration

NewRouter creates the configured handler with all endpoints:

	handler := router.NewRouter(store, nil, cfg)

The returned handler is the route mux wrapped in CORS.

# Endpoints

Health:

	GET /health
	GET /api/test

Dice:

	POST /api/roll_dice - Roll 2 blue dice + 1 red die

Stunt catalog:

	GET    /api/stunts      - List stunts with positional ids
	POST   /api/stunts      - Add a stunt to its category
	PUT    /api/stunts/{id} - Update the stunt at id
	DELETE /api/stunts/{id} - Delete the stunt at id

# Handler Initialization

	statusHandler := handlers.NewStatusHandler()
	diceHandler := handlers.NewDiceHandler(roller)
	stuntHandler := handlers.NewStuntHandler(store)

Pass a roller with a fixed dice.Source in tests; pass nil in production.
*/
package router
