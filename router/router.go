// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/age-toolbox/cliparse"
	"github.com/danielhkuo/age-toolbox/dice"
	"github.com/danielhkuo/age-toolbox/handlers"
	"github.com/danielhkuo/age-toolbox/middleware"
)

// NewRouter returns the API routes wrapped in CORS. A nil roller uses fresh
// randomness for every roll.
func NewRouter(store handlers.StuntStore, roller *dice.Roller, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler()
	diceHandler := handlers.NewDiceHandler(roller)
	stuntHandler := handlers.NewStuntHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /api/test", middleware.WithLogging(statusHandler.Test))

	// Dice
	mux.HandleFunc("POST /api/roll_dice", middleware.WithLogging(diceHandler.RollDice))

	// Stunt catalog
	mux.HandleFunc("GET /api/stunts", middleware.WithLogging(stuntHandler.List))
	mux.HandleFunc("POST /api/stunts", middleware.WithLogging(stuntHandler.Create))
	mux.HandleFunc("PUT /api/stunts/{id}", middleware.WithLogging(stuntHandler.Update))
	mux.HandleFunc("DELETE /api/stunts/{id}", middleware.WithLogging(stuntHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("age-toolbox API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigin, mux)
}
