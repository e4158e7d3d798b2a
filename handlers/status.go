// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/age-toolbox/middleware"
	"github.com/danielhkuo/age-toolbox/models"
)

type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Test handles GET /api/test
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  "ok",
		Message: "AGE Toolbox API is working!",
	})
}
