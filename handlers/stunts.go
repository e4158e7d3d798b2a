// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/age-toolbox/db"
	"github.com/danielhkuo/age-toolbox/middleware"
	"github.com/danielhkuo/age-toolbox/models"
)

// StuntStore is the catalog the stunt endpoints read and write.
// *db.Store implements it.
type StuntStore interface {
	List() ([]models.Stunt, error)
	Add(fields models.StuntFields) error
	Update(id int, fields models.StuntFields) error
	Delete(id int) error
}

type StuntHandler struct {
	store StuntStore
}

func NewStuntHandler(store StuntStore) *StuntHandler {
	return &StuntHandler{store: store}
}

// List handles GET /api/stunts
func (h *StuntHandler) List(w http.ResponseWriter, r *http.Request) {
	stunts, err := h.store.List()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load stunts")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stunts)
}

// Create handles POST /api/stunts
func (h *StuntHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := parseStuntRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.Add(req.Fields()); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add stunt")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Stunt added successfully",
	})
}

// Update handles PUT /api/stunts/{id}
// The stunt stays in its current category even if the body names another.
func (h *StuntHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseStuntID(w, r)
	if !ok {
		return
	}

	req, ok := parseStuntRequest(w, r)
	if !ok {
		return
	}

	err := h.store.Update(id, req.Fields())
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Stunt not found")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update stunt")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Stunt updated successfully",
	})
}

// Delete handles DELETE /api/stunts/{id}
func (h *StuntHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseStuntID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Stunt not found")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete stunt")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Stunt deleted successfully",
	})
}

// parseStuntRequest decodes and validates the body, writing a 400 on failure.
func parseStuntRequest(w http.ResponseWriter, r *http.Request) (models.StuntRequest, bool) {
	var req models.StuntRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.StuntRequest{}, false
	}

	if err := models.ValidateStunt(req); err != nil {
		slog.Info("stunt rejected", "reason", err.Error())
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return models.StuntRequest{}, false
	}

	return req, true
}

func parseStuntID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}
