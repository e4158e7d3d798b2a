// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/age-toolbox/dice"
	"github.com/danielhkuo/age-toolbox/middleware"
	"github.com/danielhkuo/age-toolbox/models"
)

type DiceHandler struct {
	roller *dice.Roller
}

func NewDiceHandler(roller *dice.Roller) *DiceHandler {
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	return &DiceHandler{roller: roller}
}

// RollDice handles POST /api/roll_dice
// An empty body rolls with modifier 0 and no target.
func (h *DiceHandler) RollDice(w http.ResponseWriter, r *http.Request) {
	var req models.RollDiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	modifier := 0
	switch {
	case req.Modifier != nil:
		modifier = *req.Modifier
	case req.Bonus != nil:
		modifier = *req.Bonus
	}

	outcome := h.roller.Roll(modifier, req.Target)

	slog.Info("dice rolled",
		"display", outcome.Display(),
		"has_doubles", outcome.HasDoubles,
		"stunt_points", outcome.StuntPoints,
	)

	middleware.JSONResponse(w, http.StatusOK, rollResponse(outcome))
}

func rollResponse(o dice.Outcome) models.RollDiceResponse {
	return models.RollDiceResponse{
		BlueDice:    o.BlueDice,
		RedDie:      o.RedDie,
		Total:       o.Total,
		Bonus:       o.Modifier,
		StuntPoints: o.StuntPoints,
		HasDoubles:  o.HasDoubles,
		Target:      o.Target,
		Success:     o.Success,
		Display:     o.Display(),
	}
}
