// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/age-toolbox/dice"
	"github.com/danielhkuo/age-toolbox/models"
	"github.com/danielhkuo/age-toolbox/testutil"
)

// fixedSource replays die faces (1-6) in order, wrapping around.
type fixedSource struct {
	faces []int
	next  int
}

func (s *fixedSource) IntN(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return face - 1
}

func newFixedDiceHandler(faces ...int) *DiceHandler {
	return NewDiceHandler(dice.NewRoller(&fixedSource{faces: faces}))
}

func TestRollDice(t *testing.T) {
	tests := []struct {
		name          string
		faces         []int
		requestBody   interface{}
		expectedRoll  models.RollDiceResponse
		expectTarget  bool
		expectSuccess bool
	}{
		{
			name:        "doubles on success award red die",
			faces:       []int{3, 4, 4},
			requestBody: `{"modifier": 2, "target": 10}`,
			expectedRoll: models.RollDiceResponse{
				BlueDice:    [2]int{3, 4},
				RedDie:      4,
				Total:       13,
				Bonus:       2,
				StuntPoints: 4,
				HasDoubles:  true,
				Display:     "[3, 4] [4] + 2 = 13",
			},
			expectTarget:  true,
			expectSuccess: true,
		},
		{
			name:        "legacy bonus field",
			faces:       []int{1, 2, 5},
			requestBody: `{"bonus": 3, "target": 15}`,
			expectedRoll: models.RollDiceResponse{
				BlueDice: [2]int{1, 2},
				RedDie:   5,
				Total:    11,
				Bonus:    3,
				Display:  "[1, 2] [5] + 3 = 11",
			},
			expectTarget:  true,
			expectSuccess: false,
		},
		{
			name:        "no target keeps success null",
			faces:       []int{6, 6, 2},
			requestBody: `{"modifier": -1}`,
			expectedRoll: models.RollDiceResponse{
				BlueDice:   [2]int{6, 6},
				RedDie:     2,
				Total:      13,
				Bonus:      -1,
				HasDoubles: true,
				Display:    "[6, 6] [2] + -1 = 13",
			},
		},
		{
			name:        "empty body",
			faces:       []int{2, 3, 4},
			requestBody: nil,
			expectedRoll: models.RollDiceResponse{
				BlueDice: [2]int{2, 3},
				RedDie:   4,
				Total:    9,
				Display:  "[2, 3] [4] + 0 = 9",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newFixedDiceHandler(tt.faces...)

			req := testutil.MakeRequest("POST", "/api/roll_dice", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.RollDice(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.RollDiceResponse
			testutil.AssertJSON(t, w, &resp)

			want := tt.expectedRoll
			if resp.BlueDice != want.BlueDice || resp.RedDie != want.RedDie {
				t.Errorf("Expected dice %v [%d], got %v [%d]", want.BlueDice, want.RedDie, resp.BlueDice, resp.RedDie)
			}
			if resp.Total != want.Total || resp.Bonus != want.Bonus {
				t.Errorf("Expected total %d bonus %d, got total %d bonus %d", want.Total, want.Bonus, resp.Total, resp.Bonus)
			}
			if resp.StuntPoints != want.StuntPoints {
				t.Errorf("Expected stunt_points %d, got %d", want.StuntPoints, resp.StuntPoints)
			}
			if resp.HasDoubles != want.HasDoubles {
				t.Errorf("Expected has_doubles %v, got %v", want.HasDoubles, resp.HasDoubles)
			}
			if resp.Display != want.Display {
				t.Errorf("Expected display %q, got %q", want.Display, resp.Display)
			}
			if (resp.Target != nil) != tt.expectTarget {
				t.Errorf("Expected target present=%v, got %v", tt.expectTarget, resp.Target)
			}
			if !tt.expectTarget {
				if resp.Success != nil {
					t.Errorf("Expected null success, got %v", *resp.Success)
				}
				return
			}
			if resp.Success == nil || *resp.Success != tt.expectSuccess {
				t.Errorf("Expected success %v, got %v", tt.expectSuccess, resp.Success)
			}
		})
	}
}

func TestRollDiceResponseFields(t *testing.T) {
	handler := newFixedDiceHandler(1, 2, 3)

	req := testutil.MakeRequest("POST", "/api/roll_dice", `{"modifier": 0}`, nil)
	w := httptest.NewRecorder()

	handler.RollDice(w, req)

	var raw map[string]json.RawMessage
	testutil.AssertJSON(t, w, &raw)

	expected := []string{"blue_dice", "red_die", "total", "bonus", "stunt_points", "has_doubles", "target", "success", "display"}
	if len(raw) != len(expected) {
		t.Errorf("Expected %d fields, got %d: %v", len(expected), len(raw), raw)
	}
	for _, field := range expected {
		if _, ok := raw[field]; !ok {
			t.Errorf("Expected field %s in response", field)
		}
	}
	if string(raw["target"]) != "null" || string(raw["success"]) != "null" {
		t.Errorf("Expected null target and success, got %s and %s", raw["target"], raw["success"])
	}
}

func TestRollDiceInvalidJSON(t *testing.T) {
	handler := newFixedDiceHandler(1, 2, 3)

	req := testutil.MakeRequest("POST", "/api/roll_dice", `{"modifier": "lots"}`, nil)
	w := httptest.NewRecorder()

	handler.RollDice(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
