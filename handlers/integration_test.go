// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/age-toolbox/models"
	"github.com/danielhkuo/age-toolbox/testutil"
)

// TestFullStuntWorkflow tests the complete catalog workflow:
// 1. List an empty catalog (no workbook yet)
// 2. Add stunts to two categories (creates the workbook)
// 3. List and check positional ids
// 4. Update a stunt
// 5. Delete a stunt and check ids shift
func TestFullStuntWorkflow(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewStuntHandler(store)

	// Step 1: Empty catalog
	if stunts := listStunts(t, handler); len(stunts) != 0 {
		t.Fatalf("Step 1 - Expected empty catalog, got %d stunts", len(stunts))
	}

	// Step 2: Add stunts
	adds := []models.StuntRequest{
		{Name: "Skirmish", Cost: "1", Category: "Combat", Description: "Move 2 yards."},
		{Name: "Powerful Casting", Cost: "1-3", Category: "Magic", Description: "Boost a spell."},
		{Name: "Knock Prone", Cost: "2", Category: "Combat", Description: "Target falls prone."},
	}
	for _, add := range adds {
		req := testutil.MakeRequest("POST", "/api/stunts", add, nil)
		w := httptest.NewRecorder()
		handler.Create(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Add %s failed: %d - %s", add.Name, w.Code, w.Body.String())
		}
	}

	// Step 3: Sheets are scanned in workbook order, so Combat comes first
	stunts := listStunts(t, handler)
	wantOrder := []string{"Skirmish", "Knock Prone", "Powerful Casting"}
	if len(stunts) != len(wantOrder) {
		t.Fatalf("Step 3 - Expected %d stunts, got %d", len(wantOrder), len(stunts))
	}
	for i, name := range wantOrder {
		if stunts[i].Name != name || stunts[i].ID != i+1 {
			t.Errorf("Step 3 - Expected %s at id %d, got %+v", name, i+1, stunts[i])
		}
	}
	t.Logf("Step 3 - Listed %d stunts", len(stunts))

	// Step 4: Update Knock Prone (id 2)
	setting := "Fantasy"
	update := models.StuntRequest{
		Name: "Knock Prone", Cost: "3", Category: "Combat",
		Description: "Target falls prone and drops its weapon.", Setting: &setting,
	}
	req := testutil.MakeRequest("PUT", "/api/stunts/2", update, nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	handler.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Update failed: %d - %s", w.Code, w.Body.String())
	}

	stunts = listStunts(t, handler)
	if stunts[1].Cost != "3" || stunts[1].Setting == nil || *stunts[1].Setting != "Fantasy" {
		t.Errorf("Step 4 - Update not applied: %+v", stunts[1])
	}

	// Step 5: Delete Skirmish (id 1)
	req = testutil.MakeRequest("DELETE", "/api/stunts/1", nil, nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Delete failed: %d - %s", w.Code, w.Body.String())
	}

	stunts = listStunts(t, handler)
	if len(stunts) != 2 {
		t.Fatalf("Step 5 - Expected 2 stunts, got %d", len(stunts))
	}
	if stunts[0].Name != "Knock Prone" || stunts[0].ID != 1 {
		t.Errorf("Step 5 - Expected Knock Prone at id 1, got %+v", stunts[0])
	}
	if stunts[1].Name != "Powerful Casting" || stunts[1].ID != 2 {
		t.Errorf("Step 5 - Expected Powerful Casting at id 2, got %+v", stunts[1])
	}
}
