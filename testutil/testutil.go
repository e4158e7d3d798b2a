// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/age-toolbox/cliparse"
	"github.com/danielhkuo/age-toolbox/db"
)

// Row is one data row of a seeded sheet: cost, name, description, setting.
// A blank cost makes the row a hole.
type Row [4]interface{}

// Sheet is a seeded category sheet.
type Sheet struct {
	Name string
	Rows []Row
}

// SetupTestStore returns a store whose workbook path is inside a fresh temp
// dir. The workbook itself does not exist yet.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()
	return db.NewStore(filepath.Join(t.TempDir(), "data", "stunts.xlsx"))
}

// SeedWorkbook writes sheets, in order, to a new workbook at path. Each
// sheet gets the standard header row.
func SeedWorkbook(t *testing.T, path string, sheets ...Sheet) {
	t.Helper()

	if len(sheets) == 0 {
		t.Fatal("SeedWorkbook needs at least one sheet")
	}

	f, err := db.NewWorkbook(sheets[0].Name)
	if err != nil {
		t.Fatalf("Failed to create workbook: %v", err)
	}
	defer f.Close()

	for i, sheet := range sheets {
		if i > 0 {
			if _, err := db.EnsureCategorySheet(f, sheet.Name); err != nil {
				t.Fatalf("Failed to create sheet %s: %v", sheet.Name, err)
			}
		}
		for j, row := range sheet.Rows {
			values := []interface{}{row[0], row[1], row[2], row[3]}
			cell, _ := excelize.CoordinatesToCellName(1, db.HeaderRow+1+j)
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				t.Fatalf("Failed to seed row: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
}

// SeedTestStore returns a store over a workbook seeded with sheets.
func SeedTestStore(t *testing.T, sheets ...Sheet) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stunts.xlsx")
	SeedWorkbook(t, path, sheets...)
	return db.NewStore(path)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:       "127.0.0.1",
		Port:       5000,
		StuntsPath: "data/stunts.xlsx",
		LogLevel:   "info",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
