// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/age-toolbox/models"
)

var (
	ErrNotFound = errors.New("stunt not found")
	ErrStorage  = errors.New("stunt storage failure")
)

// Store is the stunt catalog backed by a workbook with one sheet per
// category. Stunt ids are not stored; they are recomputed by every scan.
type Store struct {
	path string

	// mu serializes each open-mutate-save cycle on the workbook.
	mu sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the workbook location.
func (s *Store) Path() string {
	return s.path
}

// record is a present stunt and the physical cell row it was read from.
type record struct {
	stunt models.Stunt
	sheet string
	row   int
}

// scan walks sheets in workbook order and rows after the header in row
// order, numbering every row with a non-empty cost cell from 1. A cost of
// only spaces is non-empty.
func scan(f *excelize.File) ([]record, error) {
	var records []record
	id := 0

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		for i := HeaderRow; i < len(rows); i++ {
			cols := rows[i]
			cost := cell(cols, ColCost)
			if cost == "" {
				continue
			}

			id++
			records = append(records, record{
				stunt: models.Stunt{
					ID:          id,
					Name:        cell(cols, ColName),
					Cost:        models.Cost(cost),
					Category:    sheet,
					Setting:     optionalCell(cols, ColSetting),
					Description: cell(cols, ColDescription),
				},
				sheet: sheet,
				row:   i + 1,
			})
		}
	}

	return records, nil
}

func cell(cols []string, col int) string {
	if col > len(cols) {
		return ""
	}
	return cols[col-1]
}

func optionalCell(cols []string, col int) *string {
	v := cell(cols, col)
	return models.NormalizeSetting(&v)
}

// find returns the record currently numbered id.
func find(records []record, id int) (record, bool) {
	if id < 1 || id > len(records) {
		return record{}, false
	}
	return records[id-1], true
}

// List returns every present stunt in scan order. A missing workbook is an
// empty catalog.
func (s *Store) List() ([]models.Stunt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("stunt workbook not found", "path", s.path)
		return []models.Stunt{}, nil
	}
	if err != nil {
		return nil, s.storageError("open", err)
	}
	defer f.Close()

	records, err := scan(f)
	if err != nil {
		return nil, s.storageError("scan", err)
	}

	stunts := make([]models.Stunt, 0, len(records))
	for _, rec := range records {
		stunts = append(stunts, rec.stunt)
	}
	return stunts, nil
}

// Add appends a stunt after the last row of its category sheet, creating
// the workbook and the sheet as needed.
func (s *Store) Add(fields models.StuntFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := fields.Category

	f, err := s.open()
	switch {
	case errors.Is(err, os.ErrNotExist):
		f, err = NewWorkbook(sheet)
		if err != nil {
			return s.storageError("create", err)
		}
		slog.Info("created stunt workbook", "path", s.path, "category", sheet)
	case err != nil:
		return s.storageError("open", err)
	default:
		created, err := EnsureCategorySheet(f, sheet)
		if err != nil {
			f.Close()
			return s.storageError("create sheet", err)
		}
		if created {
			slog.Info("created stunt category", "category", sheet)
		}
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return s.storageError("read sheet", err)
	}
	row := max(len(rows), HeaderRow) + 1

	if err := writeStunt(f, sheet, row, fields); err != nil {
		return s.storageError("write", err)
	}
	if err := styleDataRow(f, sheet, row); err != nil {
		return s.storageError("style", err)
	}
	if err := s.save(f); err != nil {
		return err
	}

	slog.Info("stunt added", "category", sheet, "name", fields.Name, "row", row)
	return nil
}

// Update overwrites the stunt currently numbered id in place. The row stays
// in the sheet it was found in; fields.Category does not move it.
func (s *Store) Update(id int, fields models.StuntFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, rec, err := s.locate(id)
	if err != nil {
		return err
	}
	defer f.Close()

	if fields.Category != rec.sheet {
		slog.Debug("update keeps stunt in its current category",
			"id", id, "category", rec.sheet, "requested_category", fields.Category)
	}

	if err := writeStunt(f, rec.sheet, rec.row, fields); err != nil {
		return s.storageError("write", err)
	}
	if err := s.save(f); err != nil {
		return err
	}

	slog.Info("stunt updated", "id", id, "category", rec.sheet, "row", rec.row)
	return nil
}

// Delete removes the row of the stunt currently numbered id. Later rows of
// the sheet shift up, and every later id drops by one.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, rec, err := s.locate(id)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.RemoveRow(rec.sheet, rec.row); err != nil {
		return s.storageError("remove row", err)
	}
	if err := s.save(f); err != nil {
		return err
	}

	slog.Info("stunt deleted", "id", id, "category", rec.sheet, "name", rec.stunt.Name)
	return nil
}

// locate opens the workbook and finds id with the same scan List uses.
// On success the caller owns the returned file.
func (s *Store) locate(id int) (*excelize.File, record, error) {
	f, err := s.open()
	if errors.Is(err, os.ErrNotExist) {
		return nil, record{}, ErrNotFound
	}
	if err != nil {
		return nil, record{}, s.storageError("open", err)
	}

	records, err := scan(f)
	if err != nil {
		f.Close()
		return nil, record{}, s.storageError("scan", err)
	}

	rec, ok := find(records, id)
	if !ok {
		f.Close()
		return nil, record{}, ErrNotFound
	}
	return f, rec, nil
}

func (s *Store) open() (*excelize.File, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, err
	}
	return excelize.OpenFile(s.path)
}

func (s *Store) save(f *excelize.File) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return s.storageError("create directory", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return s.storageError("save", err)
	}

	if info, err := os.Stat(s.path); err == nil {
		slog.Debug("stunt workbook saved", "path", s.path, "size", humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

// storageError logs the cause and returns an error wrapping ErrStorage.
func (s *Store) storageError(op string, err error) error {
	slog.Error("stunt workbook "+op+" failed", "path", s.path, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func writeStunt(f *excelize.File, sheet string, row int, fields models.StuntFields) error {
	// Only canonical integers become numeric cells; "007" or "+2" stay text.
	var cost interface{} = string(fields.Cost)
	if n, ok := fields.Cost.Int(); ok && strconv.Itoa(n) == string(fields.Cost) {
		cost = n
	}

	var setting interface{}
	if s := models.NormalizeSetting(fields.Setting); s != nil {
		setting = *s
	}

	values := []struct {
		col   int
		value interface{}
	}{
		{ColCost, cost},
		{ColName, fields.Name},
		{ColDescription, fields.Description},
		{ColSetting, setting},
	}
	for _, v := range values {
		name, err := excelize.CoordinatesToCellName(v.col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, v.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", name, err)
		}
	}
	return nil
}
