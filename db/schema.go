// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column positions of a category sheet, 1-based.
const (
	ColCost        = 1
	ColName        = 2
	ColDescription = 3
	ColSetting     = 4
)

// HeaderRow is the only non-data row of a category sheet.
const HeaderRow = 1

// Header is written to row 1 of every category sheet.
var Header = []string{"SP Cost", "Name", "Description", "Setting"}

var columnWidths = map[string]float64{
	"A": 8,
	"B": 20,
	"C": 50,
	"D": 12,
}

// NewWorkbook creates an empty workbook whose only sheet is category.
func NewWorkbook(category string) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, category); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", category, err)
	}
	if err := writeHeader(f, category); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// EnsureCategorySheet creates the sheet for category with its header row.
// Safe to call multiple times - an existing sheet is left untouched.
func EnsureCategorySheet(f *excelize.File, category string) (bool, error) {
	idx, err := f.GetSheetIndex(category)
	if err != nil {
		return false, fmt.Errorf("failed to look up sheet %q: %w", category, err)
	}
	if idx >= 0 {
		return false, nil
	}

	if _, err := f.NewSheet(category); err != nil {
		return false, fmt.Errorf("failed to create sheet %q: %w", category, err)
	}
	if err := writeHeader(f, category); err != nil {
		return false, err
	}

	return true, nil
}

func writeHeader(f *excelize.File, sheet string) error {
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(len(Header), HeaderRow)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	return nil
}

// styleDataRow applies top alignment and wrapping to a data row and resets
// the column widths. Presentation only; readers ignore it.
func styleDataRow(f *excelize.File, sheet string, row int) error {
	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}
	description, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	first, _ := excelize.CoordinatesToCellName(ColCost, row)
	last, _ := excelize.CoordinatesToCellName(ColSetting, row)
	if err := f.SetCellStyle(sheet, first, last, wrap); err != nil {
		return err
	}
	desc, _ := excelize.CoordinatesToCellName(ColDescription, row)
	if err := f.SetCellStyle(sheet, desc, desc, description); err != nil {
		return err
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}
