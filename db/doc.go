// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the stunt catalog in an xlsx workbook.

# Workbook Layout

Each category is one sheet. Row 1 is the header; data rows follow:

	| SP Cost | Name | Description | Setting |

A row is a stunt only if its SP Cost cell is non-empty. Rows with a blank
cost are holes: every scan skips them and they never receive an id. An empty
Setting means the stunt is universal.

NewWorkbook and EnsureCategorySheet create sheets with the styled header,
in the same spirit as a CREATE TABLE IF NOT EXISTS schema step.

# Positional IDs

Stunt ids are not stored. Every operation recomputes them by walking sheets
in workbook order and rows in row order, counting present rows from 1:

	store := db.NewStore("data/stunts.xlsx")
	stunts, err := store.List()

An id is valid only until the next Add, Update, or Delete. Update and Delete
re-run the same scan to find the row, so an id taken from a List is only safe
while nothing else has written in between.

# Operations

  - List: all present stunts; a missing workbook is an empty list
  - Add: appends to the category sheet, creating the workbook or sheet
  - Update: overwrites the row at id in place, within its current sheet
  - Delete: removes the row at id, shifting later rows up

# Errors

  - ErrNotFound: id is not reachable (or the workbook does not exist)
  - ErrStorage: the workbook could not be read or written; the cause is
    logged and wrapped

# Concurrency

A Store holds a mutex across each open-mutate-save cycle, so concurrent
requests in one process do not lose writes. Nothing coordinates separate
processes sharing the same file.
*/
package db
