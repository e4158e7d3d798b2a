// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RollDiceRequest: modifier (or legacy bonus), target
  - StuntRequest: name, cost, category, description, setting

# Response Types

Types for JSON responses:

  - RollDiceResponse: blue_dice, red_die, total, bonus, stunt_points,
    has_doubles, target, success, display
  - MessageResponse: message
  - StatusResponse: status, message
  - ErrorResponse: error, message

# Domain Types

  - Stunt: one catalog entry with its positional id
  - StuntFields: the stored columns of a stunt
  - Cost: the stunt point cost, number or text

# Validation

ValidateStunt reports the first missing required field:

	if err := models.ValidateStunt(req); err != nil {
		// err.Error() == "Missing required field: cost"
	}

Required fields are checked in the order name, cost, category, description.
The setting is optional; blank settings are normalized to nil.
*/
package models
