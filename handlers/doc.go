// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the AGE Toolbox API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - DiceHandler: ability rolls (needs a *dice.Roller)
  - StuntHandler: stunt catalog CRUD (needs a StuntStore)
  - StatusHandler: API liveness check

	diceHandler := handlers.NewDiceHandler(dice.NewRoller(nil))
	stuntHandler := handlers.NewStuntHandler(db.NewStore(cfg.StuntsPath))

# Dice

	POST /api/roll_dice → RollDice

The body is {"modifier": 2, "target": 11}; both fields are optional and the
older "bonus" field is accepted in place of "modifier". The response carries
blue_dice, red_die, total, bonus, stunt_points, has_doubles, target, success
and display. target and success are null when no target was given.

# Stunts

	GET    /api/stunts      → List
	POST   /api/stunts      → Create
	PUT    /api/stunts/{id} → Update
	DELETE /api/stunts/{id} → Delete

Create and Update require name, cost, category and description. A missing
field is rejected with 400 "Missing required field: <field>" before the
store is touched. Ids are positional: they come from the latest List and
shift after any Delete.

Status codes:

  - 400: invalid JSON, missing field, or non-integer id
  - 404: id not reachable in the catalog
  - 500: the workbook could not be read or written (details are only logged)
*/
package handlers
