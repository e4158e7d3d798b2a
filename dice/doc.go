// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dice resolves AGE-style ability rolls.

A roll is two blue dice and one red (stunt) die, all d6, plus a modifier:

	outcome := dice.Roll(2, &target)
	fmt.Println(outcome.Display()) // [3, 4] [4] + 2 = 13

# Stunt Points

If any two of the three dice match and the roll meets an explicit target,
the roll awards stunt points equal to the red die. A roll made without a
target has a nil Success and never awards points.

# Randomness

Roll uses the auto-seeded math/rand/v2 generator. Tests inject a Source:

	r := dice.NewRoller(rand.New(rand.NewPCG(1, 2)))
	outcome := r.Roll(0, nil)

Evaluate holds all of the rules and is deterministic, so tests can also call it with fixed faces.
*/
package dice
