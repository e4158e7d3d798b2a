// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dice

import (
	"fmt"
	"math/rand/v2"
)

// Sides is the face count of every die in a roll.
const Sides = 6

// Source supplies random integers for dice draws.
type Source interface {
	// IntN returns a random int in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the runtime's auto-seeded generator. It is safe for
// concurrent use and is never deterministic.
func DefaultSource() Source {
	return globalSource{}
}

// Outcome is the resolved result of one roll.
type Outcome struct {
	BlueDice    [2]int
	RedDie      int
	Modifier    int
	Total       int
	Target      *int
	Success     *bool
	HasDoubles  bool
	StuntPoints int
}

// Display renders the roll as "[b1, b2] [r] + m = total".
// A negative modifier is rendered after the plus sign, e.g. "+ -2".
func (o Outcome) Display() string {
	return fmt.Sprintf("[%d, %d] [%d] + %d = %d",
		o.BlueDice[0], o.BlueDice[1], o.RedDie, o.Modifier, o.Total)
}

// Evaluate deterministically resolves a roll from already drawn faces.
//
// # Success
//
// Success is nil when target is nil. Otherwise it reports total >= *target.
//
// # Doubles
//
// HasDoubles is set when any two of the three faces match, the red die
// included. A triple counts as doubles.
//
// # Stunt points
//
// StuntPoints equals the red die only when the roll has doubles and succeeded
// against an explicit target. Rolls without a target never award points.
func Evaluate(blue [2]int, red, modifier int, target *int) Outcome {
	total := blue[0] + blue[1] + red + modifier

	var success *bool
	if target != nil {
		ok := total >= *target
		success = &ok
	}

	hasDoubles := blue[0] == blue[1] || blue[0] == red || blue[1] == red

	stuntPoints := 0
	if hasDoubles && success != nil && *success {
		stuntPoints = red
	}

	var targetCopy *int
	if target != nil {
		t := *target
		targetCopy = &t
	}

	return Outcome{
		BlueDice:    blue,
		RedDie:      red,
		Modifier:    modifier,
		Total:       total,
		Target:      targetCopy,
		Success:     success,
		HasDoubles:  hasDoubles,
		StuntPoints: stuntPoints,
	}
}

// Roller draws dice from a Source.
type Roller struct {
	src Source
}

// NewRoller returns a Roller backed by src, or by DefaultSource when src is nil.
func NewRoller(src Source) *Roller {
	if src == nil {
		src = DefaultSource()
	}
	return &Roller{src: src}
}

// Roll draws two blue dice and then the red die, and evaluates them.
func (r *Roller) Roll(modifier int, target *int) Outcome {
	blue := [2]int{r.rollDie(), r.rollDie()}
	red := r.rollDie()
	return Evaluate(blue, red, modifier, target)
}

func (r *Roller) rollDie() int {
	return r.src.IntN(Sides) + 1
}

// Roll resolves a roll with fresh randomness.
func Roll(modifier int, target *int) Outcome {
	return NewRoller(nil).Roll(modifier, target)
}
