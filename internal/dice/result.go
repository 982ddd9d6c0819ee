package dice

import (
	"fmt"
	"strings"
)

// DieRoll is the sampled outcome of one physical die.
type DieRoll struct {
	Die   Die
	Value int
}

// RollResult is the materialized outcome of evaluating an Expression
// once: every individual die's face value, in draw order, plus the
// flat modifier (0 when the expression had none).
type RollResult struct {
	Rolls    []DieRoll
	Modifier int
}

// Total returns the modifier plus the sum of every sampled value.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, roll := range r.Rolls {
		total += roll.Value
	}
	return total
}

// String renders the full breakdown, reproducing each die's face
// value rather than only the aggregate:
//
//	(d8 -> 5) + (d4 -> 2) + (modifier -> -1) = 6
//
// A roll with no dice renders the die part as "(no dice)".
func (r RollResult) String() string {
	dicePart := "(no dice)"
	if len(r.Rolls) > 0 {
		parts := make([]string, len(r.Rolls))
		for i, roll := range r.Rolls {
			parts[i] = fmt.Sprintf("(%s -> %d)", roll.Die, roll.Value)
		}
		dicePart = strings.Join(parts, " + ")
	}
	return fmt.Sprintf("%s + (modifier -> %d) = %d", dicePart, r.Modifier, r.Total())
}
