package dice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Group is one die term retained as parsed: Count dice of Sides
// sides each. Groups with equal side counts are never merged, so
// "d6 + d6" stays two separate groups.
type Group struct {
	Sides int
	Count int
}

// Expression is a parsed roll expression: an ordered collection of
// die groups plus at most one aggregated flat modifier.
//
// Groups are kept in canonical order — a stable sort by descending
// side count, ties keeping their relative input order. Both New and
// Parse apply the same normalization, so an Expression has exactly
// one textual form and String/Parse round-trip.
//
// The modifier is nil when no modifier term appeared in the source
// text, which is distinct from an explicit zero: "d6 + 0" and "d6"
// parse (and format) differently.
type Expression struct {
	groups   []Group
	modifier *int
}

// New builds an Expression from an explicit group list and optional
// modifier. The group list is copied and sorted into canonical order.
func New(groups []Group, modifier *int) Expression {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sides > sorted[j].Sides
	})

	var mod *int
	if modifier != nil {
		m := *modifier
		mod = &m
	}
	return Expression{groups: sorted, modifier: mod}
}

// Parse parses a full roll expression such as "2d6 + 3 + d4 + -1".
//
// The input is split on "+" and each trimmed segment is parsed as a
// term (see parseTerm). Parsing is fail-fast: the first malformed
// segment aborts with an ErrUnparseable error and no partial result.
// Die terms accumulate into groups; modifier terms accumulate into a
// single running sum, which stays absent when no modifier term
// appears at all.
//
// A pure-modifier expression is legal: Parse("9") has no groups and
// a modifier of 9.
func Parse(s string) (Expression, error) {
	var groups []Group
	var modifier *int

	for _, segment := range strings.Split(s, "+") {
		t, err := parseTerm(strings.TrimSpace(segment))
		if err != nil {
			return Expression{}, err
		}

		switch t.kind {
		case termDie:
			groups = append(groups, Group{Sides: t.die.Sides, Count: t.count})
		case termModifier:
			if modifier == nil {
				m := t.modifier
				modifier = &m
			} else {
				*modifier += t.modifier
			}
		}
	}

	return New(groups, modifier), nil
}

// Groups returns the die groups in canonical order.
// The returned slice is a copy.
func (e Expression) Groups() []Group {
	groups := make([]Group, len(e.groups))
	copy(groups, e.groups)
	return groups
}

// Modifier returns the aggregated flat modifier and whether any
// modifier term was present in the source.
func (e Expression) Modifier() (int, bool) {
	if e.modifier == nil {
		return 0, false
	}
	return *e.modifier, true
}

// NumDice returns the total number of physical dice the expression
// rolls.
func (e Expression) NumDice() int {
	n := 0
	for _, g := range e.groups {
		n += g.Count
	}
	return n
}

// Roll evaluates the expression once, drawing every die from src.
//
// Groups are processed in stored order and each group's dice are
// drawn count times in sequence, so RollResult.Rolls preserves draw
// order. The expression's modifier carries through unchanged,
// defaulting to 0 when absent. A group with a side count below one
// fails with ErrInvalidDie before any sampling.
func (e Expression) Roll(src Source) (RollResult, error) {
	for _, g := range e.groups {
		if g.Sides < 1 {
			return RollResult{}, fmt.Errorf("%w: d%d", ErrInvalidDie, g.Sides)
		}
	}

	rolls := make([]DieRoll, 0, e.NumDice())
	for _, g := range e.groups {
		die := Die{Sides: g.Sides}
		for i := 0; i < g.Count; i++ {
			value, err := die.Roll(src)
			if err != nil {
				return RollResult{}, err
			}
			rolls = append(rolls, DieRoll{Die: die, Value: value})
		}
	}

	modifier := 0
	if e.modifier != nil {
		modifier = *e.modifier
	}
	return RollResult{Rolls: rolls, Modifier: modifier}, nil
}

// String returns the canonical text form: each group as
// "<count>d<sides>" (count always explicit), joined by " + ", with
// the modifier appended as a final segment only when present. An
// explicit zero modifier renders as "+ 0".
func (e Expression) String() string {
	parts := make([]string, 0, len(e.groups)+1)
	for _, g := range e.groups {
		parts = append(parts, fmt.Sprintf("%d%s", g.Count, Die{Sides: g.Sides}))
	}
	if e.modifier != nil {
		parts = append(parts, strconv.Itoa(*e.modifier))
	}
	return strings.Join(parts, " + ")
}
