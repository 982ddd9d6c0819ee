package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnparseable indicates that a roll expression (or one of its
// segments) does not match the dice grammar. Parse errors wrap this
// sentinel together with the offending text.
var ErrUnparseable = errors.New("could not understand roll")

// ErrInvalidDie indicates an attempt to roll a die with fewer than
// one side. A zero-sided die is representable (the parser accepts
// "d0") but can never be rolled.
var ErrInvalidDie = errors.New("die must have at least one side")

// unparseable wraps ErrUnparseable with the text that failed to parse.
func unparseable(s string) error {
	return fmt.Errorf("%w: %q", ErrUnparseable, s)
}

// Die is a single die type, identified by its side count.
// It is a small value type; copy it freely.
type Die struct {
	// Sides is the number of faces. Rolling requires Sides >= 1.
	Sides int
}

// ParseDie parses the canonical die form "d<sides>", e.g. "d8" or
// " d20 " (surrounding whitespace is ignored). The side count must be
// an unsigned decimal with no sign character; side counts above 16
// bits are rejected. Anything else fails with ErrUnparseable.
func ParseDie(s string) (Die, error) {
	trimmed := strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(trimmed, "d")
	if !ok {
		return Die{}, unparseable(s)
	}
	sides, err := strconv.ParseUint(rest, 10, 16)
	if err != nil {
		return Die{}, unparseable(s)
	}
	return Die{Sides: int(sides)}, nil
}

// String returns the canonical form "d<sides>". Every other rendering
// of a die in this package goes through this method.
func (d Die) String() string {
	return fmt.Sprintf("d%d", d.Sides)
}

// Roll draws one uniform value in [1, Sides] from src.
// Returns ErrInvalidDie when Sides < 1.
func (d Die) Roll(src Source) (int, error) {
	if d.Sides < 1 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDie, d)
	}
	return src.Intn(d.Sides) + 1, nil
}
