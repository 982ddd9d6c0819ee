package dice

import (
	"strconv"
	"strings"
)

// termKind discriminates the two shapes a segment of an expression
// can take.
type termKind int

const (
	// termDie is a repeated-die segment such as "2d6" or "d8".
	termDie termKind = iota

	// termModifier is a flat signed-integer segment such as "3" or "-7".
	termModifier
)

// term is the tagged result of parsing one "+"-separated segment.
// Exactly one of the two payloads is meaningful, selected by kind.
type term struct {
	kind termKind

	// die and count are set for termDie.
	die   Die
	count int

	// modifier is set for termModifier.
	modifier int
}

// parseTerm parses one trimmed segment of a roll expression.
//
// A segment containing the letter "d" is always treated as a die
// term with the grammar [<count>]d<sides>: an absent count defaults
// to 1, a present count must be an unsigned decimal. Malformed die
// terms (two "d"s, a signed count, garbage sides) fail rather than
// falling through to modifier parsing, so "3dd" is an error.
//
// Any other segment must be a signed decimal integer and becomes a
// modifier term.
func parseTerm(s string) (term, error) {
	if strings.Contains(s, "d") {
		parts := strings.Split(s, "d")
		if len(parts) != 2 {
			return term{}, unparseable(s)
		}

		count := 1
		if parts[0] != "" {
			n, err := strconv.ParseUint(parts[0], 10, 32)
			if err != nil {
				return term{}, unparseable(s)
			}
			count = int(n)
		}

		die, err := ParseDie("d" + parts[1])
		if err != nil {
			return term{}, err
		}
		return term{kind: termDie, die: die, count: count}, nil
	}

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return term{}, unparseable(s)
	}
	return term{kind: termModifier, modifier: int(n)}, nil
}
