// Package dice parses tabletop dice notation and rolls the result.
//
// An expression such as "2d6 + 3 + d4 + -1" is parsed into an
// Expression: an ordered list of die groups plus an optional flat
// modifier. Rolling an Expression draws every die through a Source
// and produces a RollResult that keeps each individual face value,
// so the full breakdown can be shown alongside the total.
//
// Randomness is injected: production callers pass a seeded or
// crypto-seeded Source, tests pass a fixed sequence.
package dice
