// Package cli — roll_test.go exercises the roll command end to end
// through cobra, plus the pure output helpers. Rolls under test use
// either a fixed seed (replayable) or diceless expressions whose
// output does not depend on the RNG at all.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjfuller/solo-ttrpg-helper/internal/dice"
	"github.com/cjfuller/solo-ttrpg-helper/internal/model"
)

// execute runs the root command with the given args and returns
// stdout and the command error. The test environment is pointed at
// an alias file under the test's temp dir so the developer's real
// config never leaks in.
func execute(t *testing.T, aliasContent string, args ...string) (string, error) {
	t.Helper()

	aliasPath := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(aliasPath, []byte(aliasContent), 0o644))
	t.Setenv("SOLO_ALIASES", aliasPath)
	// Register the restore via t.Setenv, then genuinely unset so a
	// developer's SOLO_SEED cannot influence the test.
	t.Setenv("SOLO_SEED", "")
	os.Unsetenv("SOLO_SEED")

	// The output flags are package globals; reset them so one test's
	// --json does not leak into the next.
	jsonOutput = false
	verbose = false

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// TestRoll_JSONReport verifies the --json output for a diceless
// expression, where every field is deterministic.
func TestRoll_JSONReport(t *testing.T) {
	out, err := execute(t, "", "roll", "--json", "--seed", "42", "9")
	require.NoError(t, err)

	var report model.RollReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "9", report.Expression)
	assert.Empty(t, report.Rolls)
	assert.Equal(t, 9, report.Modifier)
	assert.Equal(t, 9, report.Total)
	assert.Equal(t, int64(42), report.Seed)
}

// TestRoll_SeedReplay verifies that the same seed reproduces the
// same roll, byte for byte.
func TestRoll_SeedReplay(t *testing.T) {
	first, err := execute(t, "", "roll", "--json", "--seed", "1234", "3d6", "+", "d4")
	require.NoError(t, err)

	second, err := execute(t, "", "roll", "--json", "--seed", "1234", "3d6", "+", "d4")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var report model.RollReport
	require.NoError(t, json.Unmarshal([]byte(first), &report))
	assert.Equal(t, "3d6 + 1d4", report.Expression)
	assert.Len(t, report.Rolls, 4)
	assert.GreaterOrEqual(t, report.Total, 4)
	assert.LessOrEqual(t, report.Total, 22)
}

// TestRoll_ArgsJoinedWithSpaces verifies that unquoted expressions
// split across argv are joined before parsing, matching quoted use.
func TestRoll_ArgsJoinedWithSpaces(t *testing.T) {
	split, err := execute(t, "", "roll", "--json", "--seed", "7", "2d6", "+", "3")
	require.NoError(t, err)

	quoted, err := execute(t, "", "roll", "--json", "--seed", "7", "2d6 + 3")
	require.NoError(t, err)

	assert.Equal(t, split, quoted)
}

// TestRoll_AliasExpansion verifies that an input matching an alias
// name rolls the aliased expression.
func TestRoll_AliasExpansion(t *testing.T) {
	out, err := execute(t, "attack: 1d20 + 5\n", "roll", "--json", "--seed", "9", "attack")
	require.NoError(t, err)

	var report model.RollReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "1d20 + 5", report.Expression)
	assert.Len(t, report.Rolls, 1)
}

// TestRoll_BadExpression verifies the exit-code classification for
// a malformed expression.
func TestRoll_BadExpression(t *testing.T) {
	_, err := execute(t, "", "roll", "3dd")
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrUnparseable)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitBadExpression, cliErr.Code)
}

// TestRoll_ZeroSidedDie verifies that a d0 parses but fails to roll
// with its own exit code.
func TestRoll_ZeroSidedDie(t *testing.T) {
	_, err := execute(t, "", "roll", "d0")
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrInvalidDie)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInvalidDie, cliErr.Code)
}

// TestRoll_BadAliasFile verifies that an alias file with an invalid
// expression fails the command with the config exit code.
func TestRoll_BadAliasFile(t *testing.T) {
	_, err := execute(t, "attack: 3dd\n", "roll", "d6")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestRoll_PipedOutputIsBareTotal verifies text output through a
// non-terminal writer: just the total, no breakdown.
func TestRoll_PipedOutputIsBareTotal(t *testing.T) {
	out, err := execute(t, "", "roll", "--seed", "5", "9")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

// TestRenderText verifies both text renderings from one result.
func TestRenderText(t *testing.T) {
	result := dice.RollResult{
		Rolls: []dice.DieRoll{
			{Die: dice.Die{Sides: 8}, Value: 5},
			{Die: dice.Die{Sides: 4}, Value: 2},
		},
		Modifier: -1,
	}

	assert.Equal(t, "(d8 -> 5) + (d4 -> 2) + (modifier -> -1) = 6", renderText(result, true))
	assert.Equal(t, "6", renderText(result, false))
}

// TestBuildReport verifies the RollResult-to-RollReport mapping.
func TestBuildReport(t *testing.T) {
	expr, err := dice.Parse("d8 + 2d4 + -7")
	require.NoError(t, err)

	result := dice.RollResult{
		Rolls: []dice.DieRoll{
			{Die: dice.Die{Sides: 8}, Value: 5},
			{Die: dice.Die{Sides: 4}, Value: 2},
			{Die: dice.Die{Sides: 4}, Value: 3},
		},
		Modifier: -7,
	}

	report := buildReport(expr, result, 77)
	assert.Equal(t, model.RollReport{
		Expression: "1d8 + 2d4 + -7",
		Rolls: []model.ReportedDie{
			{Die: "d8", Value: 5},
			{Die: "d4", Value: 2},
			{Die: "d4", Value: 3},
		},
		Modifier: -7,
		Total:    3,
		Seed:     77,
	}, report)
}
