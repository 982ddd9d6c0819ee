// Package cli — roll.go implements the "solo roll" command.
//
// The roll command joins its positional arguments into one dice
// expression, expands it through the alias table if it names an
// alias, parses it, and rolls it with a seeded random source. The
// seed comes from --seed (or SOLO_SEED), falling back to a fresh
// crypto-random seed that --verbose reports for replay.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cjfuller/solo-ttrpg-helper/internal/config"
	"github.com/cjfuller/solo-ttrpg-helper/internal/dice"
	"github.com/cjfuller/solo-ttrpg-helper/internal/model"
)

// rollFlags holds the flag values for the roll command.
type rollFlags struct {
	// seed selects the RNG seed. Zero means "draw a random one".
	seed int64

	// aliasFile is the alias file path. Empty falls back to
	// SOLO_ALIASES, then the default location.
	aliasFile string
}

// NewRollCommand creates the "roll" cobra command.
func NewRollCommand() *cobra.Command {
	flags := &rollFlags{}

	cmd := &cobra.Command{
		Use:     "roll <expression>...",
		Aliases: []string{"r"},
		Short:   "Roll a dice expression",
		Long: `Roll a dice expression and print the result.

The expression uses standard dice notation: die terms like "2d6" or
"d8" (count defaults to 1) and flat modifiers like "3" or "-1",
joined by "+". Arguments are joined with spaces, so quoting is
optional. If the whole expression matches an alias name from the
alias file, the alias's expression is rolled instead.

On a terminal the full breakdown is printed; when piped, only the
total. --json prints a machine-readable report including the seed.

Examples:
  solo roll 2d6 + 3
  solo r d20
  solo roll attack --seed 1234
  solo roll 4d8 --json`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, flags, args)
		},
	}

	cmd.Flags().Int64Var(&flags.seed, "seed", 0,
		"RNG seed for a reproducible roll (0 draws a random seed)")
	cmd.Flags().StringVar(&flags.aliasFile, "aliases", "",
		"Path to the alias file (default: <config dir>/solo/aliases.yaml)")

	return cmd
}

// runRoll is the main logic for the roll command.
func runRoll(cmd *cobra.Command, flags *rollFlags, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	// Flags override environment settings.
	aliasPath := settings.AliasFile
	if flags.aliasFile != "" {
		aliasPath = flags.aliasFile
	}

	var aliases config.Aliases
	if aliasPath != "" {
		aliases, err = config.LoadAliases(aliasPath)
	} else {
		aliases, err = config.LoadDefaultAliases()
	}
	if err != nil {
		return err
	}

	input := strings.TrimSpace(strings.Join(args, " "))
	if expansion, ok := aliases[input]; ok {
		VerboseLog("Alias %q -> %q", input, expansion)
		input = expansion
	}

	expr, err := dice.Parse(input)
	if err != nil {
		return model.WrapCLIError(model.ExitBadExpression, "invalid roll expression", err)
	}

	seed := flags.seed
	if seed == 0 {
		seed = settings.Seed
	}
	if seed == 0 {
		seed, err = dice.RandomSeed()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "generate roll seed", err)
		}
	}
	VerboseLog("Using seed: %d", seed)

	result, err := expr.Roll(dice.NewSeededSource(seed))
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidDie, fmt.Sprintf("cannot roll %s", expr), err)
	}

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		data, err := json.MarshalIndent(buildReport(expr, result, seed), "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "encode roll report", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, renderText(result, isTerminal(out)))
	return nil
}

// buildReport converts a roll into the JSON output record.
func buildReport(expr dice.Expression, result dice.RollResult, seed int64) model.RollReport {
	rolls := make([]model.ReportedDie, len(result.Rolls))
	for i, roll := range result.Rolls {
		rolls[i] = model.ReportedDie{Die: roll.Die.String(), Value: roll.Value}
	}
	return model.RollReport{
		Expression: expr.String(),
		Rolls:      rolls,
		Modifier:   result.Modifier,
		Total:      result.Total(),
		Seed:       seed,
	}
}

// renderText renders the text-mode output: the full breakdown on a
// terminal, the bare total when piped so the command composes with
// other tools.
func renderText(result dice.RollResult, terminal bool) string {
	if terminal {
		return result.String()
	}
	return strconv.Itoa(result.Total())
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
