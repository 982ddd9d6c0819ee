// Package config loads the solo CLI's settings and alias files.
//
// Settings come from environment variables (SOLO_*), with command
// flags taking precedence at the call site. Alias files map short
// names to roll expressions and can be written as YAML or JSONC
// (JSON with comments and trailing commas), selected by file
// extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/cjfuller/solo-ttrpg-helper/internal/dice"
	"github.com/cjfuller/solo-ttrpg-helper/internal/model"
)

// Settings holds the environment-sourced configuration.
type Settings struct {
	// Seed is the RNG seed for rolls. Zero means "draw a fresh
	// random seed per invocation". Overridden by --seed.
	Seed int64 `env:"SOLO_SEED"`

	// AliasFile is the path to the alias file. Overridden by
	// --aliases. Empty means the default location.
	AliasFile string `env:"SOLO_ALIASES"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, model.WrapCLIError(model.ExitConfigError, "parse environment settings", err)
	}
	return s, nil
}

// Aliases maps short names (e.g. "attack") to roll expressions
// (e.g. "1d20 + 5").
type Aliases map[string]string

// DefaultAliasPath returns the default alias file location,
// <user config dir>/solo/aliases.yaml.
func DefaultAliasPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "solo", "aliases.yaml"), nil
}

// LoadAliases reads an alias file. The format is chosen by
// extension: .yaml/.yml parse as YAML, .json/.jsonc have comments
// stripped and parse as JSON. Every alias value must itself be a
// valid roll expression; a bad entry fails the whole load.
//
// A missing or unreadable file is a CLIError with ExitConfigError.
// Use LoadDefaultAliases when an absent file should mean "no
// aliases".
func LoadAliases(path string) (Aliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("read alias file %s", path),
			err,
		)
	}

	aliases := Aliases{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &aliases); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("parse alias file %s", path),
				err,
			)
		}
	case ".json", ".jsonc":
		// Strip comments and trailing commas before handing the
		// bytes to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &aliases); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("parse alias file %s", path),
				err,
			)
		}
	default:
		return nil, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("unsupported alias file extension %q (expected .yaml, .yml, .json, or .jsonc)", filepath.Ext(path)),
		)
	}

	for name, expression := range aliases {
		if name == "" {
			return nil, model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("alias file %s contains an empty alias name", path),
			)
		}
		if _, err := dice.Parse(expression); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("alias %q in %s", name, path),
				err,
			)
		}
	}

	return aliases, nil
}

// LoadDefaultAliases loads the alias file from the default location.
// A missing file yields an empty alias set, not an error.
func LoadDefaultAliases() (Aliases, error) {
	path, err := DefaultAliasPath()
	if err != nil {
		return Aliases{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Aliases{}, nil
	}
	return LoadAliases(path)
}
