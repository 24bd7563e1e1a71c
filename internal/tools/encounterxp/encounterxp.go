// Package encounterxp implements the encounter-xp command: it sums the XP
// thresholds of a party for one or all difficulty tiers.
package encounterxp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/encounter-xp/internal/core/encounter"
	"github.com/louisbranch/encounter-xp/internal/core/encounter/table"
	"github.com/louisbranch/encounter-xp/internal/platform/config"
	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

// Version is reported by -version.
var Version = "0.1.0"

// Config holds encounter-xp command configuration.
type Config struct {
	Levels      string
	Difficulty  string
	TablePath   string `env:"ENCOUNTER_XP_TABLE_PATH"`
	Verbose     bool   `env:"ENCOUNTER_XP_VERBOSE"`
	ShowVersion bool

	// pathSet records an explicit -path flag, so -path "" reads a file named
	// "" instead of falling back to the embedded table.
	pathSet bool
}

// ParseConfig parses environment defaults and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	const (
		levelsUsage     = "space or comma separated levels of the adventurers in the encounter"
		difficultyUsage = "difficulty either (e)asy, (m)edium, (h)ard or (d)eadly; omit for all four"
		pathUsage       = "path to a JSON or YAML encounter table (defaults to the DMG table)"
		verboseUsage    = "log parsing and table details to stderr"
	)
	fs.StringVar(&cfg.Levels, "levels", cfg.Levels, levelsUsage)
	fs.StringVar(&cfg.Levels, "l", cfg.Levels, levelsUsage+" (shorthand)")
	fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, difficultyUsage)
	fs.StringVar(&cfg.Difficulty, "d", cfg.Difficulty, difficultyUsage+" (shorthand)")
	fs.StringVar(&cfg.TablePath, "path", cfg.TablePath, pathUsage)
	fs.StringVar(&cfg.TablePath, "p", cfg.TablePath, pathUsage+" (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, verboseUsage)
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, verboseUsage+" (shorthand)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}
	levelsSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "levels", "l":
			levelsSet = true
		case "path", "p":
			cfg.pathSet = true
		}
	})
	if !levelsSet {
		return Config{}, errors.New("levels is required")
	}
	return cfg, nil
}

// Run computes the encounter budget and writes it to out. Diagnostics go to
// errOut when cfg.Verbose is set.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		return errors.New("output is required")
	}
	if errOut == nil || !cfg.Verbose {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	if cfg.ShowVersion {
		_, err := fmt.Fprintf(out, "encounter-xp %s\n", Version)
		return err
	}

	levels, err := encounter.ParseLevels(cfg.Levels)
	if err != nil {
		logger.Printf("levels: %s", apperrors.CodeOf(err))
		return err
	}
	logger.Printf("levels: %v", levels)

	tier, selected := encounter.ParseDifficulty(cfg.Difficulty)
	switch {
	case selected:
		logger.Printf("difficulty: %s", tier)
	case cfg.Difficulty != "":
		logger.Printf("difficulty %q not recognized, reporting all tiers", cfg.Difficulty)
	default:
		logger.Printf("difficulty: all tiers")
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	t, err := loadTable(cfg)
	if err != nil {
		logger.Printf("table: %s", apperrors.CodeOf(err))
		return err
	}
	if cfg.TablePath == "" && !cfg.pathSet {
		logger.Printf("table: embedded default")
	} else {
		logger.Printf("table: %s (%s)", cfg.TablePath, table.FormatForPath(cfg.TablePath))
	}

	outcome, err := encounter.FormatOutcome(t, levels, tier, selected)
	if err != nil {
		logger.Printf("outcome: %s", apperrors.CodeOf(err))
		return err
	}
	_, err = fmt.Fprintln(out, outcome)
	return err
}

func loadTable(cfg Config) (table.Table, error) {
	if cfg.pathSet {
		return table.LoadFile(cfg.TablePath)
	}
	return table.Load(cfg.TablePath)
}
