// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden by [ApplyEnv], and then mutated by [ParseFlags]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Target selection.
	Path        string // Root directory to scan.
	WhereToCopy string // Copy the tree here and rename the copy, keeping the original intact.
	InPlace     bool   // Rename directly under Path.

	// Behavior.
	Rename          bool // Execute renames. Default is propose-only: reports, no changes.
	ReplaceSymlinks bool // Swap symlinks for .slk placeholder text files.
	AssumeYes       bool // Skip interactive confirmations.

	// Budgets, counted in runes.
	MaxNameLen int // Full base name including extension. Default: 30.
	MaxExtLen  int // Extension without the leading dot. Default: 4.
	MaxPathLen int // Whole-path bound used by the long-path report. Default: 64.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ApplyEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		MaxNameLen: 30,
		MaxExtLen:  4,
		MaxPathLen: 64,
		ColorMode:  ColorAuto,
	}
}

// ApplyEnv overrides defaults from the environment, loading a .env file from
// the working directory first when one exists. Recognized variables:
// NAMESAFE_MAX_NAME_LEN, NAMESAFE_MAX_EXT_LEN, NAMESAFE_MAX_PATH_LEN,
// NAMESAFE_LOG, NAMESAFE_COLOR. CLI flags still win over the environment.
func ApplyEnv(cfg *Config) error {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	for _, v := range []struct {
		key  string
		dest *int
	}{
		{"NAMESAFE_MAX_NAME_LEN", &cfg.MaxNameLen},
		{"NAMESAFE_MAX_EXT_LEN", &cfg.MaxExtLen},
		{"NAMESAFE_MAX_PATH_LEN", &cfg.MaxPathLen},
	} {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s must be a whole number (got %q)", v.key, raw)
		}
		*v.dest = n
	}

	if raw := os.Getenv("NAMESAFE_LOG"); raw != "" {
		cfg.LogFile = raw
	}
	if raw := os.Getenv("NAMESAFE_COLOR"); raw != "" {
		switch strings.ToLower(raw) {
		case "auto":
			cfg.ColorMode = ColorAuto
		case "always":
			cfg.ColorMode = ColorAlways
		case "never":
			cfg.ColorMode = ColorNever
		default:
			return fmt.Errorf("NAMESAFE_COLOR must be auto, always or never (got %q)", raw)
		}
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks budgets and the mode flags for consistency.
func (c *Config) Validate() error {
	if c.MaxNameLen <= 0 {
		return errors.New("--max-name-len must be positive")
	}
	if c.MaxExtLen <= 0 {
		return errors.New("--max-ext-len must be positive")
	}
	if c.MaxPathLen <= 0 {
		return errors.New("--max-path-len must be positive")
	}
	if c.MaxExtLen+1 >= c.MaxNameLen {
		return errors.New("--max-ext-len must leave room inside --max-name-len")
	}

	if c.InPlace && c.WhereToCopy != "" {
		return errors.New("choose either --in-place or --where-to-copy, not both")
	}
	if c.Rename && !c.InPlace && c.WhereToCopy == "" {
		return errors.New("--rename needs --in-place or --where-to-copy")
	}

	if c.Path == "" {
		return errors.New("need a target directory (--path)")
	}
	return nil
}

// ValidatePaths ensures the resolved copy destination is not equal to or
// inside the resolved source tree. Copying a tree into itself would recurse
// forever. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, copyAbs string) error {
	sep := string(filepath.Separator)
	if copyAbs == sourceAbs || strings.HasPrefix(copyAbs+sep, sourceAbs+sep) {
		return errors.New("copy destination must not be inside the source directory")
	}
	return nil
}
