package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// version is shown in --version and help; override at build time with -ldflags "-X main.version=...".
var version = "1.2.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, bad value).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("namesafe", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// Color and exit flags are captured separately and applied after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineTargetFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineBudgetFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "namesafe v"+version)
		os.Exit(0)
	}

	// A bare positional directory is accepted as a convenience for --path.
	if args := fs.Args(); len(args) == 1 && cfg.Path == "" {
		cfg.Path = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	cfg.Path = NormalizeDirArg(cfg.Path)
	cfg.WhereToCopy = NormalizeDirArg(cfg.WhereToCopy)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineTargetFlags registers -p/--path, --where-to-copy, -i/--in-place.
func defineTargetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Path, "path", "", "Directory to scan")
	fs.StringVar(&cfg.Path, "p", "", "Same as --path")
	fs.StringVar(&cfg.WhereToCopy, "where-to-copy", "", "Copy the tree here and rename the copy")
	fs.StringVar(&cfg.WhereToCopy, "w", "", "Same as --where-to-copy")
	fs.BoolVar(&cfg.InPlace, "in-place", false, "Rename directly inside --path")
	fs.BoolVar(&cfg.InPlace, "i", false, "Same as --in-place")
}

// defineBehaviorFlags registers -r/--rename, -s/--symlinks, -y/--yes.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Rename, "rename", false, "Execute renames (default: propose only)")
	fs.BoolVar(&cfg.Rename, "r", false, "Same as --rename")
	fs.BoolVar(&cfg.ReplaceSymlinks, "symlinks", false, "Replace symlinks with .slk placeholder files")
	fs.BoolVar(&cfg.ReplaceSymlinks, "s", false, "Same as --symlinks")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Skip confirmations")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
}

// defineBudgetFlags registers the three rune budgets.
func defineBudgetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.MaxNameLen, "max-name-len", cfg.MaxNameLen, "Longest allowed base name, extension included")
	fs.IntVar(&cfg.MaxExtLen, "max-ext-len", cfg.MaxExtLen, "Longest allowed extension, dot not counted")
	fs.IntVar(&cfg.MaxPathLen, "max-path-len", cfg.MaxPathLen, "Paths longer than this go to the long-path report")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run filesystem diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color overrides into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "namesafe v" + version + " - batch filename sanitizer"},
		{"", ""},
		{"  namesafe [OPTIONS] --path <dir>", ""},
		{"", ""},
		{"Target", ""},
		{"  -p, --path <dir>", "Directory to scan"},
		{"  -w, --where-to-copy <dir>", "Copy the tree there, then rename the copy"},
		{"  -i, --in-place", "Rename directly inside --path"},
		{"", ""},
		{"Behavior", ""},
		{"  -r, --rename", "Execute renames (default: propose only)"},
		{"  -s, --symlinks", "Replace symlinks with .slk placeholders"},
		{"  -y, --yes", "Skip confirmations"},
		{"", ""},
		{"Budgets", ""},
		{"  --max-name-len <n>", "Longest base name incl. extension (default: 30)"},
		{"  --max-ext-len <n>", "Longest extension without dot (default: 4)"},
		{"  --max-path-len <n>", "Long-path report threshold (default: 64)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Filesystem diagnostics (case folding, symlinks)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
