// Command namesafe is the CLI entrypoint for the namesafe batch renamer.
//
// It parses flags, validates configuration and paths, and either runs
// target diagnostics (--check) or the sanitize/rename pipeline.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/namesafe/namesafe/internal/check"
	"github.com/namesafe/namesafe/internal/config"
	"github.com/namesafe/namesafe/internal/display"
	"github.com/namesafe/namesafe/internal/logging"
	"github.com/namesafe/namesafe/internal/pipeline"
)

// practicalNameLen is the length of a typical macOS screenshot name.
// Budgets below it shorten names most users would rather keep intact.
const practicalNameLen = len("Screenshot 2024-07-06 at 20.56.55.png")

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "namesafe: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "namesafe: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "namesafe: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "namesafe: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := check.CheckTarget(&cfg); err != nil {
		log.Error("%v: %s", err, cfg.Path)
		return 1
	}

	if !confirmShortBudget(&cfg, log) {
		log.Info("Exiting...")
		return 0
	}

	// Resolve and validate paths: the target must exist, and in copy mode
	// the destination must not sit inside the source (prevents recursive copying).
	sourceAbs, err := absPath(cfg.Path)
	if err != nil {
		log.Error("Target not found: %s", cfg.Path)
		return 1
	}
	if cfg.WhereToCopy != "" && !cfg.InPlace {
		copyAbs, err := filepath.Abs(cfg.WhereToCopy)
		if err != nil {
			log.Error("Cannot resolve copy destination: %s", cfg.WhereToCopy)
			return 1
		}
		if err := cfg.ValidatePaths(sourceAbs, copyAbs); err != nil {
			log.Error("%v", err)
			log.Error("Choose a copy destination outside: %s", cfg.Path)
			return 1
		}
	}

	log.Info("Target: %s", cfg.Path)
	log.Info("Budgets: name %d, ext %d, path %d", cfg.MaxNameLen, cfg.MaxExtLen, cfg.MaxPathLen)
	if !cfg.Rename {
		log.Warn("DRY RUN — nothing will be renamed")
	}
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between renames without corrupting the tree.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current rename…")
		cancel()
	}()

	// Phase 4: Run pipeline (copy → discover → propose → rename → sweep).
	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// confirmShortBudget asks the user to confirm a name budget below the
// practical length. Suppressed by --yes.
func confirmShortBudget(cfg *config.Config, log *logging.Logger) bool {
	if cfg.MaxNameLen >= practicalNameLen {
		return true
	}
	log.Warn("The max name length you selected is shorter than the practical length (%d).", practicalNameLen)
	log.Warn("For example, this one will have to be shortened if you proceed: 'Screenshot 2024-07-06 at 20.56.55.png'.")
	if cfg.AssumeYes {
		return true
	}
	fmt.Print("Do you want to continue? (y/n) ")
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of source vs copy-destination hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
