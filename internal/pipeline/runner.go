package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/namesafe/namesafe/internal/config"
	"github.com/namesafe/namesafe/internal/display"
	"github.com/namesafe/namesafe/internal/fsops"
	"github.com/namesafe/namesafe/internal/logging"
	"github.com/namesafe/namesafe/internal/plan"
	"github.com/namesafe/namesafe/internal/report"
)

// Run is the top-level entry point. It prepares the working tree
// (copying it first unless the run is in place), builds and logs the
// proposals for files and then directories, executes them when renaming
// is enabled, and finishes with the long-path sweep.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	root := cfg.Path
	if cfg.WhereToCopy != "" && !cfg.InPlace {
		log.Info("Renaming will be done in a copy. Copying %s -> %s ...", cfg.Path, cfg.WhereToCopy)
		bytes, err := fsops.CopyDirectory(cfg.Path, cfg.WhereToCopy)
		if err != nil {
			log.Error("Copying failed, nothing was renamed: %v", err)
			return stats, fmt.Errorf("copying %s: %w", cfg.Path, err)
		}
		log.Success("Copied %s", display.FormatBytes(bytes))
		stats.BytesCopied = bytes
		root = cfg.WhereToCopy
	}

	logsDir, err := report.CreateLogsDir()
	if err != nil {
		return stats, err
	}
	log.Debug(cfg.Verbose, "Logs dir: %s", logsDir)

	dirs, files, err := fsops.Discover(root)
	if err != nil {
		log.Error("Path discovery failed: %v", err)
		return stats, err
	}
	log.Info("Found %d files and %d directories", len(files), len(dirs))

	var probe fsops.Probe
	for _, batch := range []struct {
		kind  plan.Kind
		paths []string
	}{
		{plan.KindFiles, files},
		{plan.KindDirs, dirs},
	} {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return stats, ctx.Err()
		}
		if err := runKind(ctx, cfg, log, logsDir, batch.kind, batch.paths, probe, &stats); err != nil {
			return stats, err
		}
	}

	if err := sweepLongPaths(cfg, log, logsDir, root, &stats); err != nil {
		return stats, err
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// runKind proposes, logs, and optionally executes the renames for one
// kind of path.
func runKind(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	logsDir string,
	kind plan.Kind,
	paths []string,
	probe fsops.Probe,
	stats *RunStats,
) error {
	log.Info("Renaming %s...", kind)

	opts := plan.Options{
		Kind:            kind,
		MaxFullNameLen:  cfg.MaxNameLen,
		MaxExtLen:       cfg.MaxExtLen,
		ReplaceSymlinks: cfg.ReplaceSymlinks,
	}
	proposal, err := plan.Propose(paths, opts, probe)
	if err != nil {
		var coll *plan.CollisionError
		if errors.As(err, &coll) {
			log.Error("%v", coll)
			log.Error("Exiting to prevent potential data loss")
		}
		return err
	}
	plan.ResolveTwins(paths, proposal, probe)

	changes := proposal.Changes()
	switch kind {
	case plan.KindFiles:
		stats.ProposedFiles = len(changes)
	case plan.KindDirs:
		stats.ProposedDirs = len(changes)
	}

	logPath, err := report.WriteProposedChanges(logsDir, kind, changes)
	if err != nil {
		return err
	}
	log.Info("Proposed %d changes for %s, saved to %s", len(changes), kind, logPath)
	if cfg.Verbose {
		for _, c := range changes {
			log.Debug(true, "  %s -> %s", filepath.Base(c.From), filepath.Base(c.To))
		}
	}

	if !cfg.Rename {
		log.Info("This is a dry run, nothing renamed")
		return nil
	}

	renamed, failures := executeRenames(ctx, log, changes, cfg.ReplaceSymlinks)
	switch kind {
	case plan.KindFiles:
		stats.RenamedFiles = renamed
	case plan.KindDirs:
		stats.RenamedDirs = renamed
	}
	stats.Failed += len(failures)
	for _, f := range failures {
		log.Error("Rename failed: %s -> %s: %v", f.From, f.To, f.Err)
	}
	return nil
}

// sweepLongPaths reports the paths still over the full-path budget
// after renaming.
func sweepLongPaths(cfg *config.Config, log *logging.Logger, logsDir, root string, stats *RunStats) error {
	log.Info("Searching for long paths...")
	longPaths, err := fsops.FindLongPaths(root, cfg.MaxPathLen)
	if err != nil {
		return err
	}
	stats.LongPaths = len(longPaths)

	logPath, err := report.WriteLongPaths(logsDir, longPaths)
	if err != nil {
		return err
	}

	if len(longPaths) > 0 {
		log.Warn("%d full paths are still longer than %d characters, see %s",
			len(longPaths), cfg.MaxPathLen, logPath)
	} else {
		log.Success("All paths are within the limits")
	}
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	if cfg.Rename {
		log.Info("Done: %d proposed, %d renamed, %d failed", stats.Proposed(), stats.Renamed(), stats.Failed)
	} else {
		log.Info("Done (dry run): %d changes proposed", stats.Proposed())
	}
	if stats.BytesCopied > 0 {
		log.Info("  Copied before renaming: %s", display.FormatBytes(stats.BytesCopied))
	}
	if stats.Failed > 0 {
		log.Warn("  Some renames failed, see the errors above")
	}
}
