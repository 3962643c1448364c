// Package check provides target diagnostics (--check mode) and
// pre-pipeline validation of the target directory.
package check

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/namesafe/namesafe/internal/config"
	"github.com/namesafe/namesafe/internal/fsops"
)

// Sentinel errors returned by CheckTarget when the target is unusable.
var (
	ErrPathNotFound   = errors.New("target path does not exist")
	ErrNotADirectory  = errors.New("target path is not a directory")
	ErrPathNotListed  = errors.New("target path cannot be listed")
	ErrCopyDestExists = errors.New("copy destination already exists")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: verifies the target is a
// readable directory, probes whether its filesystem folds name case,
// and reports symlink, junk file, and over-budget path counts.
// Findings are informational; the return value only reflects whether
// the target itself is usable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Target Check ===")

	if !checkTargetDir(cfg.Path, log) {
		return false
	}
	checkCaseFolding(cfg.Path, log)
	checkContents(cfg, log)
	return true
}

// CheckTarget is the pre-pipeline validation: the target must be a
// listable directory, and in copy mode the destination must not already
// exist. Returns a sentinel error on failure.
func CheckTarget(cfg *config.Config) error {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return ErrPathNotFound
	}
	if !info.IsDir() {
		return ErrNotADirectory
	}
	if _, err := os.ReadDir(cfg.Path); err != nil {
		return ErrPathNotListed
	}
	if cfg.WhereToCopy != "" && !cfg.InPlace {
		if _, err := os.Stat(cfg.WhereToCopy); err == nil {
			return ErrCopyDestExists
		}
	}
	return nil
}

// checkTargetDir verifies the target exists and can be listed.
func checkTargetDir(path string, log Logger) bool {
	info, err := os.Stat(path)
	if err != nil {
		log.Error("Target not found: %s", path)
		return false
	}
	if !info.IsDir() {
		log.Error("Target is not a directory: %s", path)
		return false
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Error("Target cannot be listed: %v", err)
		return false
	}
	log.Success("Target: %s (%d top-level entries)", path, len(entries))
	return true
}

// checkCaseFolding probes whether the target filesystem treats names
// case-insensitively. On such filesystems twin handling will kick in
// during renames.
func checkCaseFolding(path string, log Logger) {
	probe, err := os.CreateTemp(path, ".namesafe-probe-*")
	if err != nil {
		log.Warn("Cannot probe case sensitivity: %v", err)
		return
	}
	name := probe.Name()
	probe.Close()
	defer os.Remove(name)

	upper := filepath.Join(filepath.Dir(name), strings.ToUpper(filepath.Base(name)))
	if _, err := os.Lstat(upper); err == nil {
		log.Warn("Filesystem folds name case, expect twin renames")
	} else {
		log.Success("Filesystem is case sensitive")
	}
}

// checkContents walks the tree once and reports what a run would face.
func checkContents(cfg *config.Config, log Logger) {
	var symlinks, junk int
	err := filepath.WalkDir(cfg.Path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&os.ModeSymlink != 0 {
			symlinks++
		}
		if fsops.IsJunk(d.Name()) {
			junk++
		}
		return nil
	})
	if err != nil {
		log.Warn("Walk failed: %v", err)
		return
	}

	if symlinks > 0 {
		if cfg.ReplaceSymlinks {
			log.Info("Symlinks: %d (will be replaced by stub files)", symlinks)
		} else {
			log.Warn("Symlinks: %d (renaming them keeps the link, pass --symlinks to replace)", symlinks)
		}
	} else {
		log.Info("Symlinks: none")
	}
	if junk > 0 {
		log.Info("Junk files (.DS_Store, Thumbs.db): %d", junk)
	}

	longPaths, err := fsops.FindLongPaths(cfg.Path, cfg.MaxPathLen)
	if err != nil {
		log.Warn("Long path scan failed: %v", err)
		return
	}
	if len(longPaths) > 0 {
		log.Warn("Paths over %d characters: %d", cfg.MaxPathLen, len(longPaths))
	} else {
		log.Success("All paths are within %d characters", cfg.MaxPathLen)
	}
}
