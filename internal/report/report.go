// Package report writes the per-run log files: proposed changes for
// each kind, and paths that exceed the full-path budget.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/namesafe/namesafe/internal/plan"
)

// CreateLogsDir makes a timestamped directory under results/ for the
// current run and returns its path.
func CreateLogsDir() (string, error) {
	dir := filepath.Join("results", "renaming_results_"+time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating logs dir: %w", err)
	}
	return dir, nil
}

// WriteProposedChanges saves the changes of one kind to
// proposed_<kind>_changes.txt inside logsDir, sorted by old path.
// Each entry is four lines: old base name, new base name, new full
// path, and a blank separator.
func WriteProposedChanges(logsDir string, kind plan.Kind, changes []plan.Change) (string, error) {
	sorted := make([]plan.Change, len(changes))
	copy(sorted, changes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	var b strings.Builder
	for _, c := range sorted {
		b.WriteString(filepath.Base(c.From))
		b.WriteByte('\n')
		b.WriteString(filepath.Base(c.To))
		b.WriteByte('\n')
		b.WriteString(c.To)
		b.WriteString("\n\n")
	}

	path := filepath.Join(logsDir, fmt.Sprintf("proposed_%s_changes.txt", kind))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteLongPaths saves the over-budget paths to long_paths.txt inside
// logsDir, one per line.
func WriteLongPaths(logsDir string, paths []string) (string, error) {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p)
		b.WriteByte('\n')
	}

	path := filepath.Join(logsDir, "long_paths.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
