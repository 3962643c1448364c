package pipeline

import (
	"context"
	"os"

	"github.com/namesafe/namesafe/internal/fsops"
	"github.com/namesafe/namesafe/internal/logging"
	"github.com/namesafe/namesafe/internal/plan"
)

const progressEvery = 10000

// RenameFailure records one rename that did not take effect.
type RenameFailure struct {
	From string
	To   string
	Err  error
}

func (f RenameFailure) Error() string { return f.Err.Error() }

// executeRenames applies the changes in order. Failures are collected
// rather than aborting the batch: a half-renamed tree is recoverable
// from the logs, a silently stopped run is not. Returns the number of
// completed renames and the failures.
func executeRenames(
	ctx context.Context,
	log *logging.Logger,
	changes []plan.Change,
	replaceSymlinks bool,
) (int, []RenameFailure) {
	var (
		probe    fsops.Probe
		renamed  int
		failures []RenameFailure
	)

	for i, c := range changes {
		if ctx.Err() != nil {
			log.Warn("Interrupted after %d of %d renames", i, len(changes))
			break
		}

		var err error
		if replaceSymlinks && probe.IsSymlink(c.From) {
			err = fsops.ReplaceSymlink(c.From, c.To)
		} else {
			err = os.Rename(c.From, c.To)
		}
		if err == nil {
			// The rename call succeeding is not enough on quirky
			// filesystems, the new name must actually be there.
			if _, statErr := os.Lstat(c.To); statErr != nil {
				err = statErr
			}
		}

		if err != nil {
			failures = append(failures, RenameFailure{From: c.From, To: c.To, Err: err})
		} else {
			renamed++
		}

		if (i+1)%progressEvery == 0 {
			log.Info("%d of %d", i+1, len(changes))
		}
	}

	return renamed, failures
}
