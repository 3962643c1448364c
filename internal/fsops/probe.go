package fsops

import (
	"os"
	"time"
)

// Probe is the real-filesystem implementation of the planner's Prober.
type Probe struct{}

// Exists reports whether anything sits at path, a broken symlink included.
// A dangling link at a proposed target would still make the rename
// destructive.
func (Probe) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsSymlink reports whether path is a symbolic link.
func (Probe) IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// CreationTime returns the best available creation timestamp for path.
// Filesystems disagree about what they record; see creationTime per OS.
func (Probe) CreationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return creationTime(info), nil
}
