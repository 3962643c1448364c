package fsops

import (
	"fmt"
	"os"
)

// ReplaceSymlink swaps the symlink at oldPath for a plain text file at
// newPath recording where the link used to point, then removes the link.
// Archives travel better without symlinks: most transports either drop
// them or materialize the whole target.
func ReplaceSymlink(oldPath, newPath string) error {
	target, err := os.Readlink(oldPath)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Original symlink: %s\nTarget: %s\nThe file was created by namesafe.", oldPath, target)
	if err := os.WriteFile(newPath, []byte(body), 0644); err != nil {
		return err
	}

	// Re-check before unlinking: only remove what is still a symlink.
	if info, err := os.Lstat(oldPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return os.Remove(oldPath)
	}
	return nil
}
