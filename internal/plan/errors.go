package plan

import "fmt"

// CollisionError reports a proposed target path that already exists on disk
// and does not belong to the current batch. Renaming over it would destroy
// data, so proposal building stops at the first one.
type CollisionError struct {
	OldPath string
	NewPath string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("name collision: proposed %s for %s, but a file with that name already exists", e.NewPath, e.OldPath)
}
