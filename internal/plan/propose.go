package plan

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/namesafe/namesafe/internal/sanitize"
)

// Kind selects what a batch of paths contains. Files and directories are
// proposed and executed as separate batches: directory renames change the
// prefixes of every path below them.
type Kind string

const (
	KindFiles Kind = "files"
	KindDirs  Kind = "dirs"
)

// symlinkExt replaces whatever extension a symlink had. Symlinks are not
// renamed but swapped for placeholder text files, and the extension marks
// them as such.
const symlinkExt = ".slk"

// Prober answers the filesystem questions proposal building needs, without
// the planner touching the filesystem itself. Tests substitute a fake.
type Prober interface {
	Exists(path string) bool
	IsSymlink(path string) bool
	CreationTime(path string) (time.Time, error)
}

// Options configures a proposal batch.
type Options struct {
	Kind Kind
	// MaxFullNameLen bounds the complete base name, extension included,
	// in runes.
	MaxFullNameLen int
	// MaxExtLen bounds the extension in runes, leading dot not counted.
	MaxExtLen int
	// ReplaceSymlinks marks symlinks for replacement with .slk placeholders
	// instead of renaming them like regular files.
	ReplaceSymlinks bool
}

// Change is one proposed rename.
type Change struct {
	From string
	To   string
}

// Proposal is an ordered set of proposed renames. Order is insertion order,
// which callers arrange to be deepest-path-first; execution depends on it.
type Proposal struct {
	keys    []string
	changes map[string]string
}

func NewProposal() *Proposal {
	return &Proposal{changes: make(map[string]string)}
}

// Set records or overwrites the proposed target for oldPath. A path seen for
// the first time goes to the end of the order; overwriting keeps position.
func (p *Proposal) Set(oldPath, newPath string) {
	if _, ok := p.changes[oldPath]; !ok {
		p.keys = append(p.keys, oldPath)
	}
	p.changes[oldPath] = newPath
}

func (p *Proposal) Get(oldPath string) (string, bool) {
	newPath, ok := p.changes[oldPath]
	return newPath, ok
}

func (p *Proposal) Len() int { return len(p.keys) }

// Changes returns the proposed renames in insertion order.
func (p *Proposal) Changes() []Change {
	out := make([]Change, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Change{From: k, To: p.changes[k]})
	}
	return out
}

// splitExt splits a base name into stem and extension. A leading dot does
// not start an extension: ".bashrc" is all stem.
func splitExt(base string) (stem, ext string) {
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return base, ""
	}
	return base[:i], base[i:]
}

// Propose computes sanitized target paths for a batch. Paths whose sanitized
// name equals the current one are left out. A target that already exists on
// disk aborts the batch with a *CollisionError: at proposal time nothing has
// been renamed yet, so an existing target can only be an unrelated file.
func Propose(paths []string, opts Options, probe Prober) (*Proposal, error) {
	proposal := NewProposal()
	for _, oldPath := range paths {
		parentDir := filepath.Dir(oldPath)
		oldBase := filepath.Base(oldPath)

		var stem, ext string
		switch {
		case opts.ReplaceSymlinks && probe.IsSymlink(oldPath):
			stem, ext = oldBase, symlinkExt
		case opts.Kind == KindFiles:
			stem, ext = splitExt(oldBase)
		default:
			stem, ext = oldBase, ""
		}

		// The stem budget is what the extension leaves over. An extension
		// longer than the whole budget leaves nothing.
		budget := opts.MaxFullNameLen - len([]rune(ext))
		if budget < 0 {
			budget = 0
		}

		newBase := sanitize.Name(stem, budget) + sanitize.Ext(ext, opts.MaxExtLen)
		newPath := filepath.Join(parentDir, newBase)

		if newPath == oldPath {
			continue
		}
		if probe.Exists(newPath) {
			return nil, &CollisionError{OldPath: oldPath, NewPath: newPath}
		}
		proposal.Set(oldPath, newPath)
	}
	return proposal, nil
}
