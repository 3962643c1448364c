// Package plan builds rename proposals: for each discovered path it computes
// the sanitized target path, refuses proposals that would overwrite unrelated
// existing files, and rewrites groups of paths that would collide on
// case-insensitive filesystems.
//
// Building a plan never touches the filesystem beyond the read-only Prober;
// execution is a separate concern. A Proposal preserves the order paths were
// added in, and execution relies on that order so that directories are
// renamed after their contents.
package plan
