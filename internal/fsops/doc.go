// Package fsops contains the filesystem legwork: tree discovery in rename-safe
// order, long-path detection, verified recursive copying, symlink replacement,
// and the creation-time probe that the planner consults.
package fsops
