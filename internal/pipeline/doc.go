// Package pipeline orchestrates a sanitizing run: the optional copy
// phase, path discovery, proposal building per kind, twin resolution,
// log writing, the actual renames, and the final long-path sweep.
//
// Renames proceed deepest-first so a directory is never renamed before
// the entries inside it. Files of one kind are renamed before any
// directory moves, matching the discovery order.
package pipeline
