// Package sanitize turns arbitrary file and directory names into short,
// portable, ASCII-leaning names.
//
// The work happens in three stages, always in the same order. First the
// character pass removes bytes that are illegal or troublesome on common
// filesystems and normalizes unicode. Then Cyrillic and German letters are
// transliterated into Latin sequences. Last, names over budget are
// shortened through a cascade that sacrifices readability gradually:
// separators, then vowels, then (for digit-heavy names) the text around
// digit groups, and only as a last resort the middle of the name.
//
// All budgets are counted in runes, not bytes. Every stage is the identity
// on names that already satisfy it, which makes the whole pipeline
// idempotent: sanitizing an already sanitized name changes nothing.
package sanitize
