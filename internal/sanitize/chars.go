package sanitize

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// badChars are illegal on at least one mainstream filesystem (Windows being
// the strictest). Always replaced with underscore.
var badChars = rangetable.New('<', '>', ':', '"', '/', '\\', '|', '?', '*')

// questionableChars are legal on most filesystems but hostile to shells and
// scripts: brackets, braces, guillemets, smart quotes, unicode dashes, and
// assorted punctuation. Replaced with underscore. Kept as a range table so
// the set stays data, not logic.
var questionableChars = rangetable.New(
	'[', ']', '(', ')', '{', '}', '«', '»',
	'!', '@', '#', '%', '^', '=', ';', ',', '`', '’',
	'—', '―', '‒',
)

// specialReplacements are multi-character rewrites applied after the
// questionable-character pass. The apostrophe is deleted outright so
// "Asimov's" reads "Asimovs" rather than "Asimov_s".
var specialReplacements = []struct{ from, to string }{
	{"&", "_and_"},
	{"'", ""},
	{"~", "tilde_"},
}

// placeholderSuffix produces the numeric suffix for synthesized names.
// Package-level so tests can install a deterministic source; the contract is
// only "unlikely to collide", not any particular distribution.
var placeholderSuffix = func() int { return rand.Intn(90000) + 10000 }

func replaceRunes(name string, table *unicode.RangeTable, repl rune) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(table, r) {
			return repl
		}
		return r
	}, name)
}

// removeQuestionableChars rewrites characters that are usually fine for
// filesystems but cause trouble in shells, scripts, and URLs.
func removeQuestionableChars(name string) string {
	name = replaceRunes(name, questionableChars, '_')
	for _, sr := range specialReplacements {
		name = strings.ReplaceAll(name, sr.from, sr.to)
	}
	return name
}

// RemoveBadChars makes a name filesystem-safe without shortening it: illegal
// and risky characters become underscores, control characters are stripped,
// unicode is NFKC-normalized, spaces become underscores, and underscore runs
// are collapsed. Never returns an empty string.
//
// A name that already contains "__" keeps its double underscores: collapsing
// them would rename every "__init__.py" and "__pycache__" in a source tree,
// burying real changes under noise.
func RemoveBadChars(name string) string {
	hadDoubleUnderscore := strings.Contains(name, "__")

	name = replaceRunes(name, badChars, '_')

	// Control characters (category C) can't be replaced meaningfully, drop them.
	name = strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.C) {
			return -1
		}
		return r
	}, name)

	// NFKC folds compatibility variants (fullwidth Latin, NBSP, ligatures)
	// to their standard forms.
	name = norm.NFKC.String(name)

	// Windows rejects names ending in a period or space.
	name = strings.TrimRight(name, ". ")

	name = removeQuestionableChars(name)

	name = strings.ReplaceAll(name, " ", "_")

	if !hadDoubleUnderscore {
		for strings.Contains(name, "__") {
			name = strings.ReplaceAll(name, "__", "_")
		}
	}

	// Leftovers of "word - word" style separators.
	for _, artifact := range []string{"_-_", "_-", "-_"} {
		name = strings.ReplaceAll(name, artifact, "_")
	}

	if name == "" {
		name = fmt.Sprintf("unnamed_%d", placeholderSuffix())
	}
	return name
}
