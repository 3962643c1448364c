package sanitize

import (
	"sort"
	"strings"
	"unicode"
)

// htmlDirSuffixes mark directories of browser-saved pages ("page.html" next
// to "page_files/"). Shortening must leave such a suffix verbatim or the
// saved page stops resolving its resources. Ordered longest first so the
// most specific suffix wins.
var htmlDirSuffixes = []string{".html_files", "_files", " Files", ".files", "-files"}

// splitHTMLDirSuffix detaches a recognized saved-page suffix. Returns the
// body, the suffix ("" when absent).
func splitHTMLDirSuffix(name string) (body, suffix string) {
	for _, s := range htmlDirSuffixes {
		if strings.HasSuffix(name, s) {
			return strings.TrimSuffix(name, s), s
		}
	}
	return name, ""
}

// digitDensityThreshold selects the digit-preserving branch of ShortenName.
// Names above it are treated as primarily numeric (dates, IDs, timestamps).
const digitDensityThreshold = 0.33

// ShrinkOptions parameterizes ShrinkMiddle. The zero value is not useful;
// start from DefaultShrink.
type ShrinkOptions struct {
	KeepStart int    // runes preserved from the front
	KeepEnd   int    // runes preserved from the back
	Separator string // joins the kept parts
	// FallbackToOriginal returns the input unshortened when the budget is
	// smaller than the kept tail, instead of collapsing to tail-only.
	FallbackToOriginal bool
	// IgnoreSavedPageSuffix disables the saved-page suffix override. Set
	// for extensions: ".files" is an extension body there, not a
	// browser-saved directory.
	IgnoreSavedPageSuffix bool
}

// DefaultShrink keeps three runes on each side joined by an underscore.
var DefaultShrink = ShrinkOptions{KeepStart: 3, KeepEnd: 3, Separator: "_"}

// ShrinkMiddle shortens a name to maxLength runes by removing characters
// from the middle, keeping a fixed prefix and suffix. A saved-page suffix
// becomes the kept tail verbatim with no separator. When the budget cannot
// cover both kept parts the prefix is dropped first, then (unless
// FallbackToOriginal is set) the whole budget goes to the tail.
func ShrinkMiddle(name string, maxLength int, opts ShrinkOptions) string {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name
	}

	keepStart, keepEnd, sep := opts.KeepStart, opts.KeepEnd, opts.Separator
	if !opts.IgnoreSavedPageSuffix {
		if _, suffix := splitHTMLDirSuffix(name); suffix != "" {
			keepEnd = len([]rune(suffix))
			sep = "" // the suffix already reads as a separator
		}
	}

	middleMax := maxLength - keepStart - keepEnd - len([]rune(sep))
	if middleMax < 0 { // prioritize the end
		keepStart = 0
		middleMax = maxLength - keepEnd - len([]rune(sep))
		if middleMax < 0 {
			if opts.FallbackToOriginal {
				return name
			}
			sep = ""
			keepEnd = maxLength
			middleMax = 0
		}
	}

	start := runes[:keepStart]
	end := runes[len(runes)-keepEnd:]
	middle := runes[keepStart : len(runes)-keepEnd]
	if middleMax < len(middle) {
		middle = middle[:middleMax]
	}

	return string(start) + string(middle) + sep + string(end)
}

// toCamelCase compacts a name by dropping non-alphanumeric separators and
// capitalizing the letter after each, leaving everything else lowercase
// (first rune forced lower). When preserveDigitSeparators is set, a
// separator directly between two digits survives so dates keep their shape.
// A saved-page suffix is excluded from compaction and reattached verbatim.
// Identity when the name already fits.
func toCamelCase(name string, maxLength int, preserveDigitSeparators bool) string {
	if len([]rune(name)) <= maxLength {
		return name
	}

	body, suffix := splitHTMLDirSuffix(name)
	runes := []rune(body)

	out := make([]rune, 0, len(runes))
	capitalizeNext := false
	for i, r := range runes {
		if isAlnum(r) {
			if capitalizeNext {
				out = append(out, unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				out = append(out, unicode.ToLower(r))
			}
			continue
		}
		if preserveDigitSeparators &&
			i > 0 && i < len(runes)-1 &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			out = append(out, r)
			capitalizeNext = false
			continue
		}
		capitalizeNext = true
	}
	if len(out) > 0 {
		out[0] = unicode.ToLower(out[0])
	}
	return string(out) + suffix
}

// skipVowels removes English vowels left to right, at most as many as the
// name exceeds its budget by. Identity when the name fits; the saved-page
// suffix is never touched.
func skipVowels(name string, maxLength int) string {
	if len([]rune(name)) <= maxLength {
		return name
	}

	body, suffix := splitHTMLDirSuffix(name)
	runes := []rune(body)

	vowels := 0
	for _, r := range runes {
		if isVowel(r) {
			vowels++
		}
	}

	toRemove := len(runes) - maxLength
	if toRemove > vowels {
		toRemove = vowels
	}

	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if isVowel(r) && toRemove > 0 {
			toRemove--
			continue
		}
		out = append(out, r)
	}
	return string(out) + suffix
}

// findNonDigitRuns returns the maximal non-digit substrings that sit
// strictly between two digits ("1abc2def3" yields "abc", "def").
func findNonDigitRuns(name string) []string {
	var runs []string
	var current []rune
	betweenDigits := false
	for _, r := range name {
		switch {
		case unicode.IsDigit(r):
			if betweenDigits && len(current) > 0 {
				runs = append(runs, string(current))
				current = current[:0]
			}
			betweenDigits = true
		case betweenDigits:
			current = append(current, r)
		}
	}
	// A trailing run has no digit after it and is not between digits.
	return runs
}

// condReplaceNonDigitRuns replaces multi-character non-digit runs between
// digits with a single underscore, shortest runs first, stopping as soon as
// the name fits. Each replacement applies to every occurrence of the run.
func condReplaceNonDigitRuns(name string, maxLength int) string {
	runs := findNonDigitRuns(name)
	candidates := runs[:0]
	for _, run := range runs {
		if len([]rune(run)) > 1 {
			candidates = append(candidates, run)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len([]rune(candidates[i])) < len([]rune(candidates[j]))
	})

	res := name
	for _, run := range candidates {
		if len([]rune(res)) <= maxLength {
			break
		}
		res = strings.ReplaceAll(res, run, "_")
	}
	return res
}

// trimBeforeFirstDigit removes characters from the end of the non-digit
// prefix preceding the first digit, never more than needed and never more
// than the prefix holds. Identity when the name fits or has no digits.
func trimBeforeFirstDigit(name string, maxLength int) string {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name
	}

	firstDigit := -1
	for i, r := range runes {
		if unicode.IsDigit(r) {
			firstDigit = i
			break
		}
	}
	if firstDigit < 0 {
		return name
	}

	toRemove := len(runes) - maxLength
	if toRemove > firstDigit {
		toRemove = firstDigit
	}
	return string(runes[:firstDigit-toRemove]) + string(runes[firstDigit:])
}

// trimAfterLastDigit removes characters from the start of the non-digit
// suffix following the last digit, with the same bounding as
// trimBeforeFirstDigit.
func trimAfterLastDigit(name string, maxLength int) string {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name
	}

	lastDigit := -1
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			lastDigit = i
			break
		}
	}
	if lastDigit < 0 {
		return name
	}

	tailLen := len(runes) - lastDigit - 1
	toRemove := len(runes) - maxLength
	if toRemove > tailLen {
		toRemove = tailLen
	}
	return string(runes[:lastDigit+1]) + string(runes[lastDigit+1+toRemove:])
}

// removeNonDigits drops remaining non-digit runes front to back until the
// name fits or only digits remain.
func removeNonDigits(name string, maxLength int) string {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name
	}

	nonDigits := 0
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			nonDigits++
		}
	}
	toRemove := len(runes) - maxLength
	if toRemove > nonDigits {
		toRemove = nonDigits
	}

	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if !unicode.IsDigit(r) && toRemove > 0 {
			toRemove--
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// shortenDigitName is the digit-preserving cascade for names whose content
// is mostly numeric: sacrifice the text around and between digit groups
// first, and only fall back to blunt middle-shrinking when the digits alone
// still exceed the budget.
func shortenDigitName(name string, maxLength int) string {
	name = condReplaceNonDigitRuns(name, maxLength)
	name = trimBeforeFirstDigit(name, maxLength)
	name = trimAfterLastDigit(name, maxLength)
	name = removeNonDigits(name, maxLength)
	return ShrinkMiddle(name, maxLength, DefaultShrink)
}

func digitProportion(name string) float64 {
	runes := []rune(name)
	if len(runes) == 0 {
		return 0
	}
	digits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(len(runes))
}

// ShortenOptions carries the mode flags for ShortenName.
type ShortenOptions struct {
	// PreserveLeft truncates from the right instead of applying the
	// compaction cascade. Used for extensions, where the leading characters
	// (".htm", ".db") carry the meaning.
	PreserveLeft bool
	// FallbackToOriginal is forwarded to the final middle-shrink stage.
	FallbackToOriginal bool
}

// ShortenName reduces a name to at most maxLength runes, losing structure
// and readability before digits. Stages engage in order, each only while
// the name still exceeds the budget: camel-case compaction, vowel skipping,
// then either the digit-preserving cascade (digit-dense names) or a plain
// middle-shrink. Identity when the name already fits; idempotent for a
// fixed budget.
func ShortenName(name string, maxLength int, opts ShortenOptions) string {
	if len([]rune(name)) <= maxLength {
		return name
	}

	if opts.PreserveLeft {
		return ShrinkMiddle(name, maxLength, ShrinkOptions{
			KeepStart:             maxLength,
			IgnoreSavedPageSuffix: true,
		})
	}

	name = toCamelCase(name, maxLength, true)
	name = skipVowels(name, maxLength)

	if digitProportion(name) > digitDensityThreshold {
		return shortenDigitName(name, maxLength)
	}
	shrink := DefaultShrink
	shrink.FallbackToOriginal = opts.FallbackToOriginal
	return ShrinkMiddle(name, maxLength, shrink)
}

func isAlnum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
