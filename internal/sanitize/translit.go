package sanitize

import (
	"strings"
	"unicode"
)

// cyrillicScheme maps every Russian letter to a unique 1-2 Latin-letter code.
// The scheme is reversible: "h" appears only as the second letter of a pair
// and "j" only as the first, so decoding is unambiguous. Changing any entry
// breaks that property; see TestCyrillicSchemeReversible.
var cyrillicScheme = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "je",
	'ё': "jo",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "ji",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "kh",
	'ц': "c",
	'ч': "ch",
	'ш': "sh",
	'щ': "xh",
	'ъ': "qh",
	'ы': "yh",
	'ь': "jh",
	'э': "e",
	'ю': "uh",
	'я': "ja",
}

// germanScheme maps German letters plus common Romance/Iberian loan accents
// to unaccented ASCII. Unlike the Cyrillic scheme this pass is lossy.
var germanScheme = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
	'é': "e",
	'ç': "c",
	'à': "a",
	'è': "e",
	'ì': "i",
	'ò': "o",
	'ù': "u",
	'ñ': "n",
	'ï': "i",
}

// applyScheme maps each rune of text through scheme, preserving case: an
// uppercase source rune yields the replacement upper-cased as a whole
// ("Ö" becomes "OE", not "Oe"). Unmapped runes pass through unchanged.
func applyScheme(text string, scheme map[rune]string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsUpper(r) {
			if repl, ok := scheme[unicode.ToLower(r)]; ok {
				b.WriteString(strings.ToUpper(repl))
				continue
			}
		} else if repl, ok := scheme[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Transliterate converts Cyrillic and German/accented Latin letters to ASCII
// approximations. The Cyrillic pass runs first: the Latin pass folds accents
// generically and must not touch Cyrillic input before it has been expanded.
func Transliterate(text string) string {
	text = applyScheme(text, cyrillicScheme)
	text = applyScheme(text, germanScheme)
	return text
}
