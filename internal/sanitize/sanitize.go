package sanitize

import "strings"

// Name produces a filesystem-safe name of at most maxLength runes. Order
// matters: illegal characters go first (that stage also normalizes
// unicode, which transliteration depends on for decomposed umlauts), then
// transliteration, then shortening.
func Name(name string, maxLength int) string {
	name = RemoveBadChars(name)
	name = Transliterate(name)
	return ShortenName(name, maxLength, ShortenOptions{})
}

// Ext sanitizes a file extension including its leading dot. Extensions
// keep their leading runes instead of going through the compaction
// cascade, so ".db:encryptable" becomes ".db_e" rather than losing the
// part that identifies the type. The budget excludes the dot.
func Ext(ext string, maxExtLen int) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	ext = RemoveBadChars(ext)
	ext = Transliterate(ext)
	return ShortenName(ext, maxExtLen+1, ShortenOptions{PreserveLeft: true})
}
