package sanitize

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits untouched", "report.txt", 50, "report.txt"},
		{"saved-page dir", "some-html_files", 9, "som_files"},
		{"cyrillic saved-page dir", "живой журнал_files", 9, "zhv_files"},
		{"cyrillic fits after translit", "психология памяти", 30, "psikhologija_pamjati"},
		{
			"long english title",
			"The Woman Who Never Forgets - - science news articles online technology magazine articles The Woman Who Never Forgets",
			30,
			"thWmnWhNvrFrgtsScncNwsrtcl_gts",
		},
		{
			"cyrillic pangram",
			"Эй, жлоб! Где:туз? Прячь юных съёмщиц в шкаф.",
			37,
			"jZhlbGdjTzPrjchjhhnyhkhSqhjmxhcVShkaf",
		},
		{"cyrillic screenshot 50", "скриншот упоротый 2024-07-06 в 20.56.55 лол", 50, "skrinshot_uporotyhji_2024-07-06_v_20.56.55_lol"},
		{"cyrillic screenshot 40", "скриншот упоротый 2024-07-06 в 20.56.55 лол", 40, "skrnshotUporotyhji2024-07-06V20.56.55Lol"},
		{"cyrillic screenshot 30", "скриншот упоротый 2024-07-06 в 20.56.55 лол", 30, "skrnshtpr2024-07-06V20.56.55Ll"},
		{"cyrillic screenshot 20", "скриншот упоротый 2024-07-06 в 20.56.55 лол", 20, "2024-07-06V20.56.55l"},
		{"cyrillic screenshot 10", "скриншот упоротый 2024-07-06 в 20.56.55 лол", 10, "202407_655"},
		{"python artifact untouched", "__init__.cpython-38.pyc", 50, "__init__.cpython-38.pyc"},
		{"timezone name untouched", "GMT+7", 50, "GMT+7"},
		{"lock file", ".~lock.canned_responses.csv#", 50, ".tilde_lock.canned_responses.csv_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in, tt.max); got != tt.want {
				t.Errorf("Name(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestNameEmptyGetsPlaceholder(t *testing.T) {
	got := Name("", 50)
	if !strings.HasPrefix(got, "unnamed_") {
		t.Errorf("Name(\"\") = %q, want unnamed_ prefix", got)
	}
}

func TestNamePath(t *testing.T) {
	in := "media/k/R/misc/aufg/Erweiterung/aufg/Intellekt/знание/hum/психпед/психо/психология памяти/The Woman Who Never Forgets - - science news articles online technology magazine articles The Woman Who Never Forgets"
	want := "media/k/R/misc/aufg/Erweiterung/aufg/Intellekt/znanije/hum/psikhpjed/psikho/psikhologija_pamjati/thWmnWhNvrFrgtsScncNwsrtcl_gts"

	parts := strings.Split(in, "/")
	clean := make([]string, len(parts))
	for i, p := range parts {
		clean[i] = Name(p, 30)
	}
	if got := strings.Join(clean, "/"); got != want {
		t.Errorf("per-segment Name = %q, want %q", got, want)
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ntfs stream suffix", ".db:encryptable", ".db_e"},
		{"short with colon", ".d:b", ".d_b"},
		{"cyrillic", ".хуй", ".khuj"},
		{"html untouched", ".html", ".html"},
		{"files keeps its dot", ".files", ".file"},
		{"txt untouched", ".txt", ".txt"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ext(tt.in, 4); got != tt.want {
				t.Errorf("Ext(%q, 4) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Whatever goes in, the output obeys the budget, contains no illegal or
// whitespace runes, and survives a second pass unchanged.
func TestNameProperties(t *testing.T) {
	inputs := []string{
		"plain",
		"with spaces and  runs",
		`all<the>bad:ones"here/and\there|too?yes*`,
		"живой журнал и Grüße",
		"Screenshot 2024-07-06 at 20.56.55.png",
		"ends with dots...",
		"",
	}
	for _, in := range inputs {
		for _, max := range []int{8, 30, 255} {
			got := Name(in, max)

			if got == "" {
				t.Errorf("Name(%q, %d) returned empty", in, max)
			}
			if n := utf8.RuneCountInString(got); n > max {
				t.Errorf("Name(%q, %d) = %q, %d runes over budget", in, max, got, n-max)
			}
			if strings.ContainsAny(got, `<>:"/\|?* `) {
				t.Errorf("Name(%q, %d) = %q, contains illegal runes", in, max, got)
			}
			for _, r := range got {
				if unicode.In(r, unicode.C) {
					t.Errorf("Name(%q, %d) = %q, contains control rune %U", in, max, got, r)
				}
			}
			if in != "" { // placeholder suffix is random
				if again := Name(got, max); again != got {
					t.Errorf("Name(%q, %d) unstable: %q then %q", in, max, got, again)
				}
			}
		}
	}
}
