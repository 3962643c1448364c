package sanitize

import (
	"testing"
	"unicode/utf8"
)

func TestShrinkMiddle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		opts ShrinkOptions
		want string
	}{
		{"fits untouched", "sun", 10, DefaultShrink, "sun"},
		{"basic", "hello-world", 10, DefaultShrink, "hello-_rld"},
		{"keeps both ends", "lenthy-name-with-ind-5", 10, DefaultShrink, "lenthy_d-5"},
		{"tight budget", "lenthy-name-with-ind-5", 8, DefaultShrink, "lent_d-5"},
		{"no middle left", "lenthy-name-with-ind-5", 7, DefaultShrink, "len_d-5"},
		{"saved-page suffix wins", "some-html_files", 9, DefaultShrink, "som_files"},
		{"budget below kept tail", "some-lengthy-string", 3, DefaultShrink, "ing"},
		{
			"oversized keeps degrade to tail",
			"short", 3,
			ShrinkOptions{KeepStart: 10, KeepEnd: 10},
			"ort",
		},
		{
			"fallback returns original",
			"short", 3,
			ShrinkOptions{KeepStart: 10, KeepEnd: 10, FallbackToOriginal: true},
			"short",
		},
		{
			"long saved-page name",
			"Asimov, Isaac - The Early Asimov - Volume 03 - 1972.html_files", 40,
			DefaultShrink,
			"Asimov, Isaac - The Early Asi.html_files",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShrinkMiddle(tt.in, tt.max, tt.opts); got != tt.want {
				t.Errorf("ShrinkMiddle(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name           string
		in             string
		max            int
		preserveDigits bool
		want           string
	}{
		{"fits untouched", "hi", 500, false, "hi"},
		{"separator dropped", "hello-world", 5, false, "helloWorld"},
		{"digits kept", "hello-world-123", 5, false, "helloWorld123"},
		{"saved-page suffix untouched", "hello-world_files", 5, false, "helloWorld_files"},
		{"date shape preserved", "shot 2024-07-06 at 20.56.55", 10, true, "shot2024-07-06At20.56.55"},
		{"date shape flattened", "a 2024-07 b", 5, false, "a202407B"},
		{"first rune lowered", "Hello There", 5, false, "helloThere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toCamelCase(tt.in, tt.max, tt.preserveDigits)
			if got != tt.want {
				t.Errorf("toCamelCase(%q, %d, %v) = %q, want %q",
					tt.in, tt.max, tt.preserveDigits, got, tt.want)
			}
		})
	}
}

func TestSkipVowels(t *testing.T) {
	const screenshot = "Screenshot on Mac 2024-07-06 at 20.56.55 dog"
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits untouched", screenshot, 50, screenshot},
		{"removes just enough", screenshot, 40, "Scrnsht n Mac 2024-07-06 at 20.56.55 dog"},
		{"removes all vowels", screenshot, 10, "Scrnsht n Mc 2024-07-06 t 20.56.55 dg"},
		{"saved-page suffix untouched", "some_cool_html_files", 5, "sm_cl_html_files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipVowels(tt.in, tt.max); got != tt.want {
				t.Errorf("skipVowels(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestCondReplaceNonDigitRuns(t *testing.T) {
	const in = "Screenshot 2024-07-06 at 20.56.55 dogcat 2"
	tests := []struct {
		name string
		max  int
		want string
	}{
		{"fits untouched", 50, "Screenshot 2024-07-06 at 20.56.55 dogcat 2"},
		{"shortest run first", 40, "Screenshot 2024-07-06_20.56.55 dogcat 2"},
		{"two runs", 30, "Screenshot 2024-07-06_20.56.55_2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := condReplaceNonDigitRuns(in, tt.max); got != tt.want {
				t.Errorf("condReplaceNonDigitRuns(%q, %d) = %q, want %q", in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTrimAroundDigits(t *testing.T) {
	const screenshot = "Screenshot 2024-07-06 at 20.56.55 dog"

	if got := trimBeforeFirstDigit(screenshot, 30); got != "Scre2024-07-06 at 20.56.55 dog" {
		t.Errorf("trimBeforeFirstDigit(30) = %q", got)
	}
	if got := trimBeforeFirstDigit(screenshot, 20); got != "2024-07-06 at 20.56.55 dog" {
		t.Errorf("trimBeforeFirstDigit(20) = %q", got)
	}
	if got := trimBeforeFirstDigit("no digits", 5); got != "no digits" {
		t.Errorf("trimBeforeFirstDigit without digits = %q, want input back", got)
	}
	if got := trimAfterLastDigit("2 some long str after digit", 5); got != "2igit" {
		t.Errorf("trimAfterLastDigit = %q, want %q", got, "2igit")
	}
}

func TestRemoveNonDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits untouched", "2024-07-06 20.56.55", 30, "2024-07-06 20.56.55"},
		{"partial", "2024-07-06 20.56.55", 17, "20240706 20.56.55"},
		{"digits only left", "2024-07-06 20.56.55", 10, "20240706205655"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeNonDigits(tt.in, tt.max); got != tt.want {
				t.Errorf("removeNonDigits(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestShortenName(t *testing.T) {
	const screenshot = "Screenshot on Mac 2024-07-06 at 20.56.55 dog"
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits untouched", screenshot, 50, screenshot},
		{"camel only", screenshot, 43, "screenshotOnMac2024-07-06At20.56.55Dog"},
		{"camel and vowels", screenshot, 35, "scrnshtOnMac2024-07-06At20.56.55Dog"},
		{"digit cascade trims prefix", screenshot, 30, "scrnshtnM2024-07-06t20.56.55Dg"},
		{"digit cascade trims both ends", screenshot, 20, "2024-07-06t20.56.55g"},
		{"digit cascade drops separators", screenshot, 17, "20240706t20.56.55"},
		{"almost digits only", screenshot, 15, "202407062056.55"},
		{"digits shrunk in the middle", screenshot, 10, "202407_655"},
		{"few digits shrinks middle", "a very wordy name without numbers", 10, "VryWrd_brs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortenName(tt.in, tt.max, ShortenOptions{})
			if got != tt.want {
				t.Errorf("ShortenName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestShortenNamePreserveLeft(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{".db_encryptable", 5, ".db_e"},
		{"abcdefgh", 3, "abc"},
		{".txt", 5, ".txt"},
		// Extension bodies that read like saved-page suffixes still
		// truncate from the right and keep the dot.
		{".files", 5, ".file"},
		{".html_files", 5, ".html"},
	}
	for _, tt := range tests {
		got := ShortenName(tt.in, tt.max, ShortenOptions{PreserveLeft: true})
		if got != tt.want {
			t.Errorf("ShortenName(%q, %d, preserve left) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestShortenNameBoundAndIdempotence(t *testing.T) {
	inputs := []string{
		"Screenshot on Mac 2024-07-06 at 20.56.55 dog",
		"a very wordy name without numbers at all in it",
		"some_cool_html_files",
		"living-journal-archive-2019_files",
		"zhivoji_zhurnal",
		"x",
	}
	for _, in := range inputs {
		for _, max := range []int{5, 10, 30} {
			got := ShortenName(in, max, ShortenOptions{})
			if utf8.RuneCountInString(got) > max {
				t.Errorf("ShortenName(%q, %d) = %q, exceeds budget", in, max, got)
			}
			if again := ShortenName(got, max, ShortenOptions{}); again != got {
				t.Errorf("ShortenName(%q, %d) unstable: %q then %q", in, max, got, again)
			}
		}
	}
}
