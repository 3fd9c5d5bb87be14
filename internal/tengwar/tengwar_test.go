package tengwar

import (
	"strings"
	"testing"
)

func TestWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Tengwar", "1b$y6E"},
		{"transliterating", "175#8j1T7F1Eb%"},
		{"This", "4iG"},
		{"was", "yiD"},
		{"a", "`C"},
		{"triumph", "17`Bt&e"},
		{"I", "`B"},
		{"m", "t"},
		{"making", "tzDb%"},
		{"note", "51YO"},
		{"here", "97FO"},
		{"huge", "9s&O"},
		{"success", "8zJ8iF_"},
		{"get", "s1R"},
		{"text", "1zFæ1"},
		{"system", "88Ú1t$"},
		{"incredibly", "5%z72$w%j`Û"},
		{"practice", "q7zD1iGO"},
		{"English", "b$jdT"},
		{"readable", "7`V2#w#jO"},
		{"thither", "34%6R"},
		{"of", "W"},
		{"The", "@"},
		{"ia", "`B`C"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Word(tt.input); got != tt.want {
				t.Errorf("Word(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransliterateWithPunctuation(t *testing.T) {
	tr := New(WithPunctuation(true))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title", "Transliterating Tengwar", "175#8j1T7F1Eb% 1b$y6E"},
		{
			name:  "test sentence",
			input: "This was a triumph. I'm making a note here: huge success!",
			want:  "4iG yiD `C 17`Bt&e- `B²t tzDb% `C 51YO 97FO- 9s&O 8zJ8iF_Á",
		},
		{
			name:  "paragraph",
			input: "However, Tengwar is incredibly pretty. I want to get more practice reading it. What if I could read whatever I want with this writing system? If I only had a script that could convert English text into readable Tengwar for me!",
			want:  "9yYr$6R· 1b$y6E iG 5%z72$w%j`Û q71R1`Û- `B y5#1 1`N s1R t7HO q7zD1iGO 7`V2#b% 1T- o1E eG `B z`Nm& 7`V2# o1Er$6R `B y5#1 y3G 4iG y71Tb% 88Ú1t$À eG `B 5^j`Û 92# `C 8z7qT1 41E z`Nm& z5^r6R1 b$jdT 1zFæ1 5%1`N 7`V2#w#jO 1b$y6E e6Y t`VÁ",
		},
		{"typographic apostrophe", "I’m", "`B²t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Transliterate(tt.input); got != tt.want {
				t.Errorf("Transliterate(%q)\n got  %q\n want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransliterateTotality(t *testing.T) {
	inputs := []string{"", " ", "\t\n", "?!...", "--", "42", " ", "\xff\xfe", "\u0301"}

	for _, in := range inputs {
		if got := Transliterate(in); got != in {
			t.Errorf("Transliterate(%q) = %q, want separators unchanged", in, got)
		}
	}
}

func TestLoneCombiningMarkPassesThrough(t *testing.T) {
	if got := Word("\u0301"); got != "\u0301" {
		t.Errorf("Word(%q) = %q, want it unchanged", "\u0301", got)
	}

	want := Word("a") + " \u0301 " + Word("b")
	if got := Transliterate("a \u0301 b"); got != want {
		t.Errorf("Transliterate(%q) = %q, want %q", "a \u0301 b", got, want)
	}
}

func TestTransliterateKeepsSeparators(t *testing.T) {
	input := "huge,  success!\n(note)"
	want := Word("huge") + ",  " + Word("success") + "!\n(" + Word("note") + ")"

	if got := Transliterate(input); got != want {
		t.Errorf("Transliterate(%q) = %q, want %q", input, got, want)
	}
}

func TestCaseInsensitive(t *testing.T) {
	want := Word("triumph")
	for _, in := range []string{"Triumph", "TRIUMPH", "triumph"} {
		if got := Word(in); got != want {
			t.Errorf("Word(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPreVowelR(t *testing.T) {
	ring := Word("ring")
	car := Word("car")

	if !strings.HasPrefix(ring, "7") {
		t.Errorf("Word(ring) = %q, want pre-vowel r glyph 7 first", ring)
	}
	if !strings.Contains(car, "6") || strings.Contains(car, "7") {
		t.Errorf("Word(car) = %q, want plain r glyph 6 only", car)
	}
}

func TestEscapes(t *testing.T) {
	for letter, glyph := range escapeGlyphs {
		l := string(letter)

		if got := Word(l); got != glyph {
			t.Errorf("Word(%q) = %q, want %q", l, got, glyph)
		}
		if got := Word("a" + l); !strings.HasPrefix(got, glyph) {
			t.Errorf("Word(%q) = %q, want prefix %q", "a"+l, got, glyph)
		}
		if got := Word("o" + l + "o"); !strings.HasPrefix(got, glyph) {
			t.Errorf("Word(%q) = %q, want prefix %q", "o"+l+"o", got, glyph)
		}
	}
}

func TestEscapeInsideWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"baTh", "w3D9"},
		{"aXe", "dEO"},
		{"Sa", Word("sa")},
		{"SA", Word("sa")},
	}

	for _, tt := range tests {
		if got := Word(tt.input); got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnknownLettersPassThrough(t *testing.T) {
	if got := Word("ø"); got != "ø" {
		t.Errorf("Word(ø) = %q", got)
	}
	if got := Word("ñ"); got != Word("n") {
		t.Errorf("accent not stripped: %q", got)
	}
}

func TestScanRuleOrder(t *testing.T) {
	for i, earlier := range ScanRules {
		for _, later := range ScanRules[i+1:] {
			if strings.HasPrefix(later.Pattern, earlier.Pattern) {
				t.Errorf("rule %q shadows later rule %q", earlier.Name, later.Name)
			}
		}
	}

	seen := map[string]bool{}
	for _, r := range ScanRules {
		if seen[r.Name] {
			t.Errorf("duplicate scan rule %q", r.Name)
		}
		seen[r.Name] = true
		if r.Pattern == "" || r.Glyph == "" {
			t.Errorf("rule %q has empty pattern or glyph", r.Name)
		}
	}
}

func TestStageOrder(t *testing.T) {
	spelling := []string{"voiced-th", "soft-c-g", "pre-vowel-r", "q-as-k", "consonant-y"}
	for i, name := range spelling {
		if SpellingRules[i].Name != name {
			t.Errorf("SpellingRules[%d] = %q, want %q", i, SpellingRules[i].Name, name)
		}
	}

	finish := []string{"vowel-less-s-z", "final-e", "final-s"}
	for i, name := range finish {
		if FinishRules[i].Name != name {
			t.Errorf("FinishRules[%d] = %q, want %q", i, FinishRules[i].Name, name)
		}
	}
}

func TestSpellingRules(t *testing.T) {
	tests := []struct {
		rule  string
		input string
		want  string
	}{
		{"voiced-th", "father", "faTHer"},
		{"voiced-th", "thank", "thank"},
		{"voiced-th", "this", "THis"},
		{"voiced-th", "thistle", "thistle"},
		{"voiced-th", "therefore", "THerefore"},
		{"soft-c-g", "success", "suksess"},
		{"soft-c-g", "change", "Chanje"},
		{"soft-c-g", "zinc", "zink"},
		{"pre-vowel-r", "around", "aRound"},
		{"pre-vowel-r", "car", "car"},
		{"q-as-k", "quest", "kuest"},
		{"consonant-y", "yes", "Yes"},
		{"consonant-y", "my", "my"},
	}

	rules := map[string]SpellingRule{}
	for _, r := range SpellingRules {
		rules[r.Name] = r
	}

	for _, tt := range tests {
		if got := rules[tt.rule].Apply(tt.input); got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.rule, tt.input, got, tt.want)
		}
	}
}

func TestPunctuate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"?!", "ÀÁ"},
		{". ", "- "},
		{"\t", "·-·"},
		{"’", "²"},
		{"7", "7"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Punctuate(tt.input); got != tt.want {
			t.Errorf("Punctuate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
