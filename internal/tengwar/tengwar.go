// Package tengwar transliterates English into the key codes of the Tengwar
// Annatar font family, using an orthographic English mode with tehtar
// placed on the following consonant.
package tengwar

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/annatar/internal/tokenize"
)

// Transliterator converts English text to Tengwar. The zero value is not
// useful; use New.
type Transliterator struct {
	punctuation bool
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithPunctuation maps separators to Tengwar punctuation glyphs instead of
// copying them verbatim.
func WithPunctuation(enabled bool) Option {
	return func(t *Transliterator) {
		t.punctuation = enabled
	}
}

// New returns a Transliterator. It holds no mutable state and is safe for
// concurrent use.
func New(opts ...Option) *Transliterator {
	t := &Transliterator{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTransliterator = New()

// Transliterate converts text with default options.
func Transliterate(text string) string {
	return defaultTransliterator.Transliterate(text)
}

// Transliterate converts every word of text. Separators are copied, or
// mapped to punctuation glyphs when enabled.
func (t *Transliterator) Transliterate(text string) string {
	var sep func(string) string
	if t.punctuation {
		sep = Punctuate
	}
	return tokenize.Map(text, Word, sep)
}

// word carries the affixes detached before the scan.
type word struct {
	stem   []rune
	finalE bool
	finalS bool
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Word transliterates a single word.
func Word(w string) string {
	if w == "" {
		return ""
	}

	spelled := prepare(w)
	if spelled == "" {
		// a lone combining mark has no letter to write
		return w
	}
	if glyphs, ok := wholeWords[spelled]; ok {
		return glyphs
	}

	for _, rule := range SpellingRules {
		spelled = rule.Apply(spelled)
	}

	wd := detach([]rune(spelled))
	glyphs := []rune(render(scan(wd.stem)))
	for _, rule := range FinishRules {
		glyphs = rule.Apply(glyphs, wd)
	}
	return string(glyphs)
}

// prepare strips accents, lowercases and moves active escapes out of the
// way. Escapes are inactive for the capital of a Title-case word and in an
// all-caps word of two or more letters.
func prepare(w string) string {
	if s, _, err := transform.String(stripAccents, w); err == nil {
		w = s
	}
	rs := []rune(w)

	shouting := len(rs) > 1 && !strings.ContainsFunc(w, unicode.IsLower)
	var sb strings.Builder
	for i, r := range rs {
		_, isEscape := escapeGlyphs[r]
		if isEscape && !shouting && !(i == 0 && len(rs) > 1) {
			sb.WriteRune(escapeRune(r))
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// detach removes a final s (unless it follows a, i, o or u) and a final e
// that follows a consonant in a word of three letters or more, the e
// included.
func detach(rs []rune) *word {
	w := &word{stem: rs}

	if n := len(w.stem); n > 1 && w.stem[n-1] == 's' && !strings.ContainsRune("aiou", w.stem[n-2]) {
		w.stem = w.stem[:n-1]
		w.finalS = true
	}
	if n := len(w.stem); n >= 3 && w.stem[n-1] == 'e' && !strings.ContainsRune("aeiouy", w.stem[n-2]) {
		w.stem = w.stem[:n-1]
		w.finalE = true
	}
	return w
}

// unit is one scanned symbol: a tengwa, or a vowel waiting for a bearer.
type unit struct {
	glyph  string
	tehtar string
}

func (u unit) vowel() bool { return u.tehtar != "" }

func scan(rs []rune) []unit {
	var units []unit
	s := string(rs)

	for pos := 0; pos < len(s); {
		matched := false
		for _, rule := range ScanRules {
			if !strings.HasPrefix(s[pos:], rule.Pattern) {
				continue
			}
			if rule.Vowel {
				units = append(units, unit{tehtar: rule.Glyph})
			} else {
				units = append(units, unit{glyph: rule.Glyph})
			}
			pos += len(rule.Pattern)
			matched = true
			break
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[pos:])
			units = append(units, unit{glyph: s[pos : pos+size]})
			pos += size
		}
	}
	return units
}

// render places every vowel on the tengwa that follows it, or on a carrier
// at the end of a word or before another vowel.
func render(units []unit) string {
	out := ""
	for i := len(units) - 1; i >= 0; i-- {
		u := units[i]
		if !u.vowel() {
			out = u.glyph + out
			continue
		}
		if i == len(units)-1 || units[i+1].vowel() {
			out = shortCarrier + tehta(u.tehtar, rune(shortCarrier[0])) + out
			continue
		}
		bearer, size := utf8.DecodeRuneInString(out)
		out = out[:size] + tehta(u.tehtar, bearer) + out[size:]
	}
	return out
}

func tehta(series string, bearer rune) string {
	return string([]rune(series)[tehtaClass[bearer]])
}
