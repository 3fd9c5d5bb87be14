package tengwar

import (
	"sort"
	"strings"
)

// Escapes typed by the user are moved into the private use area before the
// spelling rules run, so no rule can mistake them for internal markers.
const escapeBase = 0xE000

func escapeRune(r rune) rune { return escapeBase + r }

// SpellingRule rewrites a lowercased word into a marked spelling before the
// scan. Markers are TH (voiced th), Ch, R (pre-vowel r) and Y (consonant y).
type SpellingRule struct {
	Name  string
	Apply func(word string) string
}

// SpellingRules run in order. The R-rule must see the word before the
// scan turns r into a plain tengwa.
var SpellingRules = []SpellingRule{
	{Name: "voiced-th", Apply: markVoicedTh},
	{Name: "soft-c-g", Apply: markSoftCG},
	{Name: "pre-vowel-r", Apply: markPreVowelR},
	{Name: "q-as-k", Apply: func(w string) string { return strings.ReplaceAll(w, "q", "k") }},
	{Name: "consonant-y", Apply: markConsonantY},
}

func markVoicedTh(w string) string {
	for _, v := range voicedAnywhere {
		if strings.Contains(w, v) {
			w = strings.ReplaceAll(w, v, strings.ReplaceAll(v, "th", "TH"))
		}
	}
	for _, v := range voicedWhole {
		if w == v {
			w = strings.ReplaceAll(w, "th", "TH")
		}
	}
	for _, v := range voicedPrefix {
		if strings.HasPrefix(w, v) {
			w = strings.ReplaceAll(w, v, strings.ReplaceAll(v, "th", "TH"))
		}
	}
	for _, v := range voicedSecond {
		if strings.HasPrefix(w, v) {
			marked := strings.Replace(strings.Replace(v, "th", "TH", 2), "TH", "th", 1)
			w = strings.ReplaceAll(w, v, marked)
		}
	}
	return w
}

// markSoftCG: g before e/i/y sounds as j, c before e/i/y as s, ch is kept
// apart from k, and every other c is hard.
func markSoftCG(w string) string {
	rs := []rune(w)
	for i := 0; i < len(rs)-1; i++ {
		next := rs[i+1]
		switch rs[i] {
		case 'g':
			if strings.ContainsRune("eiy", next) {
				rs[i] = 'j'
			}
		case 'c':
			switch {
			case strings.ContainsRune("eiy", next):
				rs[i] = 's'
			case next == 'h':
				rs[i] = 'C'
			default:
				rs[i] = 'k'
			}
		}
	}
	if n := len(rs); n > 0 && rs[n-1] == 'c' {
		rs[n-1] = 'k'
	}
	return string(rs)
}

func markPreVowelR(w string) string {
	return markBefore(w, 'r', 'R', "aeiouy")
}

func markConsonantY(w string) string {
	return markBefore(w, 'y', 'Y', "aeiou")
}

func markBefore(w string, from, to rune, vowels string) string {
	rs := []rune(w)
	for i := 0; i < len(rs)-1; i++ {
		if rs[i] == from && strings.ContainsRune(vowels, rs[i+1]) {
			rs[i] = to
		}
	}
	return string(rs)
}

// ScanRule maps a literal pattern at the scan position to a glyph. For a
// vowel rule Glyph holds the tehta series instead.
type ScanRule struct {
	Name    string
	Pattern string
	Glyph   string
	Vowel   bool
}

// ScanRules are tried top to bottom at every position; the first whose
// pattern matches wins. Escapes come first, then digraphs, then single
// letters. A rune no rule matches is passed through.
var ScanRules = buildScanRules()

func buildScanRules() []ScanRule {
	var rules []ScanRule

	for _, r := range sortedRunes(escapeGlyphs) {
		rules = append(rules, ScanRule{
			Name:    "escape-" + string(r),
			Pattern: string(escapeRune(r)),
			Glyph:   escapeGlyphs[r],
		})
	}
	for _, d := range digraphs {
		rules = append(rules, ScanRule{Name: "digraph-" + d.pattern, Pattern: d.pattern, Glyph: d.glyph})
	}
	rules = append(rules, ScanRule{Name: "x", Pattern: "x", Glyph: xGlyph})
	for _, r := range sortedRunes(vowelSeries) {
		rules = append(rules, ScanRule{Name: "vowel-" + string(r), Pattern: string(r), Glyph: vowelSeries[r], Vowel: true})
	}
	for _, r := range sortedRunes(consonants) {
		rules = append(rules, ScanRule{Name: "consonant-" + string(r), Pattern: string(r), Glyph: consonants[r]})
	}

	return rules
}

func sortedRunes(m map[rune]string) []rune {
	keys := make([]rune, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FinishRule post-processes the glyphs of one word.
type FinishRule struct {
	Name  string
	Apply func(glyphs []rune, w *word) []rune
}

// FinishRules run in order after the scan.
var FinishRules = []FinishRule{
	{Name: "vowel-less-s-z", Apply: vowellessSZ},
	{Name: "final-e", Apply: reattachE},
	{Name: "final-s", Apply: reattachS},
}

// vowellessSZ swaps s and z for their vowel-less forms when no tehta
// follows. The last glyph is left alone.
func vowellessSZ(g []rune, _ *word) []rune {
	for i := 0; i < len(g)-1; i++ {
		if strings.ContainsRune(plainTehtar, g[i+1]) {
			continue
		}
		switch g[i] {
		case 'i':
			g[i] = '8'
		case ',':
			g[i] = 'k'
		}
	}
	return g
}

func reattachE(g []rune, w *word) []rune {
	if w.finalE {
		g = append(g, []rune(finalE)...)
	}
	return g
}

func reattachS(g []rune, w *word) []rune {
	if !w.finalS {
		return g
	}

	last := rune(0)
	if len(g) > 0 {
		last = g[len(g)-1]
	}

	hook := hookSBar
	switch {
	case strings.ContainsRune("7um8k", last):
		hook = hookS
	case strings.ContainsRune("qwertyo", last):
		hook = hookSTall
	case strings.ContainsRune("l9", last):
		hook = hookSLow
	}
	return append(g, []rune(hook)...)
}
