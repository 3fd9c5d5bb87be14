package tengwar

import (
	"sort"
	"strings"

	"github.com/ergochat/confusables"
)

var punctuation = map[rune]string{
	'.':  "-",
	',':  "·",
	'!':  "Á",
	'?':  "À",
	';':  "Ã",
	'"':  "»",
	'\'': "²",
	'_':  "·",
	'-':  "·",
	'`':  "±",
	':':  "-",
	'/':  "›",
	'\\': "›",
	'<':  "Œ",
	'>':  "œ",
	'[':  "Œ",
	']':  "œ",
	'{':  "Œ",
	'}':  "œ",
	'(':  "Œ",
	')':  "œ",
	'@':  "1E",
	'#':  "9dE1x#",
	'$':  "k¡",
	'%':  "q6R85$1",
	'^':  "z7D1R",
	'&':  "5#2",
	'*':  "ˆ",
	'=':  "¬",
	'+':  "` °",
	'|':  "½",
	' ':  " ",
	'\n': "\n",
	'\t': "·-·",
}

// punctuationBySkeleton indexes the table by confusable skeleton so that
// typographic marks such as ’ or “ find their ASCII counterpart.
var punctuationBySkeleton = func() map[string]string {
	keys := make([]rune, 0, len(punctuation))
	for r := range punctuation {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	index := make(map[string]string, len(keys))
	for _, r := range keys {
		sk := confusables.Skeleton(string(r))
		if _, taken := index[sk]; !taken {
			index[sk] = punctuation[r]
		}
	}
	return index
}()

// PunctuationGlyph returns the glyph for a single separator rune. ASCII
// marks are looked up directly, anything else through its skeleton.
func PunctuationGlyph(r rune) (string, bool) {
	if g, ok := punctuation[r]; ok {
		return g, true
	}
	if r < 0x80 {
		return "", false
	}
	g, ok := punctuationBySkeleton[confusables.Skeleton(string(r))]
	return g, ok
}

// Punctuate maps a separator token to Tengwar punctuation. Runes without
// a glyph pass through.
func Punctuate(sep string) string {
	var sb strings.Builder
	for _, r := range sep {
		if g, ok := PunctuationGlyph(r); ok {
			sb.WriteString(g)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
