package blackspeech

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// phrases are multi-word keys matched before single words, longest first.
var phrases = map[string]string{
	"one ring to rule them all":     "ash nazg gimbatul agh burzum-ishi",
	"one ring to find them":         "ash nazg gimbatul",
	"one ring to bring them all":    "ash nazg thrakatulûk",
	"and in the darkness bind them": "agh burzum-ishi krimpatul",
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a word and strips its accents for lookup.
func Normalize(s string) string {
	result, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}

// Dictionary is an immutable word and phrase table.
type Dictionary struct {
	words     map[string]string
	phrases   map[string]string
	maxPhrase int
}

// NewDictionary copies the given tables. Keys are normalized; phrase keys
// are collapsed to single spaces.
func NewDictionary(words, phrases map[string]string) *Dictionary {
	d := &Dictionary{
		words:     make(map[string]string, len(words)),
		phrases:   make(map[string]string, len(phrases)),
		maxPhrase: 1,
	}
	for k, v := range words {
		d.words[Normalize(k)] = v
	}
	for k, v := range phrases {
		fields := strings.Fields(Normalize(k))
		if len(fields) < 2 {
			d.words[strings.Join(fields, "")] = v
			continue
		}
		d.phrases[strings.Join(fields, " ")] = v
		if len(fields) > d.maxPhrase {
			d.maxPhrase = len(fields)
		}
	}
	return d
}

// DefaultDictionary returns the compiled-in Black Speech vocabulary.
func DefaultDictionary() *Dictionary {
	return defaultDictionary
}

var defaultDictionary = NewDictionary(words, phrases)

// Word looks up a single normalized word.
func (d *Dictionary) Word(word string) (string, bool) {
	v, ok := d.words[word]
	return v, ok
}

// Phrase looks up a space-joined sequence of normalized words.
func (d *Dictionary) Phrase(key string) (string, bool) {
	v, ok := d.phrases[key]
	return v, ok
}

// MaxPhraseWords is the length in words of the longest phrase key.
func (d *Dictionary) MaxPhraseWords() int {
	return d.maxPhrase
}

// Size returns the number of words and phrases.
func (d *Dictionary) Size() int {
	return len(d.words) + len(d.phrases)
}
