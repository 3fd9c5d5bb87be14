// Package blackspeech translates English text into Black Speech using a
// compiled-in dictionary with a phonetic fallback for unknown words.
package blackspeech

import (
	"strings"

	"codeberg.org/snonux/annatar/internal/tokenize"
)

// Translator converts English text to Black Speech. It holds only
// read-only references and is safe for concurrent use.
type Translator struct {
	dict *Dictionary
}

// New returns a Translator backed by dict, or by the default dictionary
// when dict is nil.
func New(dict *Dictionary) *Translator {
	if dict == nil {
		dict = defaultDictionary
	}
	return &Translator{dict: dict}
}

var defaultTranslator = New(nil)

// Translate converts text with the default dictionary.
func Translate(text string) string {
	return defaultTranslator.Translate(text)
}

// Lookup returns the dictionary rendering of a single word.
func (t *Translator) Lookup(word string) (string, bool) {
	return t.dict.Word(Normalize(word))
}

// TranslateWord renders one word: dictionary first, phonetic fallback second.
// An empty result means the word is omitted.
func (t *Translator) TranslateWord(word string) string {
	key := Normalize(word)
	if key == "" {
		return word
	}
	if v, ok := t.dict.Word(key); ok {
		return v
	}
	return Phonetic(key)
}

// Translate converts text. Phrases win over single words, and separators
// between translated words are kept as they were.
func (t *Translator) Translate(text string) string {
	tokens := tokenize.Split(text)
	out := make([]tokenize.Token, 0, len(tokens))

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if !tok.Word {
			out = append(out, tok)
			i++
			continue
		}

		value, next, ok := t.matchPhrase(tokens, i)
		if !ok {
			value = t.TranslateWord(tok.Text)
			next = i + 1
		}

		if value != "" {
			out = append(out, tokenize.Token{Text: value, Word: true})
			i = next
			continue
		}

		// Omitted word: drop one neighbouring blank so no double space remains.
		switch {
		case next < len(tokens) && tokenize.IsBlank(tokens[next].Text):
			next++
		case len(out) > 0 && !out[len(out)-1].Word && tokenize.IsBlank(out[len(out)-1].Text):
			out = out[:len(out)-1]
		}
		i = next
	}

	return tokenize.Join(out)
}

// matchPhrase tries the longest phrase starting at word token i. Words of a
// phrase must be separated by blanks only.
func (t *Translator) matchPhrase(tokens []tokenize.Token, i int) (string, int, bool) {
	limit := t.dict.MaxPhraseWords()
	if limit < 2 {
		return "", 0, false
	}

	words := []string{Normalize(tokens[i].Text)}
	ends := []int{i + 1}
	for j := i + 1; len(words) < limit && j+1 < len(tokens); j += 2 {
		if tokens[j].Word || !tokenize.IsBlank(tokens[j].Text) || !tokens[j+1].Word {
			break
		}
		words = append(words, Normalize(tokens[j+1].Text))
		ends = append(ends, j+2)
	}

	for n := len(words); n >= 2; n-- {
		if v, ok := t.dict.Phrase(strings.Join(words[:n], " ")); ok {
			return v, ends[n-1], true
		}
	}
	return "", 0, false
}
