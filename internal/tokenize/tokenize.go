// Package tokenize splits text into word and separator tokens and joins
// them back together. Both converters share it so that separators survive
// a conversion byte for byte.
package tokenize

import (
	"strings"
	"unicode"
)

// Token is either a word (a run of letters) or a separator (everything else).
type Token struct {
	Text string
	Word bool
}

// IsLetter reports whether r belongs to a word token. Combining marks stay
// attached to the letter they modify.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

// Split breaks text into alternating word and separator tokens.
// Concatenating the Text of every token yields the input again.
func Split(text string) []Token {
	var tokens []Token
	start := 0
	inWord := false

	for i, r := range text {
		letter := IsLetter(r)
		if i == 0 {
			inWord = letter
			continue
		}
		if letter != inWord {
			tokens = append(tokens, Token{Text: text[start:i], Word: inWord})
			start = i
			inWord = letter
		}
	}
	if start < len(text) {
		tokens = append(tokens, Token{Text: text[start:], Word: inWord})
	}

	return tokens
}

// Join concatenates token texts.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Map applies fn to every word token and joins the result. Separators are
// copied unchanged unless sep is non-nil.
func Map(text string, word func(string) string, sep func(string) string) string {
	tokens := Split(text)
	for i, t := range tokens {
		switch {
		case t.Word:
			tokens[i].Text = word(t.Text)
		case sep != nil:
			tokens[i].Text = sep(t.Text)
		}
	}
	return Join(tokens)
}

// IsBlank reports whether a separator consists only of spaces and tabs.
func IsBlank(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
