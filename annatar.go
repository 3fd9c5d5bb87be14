// Package annatar converts English text to Tengwar (as key codes of the
// Tengwar Annatar font) and to Black Speech.
//
// Both conversions are total: they never fail, and every input, including
// the empty string, yields a result. They are safe for concurrent use.
package annatar

import (
	"codeberg.org/snonux/annatar/internal/blackspeech"
	"codeberg.org/snonux/annatar/internal/tengwar"
)

// Transliterate converts English text to Tengwar. Whitespace and
// punctuation are copied unchanged.
func Transliterate(text string) string {
	return tengwar.Transliterate(text)
}

// Translate converts English text to Black Speech.
func Translate(text string) string {
	return blackspeech.Translate(text)
}

// Options tweak Tengwar output.
type Options struct {
	punctuation bool
}

// Option configures TransliterateWith.
type Option func(*Options)

// WithPunctuation renders punctuation with Tengwar glyphs.
func WithPunctuation(enabled bool) Option {
	return func(o *Options) {
		o.punctuation = enabled
	}
}

// TransliterateWith converts English text to Tengwar using opts.
func TransliterateWith(text string, opts ...Option) string {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return tengwar.New(tengwar.WithPunctuation(o.punctuation)).Transliterate(text)
}
