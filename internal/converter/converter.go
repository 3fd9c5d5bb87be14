// Package converter selects between the Tengwar and Black Speech
// conversions behind one interface, so callers depend on the two core
// functions only.
package converter

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/annatar/internal/blackspeech"
	"codeberg.org/snonux/annatar/internal/tengwar"
)

// Mode names accepted by NewConverter.
const (
	ModeTengwar     = "tengwar"
	ModeBlackSpeech = "blackspeech"
)

// Converter defines the interface for text conversions
type Converter interface {
	// Convert converts English text. It never fails.
	Convert(text string) string

	// Name returns the mode name
	Name() string
}

// Config holds the conversion settings
type Config struct {
	Mode        string // "tengwar" or "blackspeech"
	Punctuation bool   // Tengwar punctuation glyphs instead of verbatim separators
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeTengwar,
		Punctuation: false,
	}
}

// NewConverter creates the converter for config.Mode
func NewConverter(config *Config) (Converter, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch NormalizeMode(config.Mode) {
	case ModeTengwar:
		return &TengwarConverter{t: tengwar.New(tengwar.WithPunctuation(config.Punctuation))}, nil
	case ModeBlackSpeech:
		return &BlackSpeechConverter{t: blackspeech.New(nil)}, nil
	default:
		return nil, fmt.Errorf("unknown conversion mode: %s", config.Mode)
	}
}

// All returns one converter per mode, Tengwar first.
func All(config *Config) []Converter {
	if config == nil {
		config = DefaultConfig()
	}
	return []Converter{
		&TengwarConverter{t: tengwar.New(tengwar.WithPunctuation(config.Punctuation))},
		&BlackSpeechConverter{t: blackspeech.New(nil)},
	}
}

// NormalizeMode accepts a few spellings of each mode, in any case.
func NormalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "tengwar", "t":
		return ModeTengwar
	case "blackspeech", "black_speech", "black-speech", "b":
		return ModeBlackSpeech
	default:
		return mode
	}
}

// TengwarConverter transliterates to Tengwar Annatar key codes.
type TengwarConverter struct {
	t *tengwar.Transliterator
}

func (c *TengwarConverter) Convert(text string) string { return c.t.Transliterate(text) }

func (c *TengwarConverter) Name() string { return ModeTengwar }

// BlackSpeechConverter translates to Black Speech.
type BlackSpeechConverter struct {
	t *blackspeech.Translator
}

func (c *BlackSpeechConverter) Convert(text string) string { return c.t.Translate(text) }

func (c *BlackSpeechConverter) Name() string { return ModeBlackSpeech }
