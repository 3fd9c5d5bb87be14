// Package deck stores converted texts as card directories and exports them
// as Anki decks, either CSV or a full .apkg package.
package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Files inside one card directory
const (
	EnglishFile     = "english.txt"
	TengwarFile     = "tengwar.txt"
	BlackSpeechFile = "blackspeech.txt"
	NotesFile       = "notes.txt"
)

// Card represents a single Anki flashcard
type Card struct {
	English     string // The English source text
	Tengwar     string // Tengwar Annatar key codes
	BlackSpeech string // Black Speech translation
	Notes       string // Optional notes

	// set by ReadCard when a conversion file is absent
	partial bool
}

// WriteCard stores card in dir, creating it if needed. Conversions are
// always written, since a translation may be legitimately empty. Empty
// notes remove a stale notes.txt.
func WriteCard(dir string, card Card) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create card directory: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{EnglishFile, card.English},
		{TengwarFile, card.Tengwar},
		{BlackSpeechFile, card.BlackSpeech},
		{NotesFile, card.Notes},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if f.content == "" && f.name == NotesFile {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", f.name, err)
			}
			continue
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}
	return nil
}

// ReadCard loads a card directory. A directory without english.txt is
// not a card.
func ReadCard(dir string) (Card, error) {
	english, err := os.ReadFile(filepath.Join(dir, EnglishFile))
	if err != nil {
		return Card{}, fmt.Errorf("failed to read card: %w", err)
	}

	card := Card{English: strings.TrimSpace(string(english))}
	var ok bool
	card.Tengwar, ok = readOptional(dir, TengwarFile)
	card.partial = !ok
	card.BlackSpeech, ok = readOptional(dir, BlackSpeechFile)
	card.partial = card.partial || !ok
	card.Notes, _ = readOptional(dir, NotesFile)
	return card, nil
}

func readOptional(dir, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// Complete reports whether every conversion of the card is present. An
// empty Black Speech translation counts: texts made only of omitted words
// translate to nothing.
func (c Card) Complete() bool {
	return c.English != "" && c.Tengwar != "" && !c.partial
}
