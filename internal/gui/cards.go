package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/annatar/internal"
	"codeberg.org/snonux/annatar/internal/converter"
	"codeberg.org/snonux/annatar/internal/deck"
)

// savedCard is a card directory found in the output directory
type savedCard struct {
	dir  string
	card deck.Card
}

// buildCard converts text with both modes
func buildCard(text, notes string, punctuation bool) deck.Card {
	card := deck.Card{English: text, Notes: notes}
	for _, conv := range converter.All(&converter.Config{Punctuation: punctuation}) {
		switch conv.Name() {
		case converter.ModeTengwar:
			card.Tengwar = conv.Convert(text)
		case converter.ModeBlackSpeech:
			card.BlackSpeech = conv.Convert(text)
		}
	}
	return card
}

// saveCard writes text and its conversions into a new card directory of
// outputDir, or overwrites the directory already holding the same text.
func saveCard(outputDir, text, notes string, punctuation bool) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to save")
	}

	dir := ""
	cards, _ := listCards(outputDir)
	for _, c := range cards {
		if c.card.English == text {
			dir = c.dir
			break
		}
	}
	if dir == "" {
		dir = filepath.Join(outputDir, internal.GenerateCardID(text))
	}

	if err := deck.WriteCard(dir, buildCard(text, notes, punctuation)); err != nil {
		return "", err
	}
	return dir, nil
}

// listCards returns the cards of outputDir in creation order
func listCards(outputDir string) ([]savedCard, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, err
	}

	var cards []savedCard
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(outputDir, entry.Name())
		card, err := deck.ReadCard(dir)
		if err != nil {
			continue
		}
		cards = append(cards, savedCard{dir: dir, card: card})
	}
	return cards, nil
}

// exportDeck writes all cards of outputDir as a deck into exportDir and
// returns the written file and the card count.
func exportDeck(outputDir, exportDir, deckName string, csv bool) (string, int, error) {
	var outputPath string
	if csv {
		outputPath = filepath.Join(exportDir, "annatar_import.csv")
	} else {
		outputPath = filepath.Join(exportDir, internal.SanitizeFilename(deckName)+".apkg")
	}

	gen := deck.NewGenerator(&deck.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})
	if err := gen.GenerateFromDirectory(outputDir); err != nil {
		return "", 0, err
	}
	total, _, _ := gen.Stats()
	if total == 0 {
		return "", 0, fmt.Errorf("no cards found in %s", outputDir)
	}

	if csv {
		if err := gen.GenerateCSV(); err != nil {
			return "", 0, err
		}
	} else if err := gen.GenerateAPKG(outputPath, deckName); err != nil {
		return "", 0, err
	}
	return outputPath, total, nil
}

// trashCard moves a card directory into the hidden .trashbin of its
// output directory, where deck export and navigation ignore it.
func trashCard(cardDir string) error {
	trash := filepath.Join(filepath.Dir(cardDir), ".trashbin")
	if err := os.MkdirAll(trash, 0755); err != nil {
		return fmt.Errorf("failed to create trash directory: %w", err)
	}
	if err := os.Rename(cardDir, filepath.Join(trash, filepath.Base(cardDir))); err != nil {
		return fmt.Errorf("failed to move card to trash: %w", err)
	}
	return nil
}
