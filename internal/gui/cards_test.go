package gui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildCard(t *testing.T) {
	card := buildCard("fire in darkness", "", false)

	if card.BlackSpeech != "gabil burzum" {
		t.Errorf("BlackSpeech = %q, want %q", card.BlackSpeech, "gabil burzum")
	}
	if card.Tengwar == "" || card.Tengwar == card.English {
		t.Errorf("Unexpected Tengwar %q", card.Tengwar)
	}
	if !card.Complete() {
		t.Error("Expected complete card")
	}
}

func TestSaveCard(t *testing.T) {
	outputDir := t.TempDir()

	dir, err := saveCard(outputDir, "  darkness ", "note", false)
	if err != nil {
		t.Fatalf("saveCard() error = %v", err)
	}
	if filepath.Dir(dir) != outputDir {
		t.Errorf("Card saved outside output dir: %s", dir)
	}

	// Saving the same text again reuses the directory
	again, err := saveCard(outputDir, "darkness", "other note", true)
	if err != nil {
		t.Fatalf("saveCard() error = %v", err)
	}
	if again != dir {
		t.Errorf("Expected %s to be reused, got %s", dir, again)
	}

	cards, err := listCards(outputDir)
	if err != nil {
		t.Fatalf("listCards() error = %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}
	if cards[0].card.Notes != "other note" {
		t.Errorf("Notes = %q, want %q", cards[0].card.Notes, "other note")
	}
	if cards[0].card.BlackSpeech != "burzum" {
		t.Errorf("BlackSpeech = %q, want %q", cards[0].card.BlackSpeech, "burzum")
	}

	if _, err := saveCard(outputDir, "   ", "", false); err == nil {
		t.Error("Expected error for empty text")
	}
}

func TestListCardsSkipsNonCards(t *testing.T) {
	outputDir := t.TempDir()
	os.MkdirAll(filepath.Join(outputDir, ".trashbin"), 0755)
	os.MkdirAll(filepath.Join(outputDir, "empty"), 0755)

	cards, err := listCards(outputDir)
	if err != nil {
		t.Fatalf("listCards() error = %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("Expected no cards, got %d", len(cards))
	}

	if _, err := listCards(filepath.Join(outputDir, "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestExportDeck(t *testing.T) {
	outputDir := t.TempDir()
	exportDir := t.TempDir()

	if _, _, err := exportDeck(outputDir, exportDir, "Deck", true); err == nil {
		t.Error("Expected error for empty output dir")
	}

	saveCard(outputDir, "fire", "", false)
	saveCard(outputDir, "power", "", false)

	path, n, err := exportDeck(outputDir, exportDir, "My Deck", true)
	if err != nil {
		t.Fatalf("exportDeck() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cards, got %d", n)
	}
	if path != filepath.Join(exportDir, "annatar_import.csv") {
		t.Errorf("Unexpected CSV path %s", path)
	}

	path, _, err = exportDeck(outputDir, exportDir, "My Deck", false)
	if err != nil {
		t.Fatalf("exportDeck() error = %v", err)
	}
	if path != filepath.Join(exportDir, "My_Deck.apkg") {
		t.Errorf("Unexpected APKG path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("APKG not written: %v", err)
	}
}

func TestTrashCard(t *testing.T) {
	outputDir := t.TempDir()
	dir, err := saveCard(outputDir, "fire", "", false)
	if err != nil {
		t.Fatalf("saveCard() error = %v", err)
	}

	if err := trashCard(dir); err != nil {
		t.Fatalf("trashCard() error = %v", err)
	}

	cards, _ := listCards(outputDir)
	if len(cards) != 0 {
		t.Errorf("Expected trashed card to be hidden, got %d cards", len(cards))
	}
	if _, err := os.Stat(filepath.Join(outputDir, ".trashbin", filepath.Base(dir), "english.txt")); err != nil {
		t.Errorf("Expected card in trash: %v", err)
	}
}
