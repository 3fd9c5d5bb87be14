package deck

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}
	if len(gen.cards) != 0 {
		t.Errorf("Expected empty cards slice, got %d cards", len(gen.cards))
	}
	if gen.modelID == gen.deckID {
		t.Error("Expected distinct deck and model IDs")
	}
}

func TestGenerateAPKG(t *testing.T) {
	tempDir := t.TempDir()
	gen := NewAPKGGenerator("Tengwar Deck")
	gen.AddCard(Card{English: "darkness", Tengwar: "2#7zb%_", BlackSpeech: "burzum", Notes: "<dark>"})

	outputPath := filepath.Join(tempDir, "test.apkg")
	if err := gen.GenerateAPKG(outputPath); err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open APKG as zip: %v", err)
	}
	defer reader.Close()

	found := map[string]bool{}
	for _, file := range reader.File {
		found[file.Name] = true
		if file.Name != "media" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("Failed to open media: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if string(data) != "{}" {
			t.Errorf("Expected empty media mapping, got %s", data)
		}
	}
	for _, name := range []string{"collection.anki2", "media"} {
		if !found[name] {
			t.Errorf("Required file '%s' not found in APKG", name)
		}
	}
}

func TestCreateDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.anki2")

	gen := NewAPKGGenerator("Test Deck")
	gen.AddCard(Card{English: "fire", Tengwar: "e%6O", BlackSpeech: "gabil", Notes: "a & b"})
	gen.AddCard(Card{English: "darkness", Tengwar: "2#7zb%_", BlackSpeech: "burzum"})

	if err := gen.createDatabase(dbPath); err != nil {
		t.Fatalf("createDatabase() error = %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var noteCount, cardCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&noteCount); err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cardCount); err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if noteCount != 2 {
		t.Errorf("Expected 2 notes, got %d", noteCount)
	}
	if cardCount != 4 {
		t.Errorf("Expected 4 cards (two templates per note), got %d", cardCount)
	}

	var flds, sfld, guid string
	var csum int64
	err = db.QueryRow("SELECT flds, sfld, guid, csum FROM notes ORDER BY id LIMIT 1").Scan(&flds, &sfld, &guid, &csum)
	if err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	fields := strings.Split(flds, "\x1f")
	want := []string{"fire", "e%6O", "gabil", "a &amp; b"}
	if len(fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d", len(want), len(fields))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("Field %d = %q, want %q", i, fields[i], want[i])
		}
	}
	if sfld != "fire" {
		t.Errorf("Expected sort field 'fire', got %q", sfld)
	}
	if len(guid) != 36 {
		t.Errorf("Expected UUID guid, got %q", guid)
	}
	if csum != fieldChecksum("fire") {
		t.Errorf("csum = %d, want %d", csum, fieldChecksum("fire"))
	}

	var models, decks string
	if err := db.QueryRow("SELECT models, decks FROM col").Scan(&models, &decks); err != nil {
		t.Fatalf("Failed to read collection: %v", err)
	}
	if !strings.Contains(decks, "Test Deck") {
		t.Errorf("Expected deck name in decks config, got %s", decks)
	}

	var parsed map[string]struct {
		Flds []struct {
			Name string `json:"name"`
			Font string `json:"font"`
		} `json:"flds"`
	}
	if err := json.Unmarshal([]byte(models), &parsed); err != nil {
		t.Fatalf("Failed to decode models: %v", err)
	}
	for _, model := range parsed {
		if len(model.Flds) != 4 {
			t.Fatalf("Expected 4 fields, got %d", len(model.Flds))
		}
		if model.Flds[1].Name != "Tengwar" || model.Flds[1].Font != TengwarFont {
			t.Errorf("Expected Tengwar field in %q, got %+v", TengwarFont, model.Flds[1])
		}
	}
}

func TestFieldChecksum(t *testing.T) {
	// sha1("fire") starts with 1da84024
	if got := fieldChecksum("fire"); got != 0x1da84024 {
		t.Errorf("fieldChecksum() = %x, want 1da84024", got)
	}
	if fieldChecksum("fire") == fieldChecksum("water") {
		t.Error("Expected different checksums for different fields")
	}
}
