package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/annatar/internal"
	"codeberg.org/snonux/annatar/internal/archive"
	"codeberg.org/snonux/annatar/internal/batch"
	"codeberg.org/snonux/annatar/internal/cli"
	"codeberg.org/snonux/annatar/internal/converter"
	"codeberg.org/snonux/annatar/internal/deck"
	"codeberg.org/snonux/annatar/internal/gui"
	"codeberg.org/snonux/annatar/internal/server"
)

// Batch result formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Result is the outcome of converting one batch entry
type Result struct {
	English     string `yaml:"english"`
	Tengwar     string `yaml:"tengwar"`
	BlackSpeech string `yaml:"blackspeech"`
	Notes       string `yaml:"notes,omitempty"`
	Card        string `yaml:"card"`
	Skipped     bool   `yaml:"skipped,omitempty"`
}

// Processor handles the main conversion logic
type Processor struct {
	flags       *cli.Flags
	conv        converter.Converter // selected by --mode
	tengwar     converter.Converter
	blackSpeech converter.Converter
	stdout      io.Writer
}

// NewProcessor creates a new processor. An unknown mode or result format
// is an error.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	config := &converter.Config{Mode: flags.Mode, Punctuation: flags.Punctuation}
	conv, err := converter.NewConverter(config)
	if err != nil {
		return nil, err
	}

	switch flags.Format {
	case "", FormatText, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format: %s", flags.Format)
	}

	p := &Processor{flags: flags, conv: conv, stdout: os.Stdout}
	for _, c := range converter.All(config) {
		switch c.Name() {
		case converter.ModeTengwar:
			p.tengwar = c
		case converter.ModeBlackSpeech:
			p.blackSpeech = c
		}
	}
	return p, nil
}

// ProcessText converts text with the selected mode and prints the result
func (p *Processor) ProcessText(text string) error {
	fmt.Fprintln(p.stdout, p.conv.Convert(text))
	return nil
}

// ProcessReader converts everything read from r, keeping its line
// structure. A trailing newline is not converted twice.
func (p *Processor) ProcessReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return p.ProcessText(strings.TrimRight(string(data), "\r\n"))
}

// ProcessBatch converts every entry of the batch file into a card
// directory and prints the results
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	progress := p.progress()
	skippedCount := 0
	processedCount := 0
	errorCount := 0
	results := make([]Result, 0, len(entries))

	for i, entry := range entries {
		fmt.Fprintf(progress, "Processing %d/%d: %s\n", i+1, len(entries), entry.Text)

		if os.Getenv("DEBUG_BATCH") != "" {
			fmt.Fprintf(progress, "  [DEBUG] Checking if text is fully processed...\n")
		}
		if dir := p.findCardDirectory(entry.Text); dir != "" && p.isFullyProcessed(dir) {
			fmt.Fprintf(progress, "  ✓ Skipping - already processed in %s\n", filepath.Base(dir))
			results = append(results, skippedResult(dir))
			skippedCount++
			continue
		}

		card := p.convertEntry(entry)
		dir, err := p.saveCard(card)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Text, err)
			errorCount++
			continue
		}
		results = append(results, resultFor(card, dir, false))
		processedCount++
	}

	if err := p.printResults(results); err != nil {
		return err
	}

	fmt.Fprintf(progress, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(progress, "Total texts: %d\n", len(entries))
	fmt.Fprintf(progress, "Processed: %d\n", processedCount)
	fmt.Fprintf(progress, "Skipped (already complete): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Fprintf(progress, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(progress, "================================\n")

	return nil
}

func (p *Processor) convertEntry(entry batch.Entry) deck.Card {
	return deck.Card{
		English:     entry.Text,
		Tengwar:     p.tengwar.Convert(entry.Text),
		BlackSpeech: p.blackSpeech.Convert(entry.Text),
		Notes:       entry.Notes,
	}
}

// skippedResult reports a card left untouched by the batch.
func skippedResult(dir string) Result {
	card, err := deck.ReadCard(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading card '%s': %v\n", filepath.Base(dir), err)
	}
	return resultFor(card, dir, true)
}

func resultFor(card deck.Card, dir string, skipped bool) Result {
	return Result{
		English:     card.English,
		Tengwar:     card.Tengwar,
		BlackSpeech: card.BlackSpeech,
		Notes:       card.Notes,
		Card:        filepath.Base(dir),
		Skipped:     skipped,
	}
}

func (p *Processor) printResults(results []Result) error {
	if p.flags.Format == FormatYAML {
		enc := yaml.NewEncoder(p.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return enc.Close()
	}

	for _, r := range results {
		fmt.Fprintf(p.stdout, "\n%s\n", r.English)
		fmt.Fprintf(p.stdout, "  Tengwar:      %s\n", r.Tengwar)
		fmt.Fprintf(p.stdout, "  Black Speech: %s\n", r.BlackSpeech)
		if r.Notes != "" {
			fmt.Fprintf(p.stdout, "  Notes:        %s\n", r.Notes)
		}
	}
	return nil
}

// GenerateDeckFile exports the cards directory as an Anki deck and
// returns the output path. With --deck the file lands in the home
// directory, otherwise next to the cards.
func (p *Processor) GenerateDeckFile() (string, error) {
	var outputDir string
	if p.flags.GenerateDeck {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		outputDir = homeDir
	} else {
		outputDir = p.flags.OutputDir
	}

	var outputPath string
	if p.flags.DeckCSV {
		outputPath = filepath.Join(outputDir, "annatar_import.csv")
	} else {
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
	}

	gen := deck.NewGenerator(&deck.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})
	if err := gen.GenerateFromDirectory(p.flags.OutputDir); err != nil {
		return "", fmt.Errorf("failed to generate cards: %w", err)
	}

	if p.flags.DeckCSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, complete, withNotes := gen.Stats()
	fmt.Fprintf(p.progress(), "  Generated %d cards (%d complete, %d with notes)\n", total, complete, withNotes)

	return outputPath, nil
}

// Archive moves the cards directory into the archive
func (p *Processor) Archive() error {
	path, err := archive.ArchiveCards(p.flags.OutputDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(p.stdout, "Archived cards to %s\n", path)
	return nil
}

// RunServer serves the JSON API until ctx is cancelled
func (p *Processor) RunServer(ctx context.Context) error {
	return server.New(p.flags.ServeAddr).Run(ctx)
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	app, err := gui.New(&gui.Config{
		OutputDir:   p.flags.OutputDir,
		Mode:        p.conv.Name(),
		Punctuation: p.flags.Punctuation,
		DeckName:    p.flags.DeckName,
	})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

// Helper methods

// progress returns where status lines go: stderr when stdout carries YAML
func (p *Processor) progress() io.Writer {
	if p.flags.Format == FormatYAML {
		return os.Stderr
	}
	return p.stdout
}

// saveCard writes card into the directory already holding its text, or a
// new one named by card ID
func (p *Processor) saveCard(card deck.Card) (string, error) {
	dir := p.findCardDirectory(card.English)
	if dir == "" {
		dir = filepath.Join(p.flags.OutputDir, internal.GenerateCardID(card.English))
	}
	if err := deck.WriteCard(dir, card); err != nil {
		return "", err
	}
	return dir, nil
}

func (p *Processor) findCardDirectory(text string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	// Look through all directories to find one with matching english.txt
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		if data, err := os.ReadFile(filepath.Join(dirPath, deck.EnglishFile)); err == nil {
			if strings.TrimSpace(string(data)) == text {
				return dirPath
			}
		}
	}

	return ""
}

// isFullyProcessed checks if a card directory holds every conversion
func (p *Processor) isFullyProcessed(dir string) bool {
	if os.Getenv("DEBUG_BATCH") != "" {
		fmt.Fprintf(os.Stderr, "  [DEBUG] Checking card directory: %s\n", dir)
	}

	for _, file := range []string{deck.EnglishFile, deck.TengwarFile, deck.BlackSpeechFile} {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if os.Getenv("DEBUG_BATCH") != "" {
				fmt.Fprintf(os.Stderr, "  [DEBUG] Required file missing: %s\n", path)
			}
			return false
		}
	}
	return true
}
