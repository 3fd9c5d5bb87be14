package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents one line of a batch file
type Entry struct {
	Text  string
	Notes string
}

// ReadBatchFile reads entries from a file and returns an Entry slice
// Supports formats:
// - English text only: "One Ring to rule them all"
// - With notes: "One Ring to rule them all = Ring inscription, line 1"
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content
func ParseBatch(content string) []Entry {
	var entries []Entry

	for _, line := range splitLines(content) {
		line = trimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, "=") {
			entries = append(entries, Entry{Text: line})
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		text := trimSpace(parts[0])
		notes := trimSpace(parts[1])
		// Ignore lines with an empty text part
		if text == "" {
			continue
		}
		entries = append(entries, Entry{Text: text, Notes: notes})
	}

	return entries
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// trimSpace trims whitespace from string
func trimSpace(s string) string {
	start := 0
	end := len(s)

	// Trim from start
	for start < end && isSpace(rune(s[start])) {
		start++
	}

	// Trim from end
	for end > start && isSpace(rune(s[end-1])) {
		end--
	}

	return s[start:end]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
