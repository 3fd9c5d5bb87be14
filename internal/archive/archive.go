// Package archive moves a finished cards directory out of the way so the
// next batch starts empty.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timestampLayout = "20060102-150405"

// ArchiveCards moves cardsDir to archive/cards-<timestamp> beside it and
// returns the new location. An empty cards directory is left in place.
func ArchiveCards(cardsDir string, now time.Time) (string, error) {
	entries, err := os.ReadDir(cardsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("cards directory does not exist: %s", cardsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cards directory: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("cards directory is empty: %s", cardsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(cardsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := filepath.Join(archiveDir, "cards-"+now.Format(timestampLayout))
	// Two archives within one second get a sub-second suffix
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, "cards-"+now.Format(timestampLayout+".000000"))
	}

	if err := os.Rename(cardsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive cards directory: %w", err)
	}
	return archivePath, nil
}
