package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateCardID creates a unique ID for a card based on timestamp and its
// English text. Format: epochMillis_md5(text)[:8]
func GenerateCardID(text string) string {
	return cardID(text, time.Now())
}

func cardID(text string, now time.Time) string {
	hash := md5.Sum([]byte(text))
	hashStr := hex.EncodeToString(hash[:])[:8]
	return fmt.Sprintf("%d_%s", now.UnixMilli(), hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
