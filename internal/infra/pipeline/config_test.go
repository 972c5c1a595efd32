package pipeline

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDocument_CountsRunes(t *testing.T) {
	// Each é is two bytes, so a byte-based cut would either truncate a
	// document that is under the rune limit or split a character in half.
	under := strings.Repeat("é", maxDocumentChars)
	if got, truncated := truncateDocument(under); truncated || got != under {
		t.Errorf("truncateDocument() truncated a document of %d runes", maxDocumentChars)
	}

	over := strings.Repeat("é", maxDocumentChars+5)
	got, truncated := truncateDocument(over)
	if !truncated {
		t.Fatalf("truncateDocument() did not truncate a document of %d runes", maxDocumentChars+5)
	}
	if !utf8.ValidString(got) {
		t.Error("truncateDocument() produced invalid UTF-8")
	}
	kept := strings.TrimSuffix(got, "...\n(content truncated due to length)")
	if n := utf8.RuneCountInString(kept); n != maxDocumentChars {
		t.Errorf("truncateDocument() kept %d runes, want %d", n, maxDocumentChars)
	}
}
