package text

import (
	"strings"
	"unicode"
)

// SplitSentences splits text into sentences on terminal punctuation
// ('.', '!', '?') followed by whitespace. The punctuation stays attached
// to its sentence. Leading and trailing whitespace is trimmed from each
// sentence and empty fragments are dropped.
//
// Both the summarizer and the quiz synthesizer rely on this exact
// boundary rule, so they share one implementation.
func SplitSentences(s string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if isTerminal(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			if sent := strings.TrimSpace(b.String()); sent != "" {
				sentences = append(sentences, sent)
			}
			b.Reset()
		}
	}
	if sent := strings.TrimSpace(b.String()); sent != "" {
		sentences = append(sentences, sent)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
