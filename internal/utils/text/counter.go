// Package text provides small utilities for text measurement and splitting
// shared by the transformation features and the NLP pipeline adapters.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Counting runes instead of bytes keeps limits consistent for multi-byte
// characters (accented text, CJK, emoji).
//
// Examples:
//
//	CountRunes("hello")    // returns 5
//	CountRunes("héllo")    // returns 5
//	CountRunes("")         // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
// Used by the summarizer length heuristic and the quiz blank picker.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
