package summarize

import (
	"math"
	"sort"
	"strings"

	"tasktamer/internal/utils/text"
)

// disclaimer is appended to every heuristic summary so callers can tell
// it apart from pipeline output.
const disclaimer = "\n\n(Note: this is a basic extractive summary.)"

// minSentenceChars filters out trivial fragments after sentence splitting.
const minSentenceChars = 10

// importanceMarkers score sentences that signal key information.
var importanceMarkers = map[string]struct{}{
	"important":   {},
	"key":         {},
	"critical":    {},
	"essential":   {},
	"primary":     {},
	"significant": {},
	"main":        {},
	"major":       {},
	"crucial":     {},
}

type scoredSentence struct {
	index    int
	sentence string
	score    float64
}

// extractiveSummary selects the highest-scoring sentences and reassembles
// them in original document order.
func extractiveSummary(input string) string {
	sentences := filterSentences(text.SplitSentences(input))
	if len(sentences) == 0 {
		return MsgNoSentences
	}
	// Short texts are already their own summary.
	if len(sentences) <= 3 {
		return input
	}

	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{index: i, sentence: s, score: scoreSentence(i, s)}
	}

	// Stable sort keeps original order among equal scores.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	size := summarySize(len(sentences))
	selected := scored[:size]
	sort.Slice(selected, func(a, b int) bool {
		return selected[a].index < selected[b].index
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.sentence
	}
	return strings.Join(parts, " ") + disclaimer
}

// scoreSentence sums three independent heuristics: position, length, and
// importance-keyword presence.
func scoreSentence(index int, sentence string) float64 {
	var score float64

	switch {
	case index < 3:
		score += 1.0
	case index < 5:
		score += 0.5
	default:
		score += 0.3
	}

	words := strings.Fields(sentence)
	if n := len(words); n >= 5 && n <= 25 {
		score += 0.5
	} else {
		score += 0.2
	}

	for _, w := range words {
		w = strings.ToLower(strings.Trim(w, ".,!?;:\"'()"))
		if _, ok := importanceMarkers[w]; ok {
			score += 0.5
		}
	}
	return score
}

// summarySize targets roughly 30% of the input, clamped to [3, 10].
func summarySize(sentenceCount int) int {
	size := int(math.Round(float64(sentenceCount) * 0.3))
	if size > 10 {
		size = 10
	}
	if size < 3 {
		size = 3
	}
	return size
}

func filterSentences(sentences []string) []string {
	kept := sentences[:0]
	for _, s := range sentences {
		if len(strings.TrimSpace(s)) >= minSentenceChars {
			kept = append(kept, s)
		}
	}
	return kept
}
