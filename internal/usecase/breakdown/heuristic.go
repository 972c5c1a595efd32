package breakdown

import (
	"regexp"
	"strings"
	"unicode"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/utils/text"
)

// minSegmentChars drops fragments too short to be a meaningful step.
const minSegmentChars = 5

// conjunctionSplit breaks a sentence on "and"/"then" connectives and
// commas. Sentence-terminal punctuation is handled by the sentence
// splitter first, so together the two passes place a boundary wherever
// any of the patterns match.
var conjunctionSplit = regexp.MustCompile(`\s+and\s+|\s+then\s+|\s*,\s*`)

// actionVerbs are prefixes that already read as imperative steps.
var actionVerbs = []string{
	"identify", "create", "plan", "research", "review",
	"write", "develop", "organize", "prepare", "analyze",
}

// positionVerbs are prepended to segments lacking an action verb,
// rotated by segment position.
var positionVerbs = [4]string{"Prepare", "Develop", "Review", "Finalize"}

// researchKeywords select the research template over the generic one.
var researchKeywords = []string{"research", "study", "learn", "analyze"}

// decompose splits a description into imperative steps. If fewer than
// two steps survive, a fixed template keyed on the description's topic
// words is substituted instead.
func decompose(description string) entity.StepList {
	// Empty and too-short fragments are dropped before enumeration so a
	// doubled or leading delimiter does not shift the position verbs.
	var segments []string
	for _, sentence := range text.SplitSentences(description) {
		for _, segment := range conjunctionSplit.Split(sentence, -1) {
			segment = strings.TrimSpace(segment)
			if len(segment) < minSegmentChars {
				continue
			}
			segments = append(segments, segment)
		}
	}

	var steps entity.StepList
	for i, segment := range segments {
		var step string
		if hasActionVerb(segment) {
			step = capitalize(segment)
		} else {
			step = positionVerb(i) + " " + segment
		}
		if !strings.HasSuffix(step, ".") && !strings.HasSuffix(step, "!") && !strings.HasSuffix(step, "?") {
			step += "."
		}
		steps = append(steps, step)
	}

	if len(steps) < 2 {
		return templateSteps(description)
	}
	return steps
}

func hasActionVerb(segment string) bool {
	lower := strings.ToLower(segment)
	for _, verb := range actionVerbs {
		if strings.HasPrefix(lower, verb) {
			return true
		}
	}
	return false
}

func positionVerb(i int) string {
	if i >= len(positionVerbs) {
		i = len(positionVerbs) - 1
	}
	return positionVerbs[i]
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// templateSteps returns one of two fixed step templates, chosen by a
// keyword-membership test on the description.
func templateSteps(description string) entity.StepList {
	lower := strings.ToLower(description)
	for _, kw := range researchKeywords {
		if strings.Contains(lower, kw) {
			return entity.StepList{
				"Research the topic: " + description,
				"Gather key information and resources.",
				"Organize your findings into main categories.",
				"Create an outline based on your research.",
				"Prepare the final document or presentation.",
			}
		}
	}
	return entity.StepList{
		"Define the scope and objectives for: " + description,
		"Break down the main components needed.",
		"Assign priorities to each component.",
		"Create a timeline for completion.",
		"Execute the plan and track progress.",
	}
}
