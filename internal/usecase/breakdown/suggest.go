package breakdown

import (
	"math/rand"
	"strings"
)

// stepCategory classifies a step for tip selection.
type stepCategory string

const (
	categoryResearch    stepCategory = "research"
	categoryWriting     stepCategory = "writing"
	categoryPlanning    stepCategory = "planning"
	categoryDevelopment stepCategory = "development"
	categoryReview      stepCategory = "review"
	categoryGeneral     stepCategory = "general"
)

// categoryKeywords map a category to the words that select it. Order of
// the check matters: the first category with a keyword hit wins.
var categoryOrder = []stepCategory{
	categoryResearch, categoryWriting, categoryPlanning,
	categoryDevelopment, categoryReview,
}

var categoryKeywords = map[stepCategory][]string{
	categoryResearch:    {"research", "study", "learn", "analyze", "gather", "investigate", "find"},
	categoryWriting:     {"write", "draft", "document", "outline", "describe", "summarize"},
	categoryPlanning:    {"plan", "schedule", "organize", "prioritize", "define", "scope"},
	categoryDevelopment: {"develop", "build", "create", "implement", "execute", "prepare"},
	categoryReview:      {"review", "finalize", "check", "revise", "test", "proofread"},
}

var categoryTips = map[stepCategory][]string{
	categoryResearch: {
		"Start with a quick survey of sources before reading anything in depth.",
		"Keep a running list of references so you can cite them later.",
		"Set a time limit for research to avoid going down rabbit holes.",
	},
	categoryWriting: {
		"Write a rough draft first; polish comes later.",
		"Start with the section you know best to build momentum.",
		"Read your text aloud to catch awkward phrasing.",
	},
	categoryPlanning: {
		"Decide what 'done' looks like before you start.",
		"Order the work so blockers surface as early as possible.",
		"Leave slack in the plan for the things you haven't thought of yet.",
	},
	categoryDevelopment: {
		"Get a minimal version working end to end before adding detail.",
		"Work in small increments you can verify as you go.",
		"Take a short break when you get stuck; fresh eyes find answers faster.",
	},
	categoryReview: {
		"Review against your original goals, not just for surface errors.",
		"Check the parts you were least confident about first.",
		"Ask someone else to look it over if you can.",
	},
	categoryGeneral: {
		"Pick the smallest concrete action and start there.",
		"Set a 25-minute timer and focus on just this step.",
		"Remove distractions before you begin.",
	},
}

// SuggestNextAction classifies a step by keyword membership and returns
// one tip from the matching category's pool. The random source is
// injected so tests can pin the selection.
func SuggestNextAction(step string, rng *rand.Rand) string {
	category := classify(step)
	tips := categoryTips[category]
	return tips[rng.Intn(len(tips))]
}

func classify(step string) stepCategory {
	lower := strings.ToLower(step)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return categoryGeneral
}
