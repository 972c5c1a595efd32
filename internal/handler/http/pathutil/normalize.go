// Package pathutil normalizes request paths for metrics labeling.
package pathutil

import (
	"strings"
)

// knownPaths is the fixed route surface of the API. Anything else is
// collapsed into a single label to keep metrics cardinality bounded
// against path scanning.
var knownPaths = map[string]struct{}{
	"/breakdown":          {},
	"/breakdown/schedule": {},
	"/breakdown/suggest":  {},
	"/summarize":          {},
	"/quiz":               {},
	"/quiz/answer":        {},
	"/quiz/results":       {},
	"/quiz/export":        {},
	"/quiz/reset":         {},
	"/healthz":            {},
	"/readyz":             {},
	"/livez":              {},
	"/metrics":            {},
}

// unknownPathLabel is the collapsed label for paths outside the route surface.
const unknownPathLabel = "/other"

// NormalizePath maps a request path onto a bounded label set for metrics.
// Known routes pass through unchanged; unknown paths collapse to "/other"
// so scanners cannot explode label cardinality.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/quiz/export?format=csv") // "/quiz/export"
//	NormalizePath("/summarize/")             // "/summarize"
//	NormalizePath("/wp-admin/setup.php")     // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}

	return unknownPathLabel
}

// ExpectedCardinality returns the number of distinct path labels
// NormalizePath can produce. Useful for metrics capacity planning.
func ExpectedCardinality() int {
	return len(knownPaths) + 1 // known routes plus the "/other" bucket
}
