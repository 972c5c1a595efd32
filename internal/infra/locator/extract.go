package locator

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"tasktamer/internal/usecase/locate"
)

// minBlockChars is the threshold for the long-block extraction stage: a
// container must carry at least this much text to count as content.
const minBlockChars = 200

// knownSiteSelectors maps well-known hosts to their main content
// container. Checked by hostname suffix.
var knownSiteSelectors = map[string]string{
	"wikipedia.org":     "#mw-content-text",
	"medium.com":        "article",
	"github.com":        ".markdown-body",
	"stackoverflow.com": ".js-post-body",
	"dev.to":            "#article-body",
}

var (
	spaceRuns     = regexp.MustCompile(`[ \t]+`)
	blankLineRuns = regexp.MustCompile(`\n{2,}`)
)

// extractText pulls readable text out of an HTML page, trying strategies
// in decreasing order of precision:
//
//  1. Readability's main-content extraction
//  2. paragraph-level nodes (p, h1-h6, li)
//  3. block containers carrying a substantial amount of text
//  4. known main-content selectors for a short list of popular sites
//  5. the whole page text as last resort
//
// Script, style, and navigation chrome are stripped before stages 2-5.
func extractText(htmlBytes []byte, pageURL *url.URL) (string, error) {
	if article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL); err == nil {
		if text := collapseWhitespace(article.TextContent); text != "" {
			return text, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("%w: HTML parse failed: %v", locate.ErrNoContent, err)
	}
	doc.Find("script, style, nav, footer, header").Remove()

	if text := paragraphText(doc); text != "" {
		return text, nil
	}
	if text := longBlockText(doc); text != "" {
		return text, nil
	}
	if text := knownSiteText(doc, pageURL); text != "" {
		return text, nil
	}
	if text := collapseWhitespace(doc.Text()); text != "" {
		return text, nil
	}
	return "", locate.ErrNoContent
}

func paragraphText(doc *goquery.Document) string {
	var parts []string
	doc.Find("p, h1, h2, h3, h4, h5, h6, li").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return collapseWhitespace(strings.Join(parts, "\n"))
}

func longBlockText(doc *goquery.Document) string {
	var parts []string
	doc.Find("div, section, article").Each(func(_ int, sel *goquery.Selection) {
		// Leaf-ish blocks only: skip containers whose children are
		// themselves blocks, to avoid duplicating nested text.
		if sel.ChildrenFiltered("div, section, article").Length() > 0 {
			return
		}
		if t := strings.TrimSpace(sel.Text()); len(t) >= minBlockChars {
			parts = append(parts, t)
		}
	})
	return collapseWhitespace(strings.Join(parts, "\n"))
}

func knownSiteText(doc *goquery.Document, pageURL *url.URL) string {
	if pageURL == nil {
		return ""
	}
	host := pageURL.Hostname()
	for site, selector := range knownSiteSelectors {
		if host == site || strings.HasSuffix(host, "."+site) {
			return collapseWhitespace(doc.Find(selector).Text())
		}
	}
	return ""
}

// collapseWhitespace squeezes runs of spaces and blank lines and trims
// every line.
func collapseWhitespace(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
