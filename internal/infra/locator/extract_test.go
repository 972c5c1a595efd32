package locator

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"tasktamer/internal/usecase/locate"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing %q: %v", raw, err)
	}
	return u
}

func TestExtractText_Paragraphs(t *testing.T) {
	html := `<html><head><script>ignore()</script><style>.x{}</style></head>
<body>
<nav>Site navigation</nav>
<h1>Article Title</h1>
<p>First paragraph of the article body.</p>
<p>Second paragraph with more detail.</p>
<footer>Copyright footer</footer>
</body></html>`

	text, err := extractText([]byte(html), mustParse(t, "https://example.com/article"))
	if err != nil {
		t.Fatalf("extractText() error: %v", err)
	}

	for _, want := range []string{"Article Title", "First paragraph", "Second paragraph"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "ignore()") {
		t.Errorf("extracted text should not contain script code:\n%s", text)
	}
}

func TestExtractText_LongBlockFallback(t *testing.T) {
	long := strings.Repeat("Meaningful block content. ", 20)
	html := `<html><body><div>short</div><div>` + long + `</div></body></html>`

	text, err := extractText([]byte(html), mustParse(t, "https://example.com/"))
	if err != nil {
		t.Fatalf("extractText() error: %v", err)
	}
	if !strings.Contains(text, "Meaningful block content.") {
		t.Errorf("long block not extracted:\n%s", text)
	}
}

func TestExtractText_Empty(t *testing.T) {
	_, err := extractText([]byte(`<html><body><script>only()</script></body></html>`), mustParse(t, "https://example.com/"))
	if !errors.Is(err, locate.ErrNoContent) {
		t.Errorf("extractText() error = %v, want ErrNoContent", err)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a   b\t\tc", "a b c"},
		{"line one\n\n\n\nline two", "line one\nline two"},
		{"  padded  \n\n  lines  ", "padded\nlines"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
