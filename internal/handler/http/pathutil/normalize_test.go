package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "known route", path: "/breakdown", want: "/breakdown"},
		{name: "known nested route", path: "/breakdown/schedule", want: "/breakdown/schedule"},
		{name: "known route with query", path: "/quiz/export?format=csv", want: "/quiz/export"},
		{name: "known route with trailing slash", path: "/summarize/", want: "/summarize"},
		{name: "health endpoint", path: "/healthz", want: "/healthz"},
		{name: "metrics endpoint", path: "/metrics", want: "/metrics"},
		{name: "root", path: "/", want: "/other"},
		{name: "unknown path", path: "/wp-admin/setup.php", want: "/other"},
		{name: "scanner probe", path: "/quiz/../etc/passwd", want: "/other"},
		{name: "unknown with query", path: "/admin?debug=1", want: "/other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExpectedCardinality(t *testing.T) {
	if got := ExpectedCardinality(); got != len(knownPaths)+1 {
		t.Errorf("ExpectedCardinality() = %d, want %d", got, len(knownPaths)+1)
	}
}
