package render

import (
	"path/filepath"
	"strings"
	"testing"
)

const pageShell = `<!DOCTYPE html><html><head></head><body>%BODY%</body></html>`

func docWith(body string) string {
	return strings.Replace(pageShell, "%BODY%", body, 1)
}

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	absBase, err := filepath.Abs(base)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		body        string
		contains    []string
		notContains []string
	}{
		{
			name:     "relative img src rewritten",
			body:     `<img src="img/logo.png"/>`,
			contains: []string{"file://" + filepath.ToSlash(absBase) + "/img/logo.png"},
		},
		{
			name:     "relative href rewritten",
			body:     `<a href="other.html">x</a>`,
			contains: []string{"file://" + filepath.ToSlash(absBase) + "/other.html"},
		},
		{
			name:        "http url untouched",
			body:        `<img src="https://example.com/a.png"/>`,
			contains:    []string{"https://example.com/a.png"},
			notContains: []string{"file://"},
		},
		{
			name:        "data uri untouched",
			body:        `<img src="data:image/png;base64,AAAA"/>`,
			contains:    []string{"data:image/png;base64,AAAA"},
			notContains: []string{"file://"},
		},
		{
			name:        "anchor untouched",
			body:        `<a href="#section">x</a>`,
			contains:    []string{`href="#section"`},
			notContains: []string{"file://"},
		},
		{
			name:        "traversal outside base skipped",
			body:        `<img src="../../etc/passwd"/>`,
			contains:    []string{"../../etc/passwd"},
			notContains: []string{"file://"},
		},
		{
			name:     "absolute path untouched",
			body:     `<img src="/var/img.png"/>`,
			contains: []string{`src="/var/img.png"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(docWith(tt.body), base)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\noutput: %s", want, got)
				}
			}
			for _, bad := range tt.notContains {
				if strings.Contains(got, bad) {
					t.Errorf("output should not contain %q\noutput: %s", bad, got)
				}
			}
		})
	}
}

func TestRewriteRelativePaths_EmptyBaseDir(t *testing.T) {
	t.Parallel()

	in := docWith(`<img src="a.png"/>`)
	got, err := RewriteRelativePaths(in, "")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if got != in {
		t.Error("empty baseDir should leave document unchanged")
	}
}
