package render

import (
	"strings"
	"testing"
)

func TestSubstituteDiagramBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		markdown    string
		contains    []string
		notContains []string
	}{
		{
			name:        "mermaid block becomes placeholder",
			markdown:    "```mermaid\ngraph TD;\nA-->B;\n```",
			contains:    []string{`<div class="mermaid">`, "graph TD;"},
			notContains: []string{"```"},
		},
		{
			name:        "diagram source is escaped",
			markdown:    "```mermaid\nA --> B\n```",
			contains:    []string{"A --&gt; B"},
			notContains: []string{"A --> B"},
		},
		{
			name:        "other fences untouched",
			markdown:    "```go\nx := 1\n```",
			contains:    []string{"```go"},
			notContains: []string{"mermaid"},
		},
		{
			name:     "plain text untouched",
			markdown: "no diagrams here",
			contains: []string{"no diagrams here"},
		},
		{
			name:     "multiple mermaid blocks",
			markdown: "```mermaid\na\n```\n\ntext\n\n```mermaid\nb\n```",
			contains: []string{"text"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SubstituteDiagramBlocks(tt.markdown)
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

func TestSubstituteDiagramBlocks_CountsPlaceholders(t *testing.T) {
	t.Parallel()

	md := "```mermaid\none\n```\n\n```mermaid\ntwo\n```\n"
	got := SubstituteDiagramBlocks(md)
	if n := strings.Count(got, `<div class="mermaid">`); n != 2 {
		t.Errorf("placeholder count = %d, want 2", n)
	}
}
