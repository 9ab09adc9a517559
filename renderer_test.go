package mdpress

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRendererRender(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	ctx := context.Background()

	t.Run("empty markdown", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(ctx, "", DefaultPageBreakMarker, RenderOptions{})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("err = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("complete document", func(t *testing.T) {
		t.Parallel()
		got, err := r.Render(ctx, "# Title\n\nBody text.\n", "", RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"<!DOCTYPE html>",
			`<meta charset="utf-8"`,
			"@media print",
			"<h1 id=\"title\"",
			"Body text.",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("page break marker", func(t *testing.T) {
		t.Parallel()
		md := "before\n\n<!-- pagebreak -->\n\nafter\n"
		got, err := r.Render(ctx, md, DefaultPageBreakMarker, RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, `page-break-after: always;`) {
			t.Error("output missing forced page break")
		}
		if strings.Contains(got, "<!-- pagebreak -->") {
			t.Error("raw marker survived substitution")
		}
	})

	t.Run("empty marker disables substitution", func(t *testing.T) {
		t.Parallel()
		md := "text with <!-- pagebreak --> inline\n"
		got, err := r.Render(ctx, md, "", RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(got, `class="page-break"`) {
			t.Error("substitution ran with empty marker")
		}
	})

	t.Run("mermaid placeholder", func(t *testing.T) {
		t.Parallel()
		md := "```mermaid\ngraph TD;\n  A-->B;\n```\n"
		got, err := r.Render(ctx, md, "", RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, `<div class="mermaid">`) {
			t.Error("output missing mermaid placeholder")
		}
		if !strings.Contains(got, "A--&gt;B;") {
			t.Error("diagram source not escaped into placeholder")
		}
	})

	t.Run("toc injection", func(t *testing.T) {
		t.Parallel()
		md := "# One\n\n## Two\n\ntext\n"
		withTOC, err := r.Render(ctx, md, "", RenderOptions{IncludeTOC: true})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(withTOC, `<nav class="toc">`) {
			t.Error("TOC not injected")
		}
		if !strings.Contains(withTOC, `href="#one"`) {
			t.Error("TOC missing heading anchor")
		}

		withoutTOC, err := r.Render(ctx, md, "", RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(withoutTOC, `<nav class="toc">`) {
			t.Error("TOC injected without the option")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		md := "# Title\n\n```go\nfunc main() {}\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
		first, err := r.Render(ctx, md, DefaultPageBreakMarker, RenderOptions{IncludeTOC: true})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			again, err := r.Render(ctx, md, DefaultPageBreakMarker, RenderOptions{IncludeTOC: true})
			if err != nil {
				t.Fatal(err)
			}
			if again != first {
				t.Fatal("identical inputs produced different output")
			}
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Render(cancelled, "# Title\n", "", RenderOptions{})
		if err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}
