package render

import (
	"html"
	"regexp"
)

// mermaidFencePattern matches a fenced code block tagged as mermaid.
// Captures the diagram source between the fences.
var mermaidFencePattern = regexp.MustCompile("(?ms)^```mermaid[ \t]*\r?\n(.*?)^```[ \t]*$")

// SubstituteDiagramBlocks replaces mermaid fenced code blocks with an
// escaped, visually boxed placeholder. No diagram rendering is performed;
// this is a display-only fallback so the source stays readable in the PDF.
// Runs on raw Markdown before parsing so the placeholder passes through as
// raw HTML.
func SubstituteDiagramBlocks(markdown string) string {
	return mermaidFencePattern.ReplaceAllStringFunc(markdown, func(block string) string {
		m := mermaidFencePattern.FindStringSubmatch(block)
		if m == nil {
			return block
		}
		escaped := html.EscapeString(m[1])
		return `<div class="mermaid"><pre style="text-align: left; background: #f8f9fa; padding: 10px; border-radius: 4px;"><code>` +
			escaped + `</code></pre></div>`
	})
}
