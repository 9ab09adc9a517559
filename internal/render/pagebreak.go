package render

import "strings"

// PageBreakElement is the block-level element substituted for the page-break
// marker. The inline style forces the break even if the document template's
// print CSS is stripped; the class is also covered by the @media print block.
const PageBreakElement = `<div class="page-break" style="page-break-after: always;"></div>`

// SubstitutePageBreaks replaces every literal occurrence of marker in the raw
// Markdown with a block-level page-break element. An empty marker disables
// substitution. The replacement happens before Markdown parsing, so the
// element passes through as raw HTML.
func SubstitutePageBreaks(markdown, marker string) string {
	if marker == "" {
		return markdown
	}
	return strings.ReplaceAll(markdown, marker, PageBreakElement)
}
