package render

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// TOC depth bounds: H1 through H3 are listed, deeper headings are skipped.
const (
	tocMinDepth = 1
	tocMaxDepth = 3
)

// headingPattern matches h1-h6 tags with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags).
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding avoids double-encoding when the text is
// escaped again for the TOC entry.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// extractHeadings parses rendered HTML and returns headings within the TOC
// depth range. Headings without IDs are skipped.
func extractHeadings(htmlContent string) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < tocMinDepth || level > tocMaxDepth {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// buildTOCList renders headings as nested <ul> lists.
func buildTOCList(headings []headingInfo) string {
	var buf strings.Builder

	// Normalize: the shallowest heading present becomes nesting level 1.
	minLevel := tocMaxDepth
	for _, h := range headings {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}

	depth := 0
	for _, h := range headings {
		want := h.Level - minLevel + 1
		for depth < want {
			buf.WriteString("<ul>")
			depth++
		}
		for depth > want {
			buf.WriteString("</ul>")
			depth--
		}
		buf.WriteString(`<li><a href="#` + h.ID + `">` + html.EscapeString(h.Text) + `</a></li>`)
	}
	for depth > 0 {
		buf.WriteString("</ul>")
		depth--
	}

	return buf.String()
}

// InjectTOC prepends a table-of-contents block to an HTML fragment.
// Headings must already carry id attributes (auto heading IDs).
// If the fragment has no eligible headings, it is returned unchanged.
func InjectTOC(fragment string) string {
	headings := extractHeadings(fragment)
	if len(headings) == 0 {
		return fragment
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)
	buf.WriteString(buildTOCList(headings))
	buf.WriteString(`</nav>` + "\n")
	buf.WriteString(fragment)
	return buf.String()
}
