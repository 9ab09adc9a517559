package mdpress

import (
	"context"

	"github.com/ayase-lab/mdpress/internal/render"
)

// Compile-time interface implementation checks.
var _ render.HTMLConverter = (*render.GoldmarkConverter)(nil)

// Renderer converts raw Markdown into a complete HTML document with
// embedded screen and print stylesheets.
//
// Render is a pure function of its inputs: no state is retained between
// calls and identical inputs produce byte-identical output.
type Renderer struct {
	htmlConverter render.HTMLConverter
}

// NewRenderer creates a Renderer backed by Goldmark.
func NewRenderer() *Renderer {
	return &Renderer{
		htmlConverter: render.NewGoldmarkConverter(),
	}
}

// Render converts Markdown text into a full HTML document.
//
// Every literal occurrence of pageBreakMarker is replaced with a
// block-level element that forces a page break in print media; mermaid
// fenced blocks become escaped display-only placeholders; the converted
// fragment is wrapped in the fixed document template. With
// opts.IncludeTOC, a table of contents built from the document's headings
// is injected at the top of the body.
func (r *Renderer) Render(ctx context.Context, markdown, pageBreakMarker string, opts RenderOptions) (string, error) {
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}

	md := render.SubstituteDiagramBlocks(markdown)
	md = render.SubstitutePageBreaks(md, pageBreakMarker)

	fragment, err := r.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return "", err
	}

	if opts.IncludeTOC {
		fragment = render.InjectTOC(fragment)
	}

	return render.WrapDocument(fragment), nil
}
