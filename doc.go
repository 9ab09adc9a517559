// Package mdpress converts Markdown documents to styled, paginated PDF
// files through an embedded browser engine.
//
// # Quick Start
//
// Create an engine, build a job over the files to convert, and run it:
//
//	engine := mdpress.NewRodEngine(30 * time.Second)
//	defer engine.Close()
//
//	job, err := mdpress.NewJob([]string{"a.md", "b.md"}, mdpress.JobOptions{
//	    OutputDir: "/out",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary := job.Run(ctx, engine)
//	fmt.Println(summary.Format())
//
// Each source file produces <outputDir>/<stem>.pdf. Per-file failures are
// collected on the summary and never abort the batch; only an overwrite
// Cancel decision (or context cancellation) stops the remaining queue.
//
// # Conversion Pipeline
//
// Per file, the job walks a fixed sequence:
//
//  1. Overwrite gate (optional yes/no/cancel callback)
//  2. Markdown rendering to a full HTML document (Renderer)
//  3. HTML load in the engine, rooted at the source directory
//  4. Render-settle delay (in-page post-processing has no completion signal)
//  5. PDF print, A4 portrait
//  6. Output verification by filesystem polling (exists and nonzero size)
//
// # Rendering
//
// Renderer is pure: identical (markdown, marker, options) inputs yield
// byte-identical HTML. Page-break markers become print page breaks, mermaid
// fences become escaped placeholders, and an optional TOC is injected.
//
//	r := mdpress.NewRenderer()
//	html, err := r.Render(ctx, markdown, mdpress.DefaultPageBreakMarker,
//	    mdpress.RenderOptions{IncludeTOC: true})
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package mdpress
