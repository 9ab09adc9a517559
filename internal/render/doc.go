// Package render implements the stages of the Markdown-to-HTML rendering
// pipeline: page-break marker substitution, Goldmark conversion, document
// templating with print CSS, diagram placeholder handling, TOC injection,
// and relative path rewriting for browser-based PDF generation.
//
// Stages are small and composable; the root mdpress package orchestrates
// them into the public Renderer.
package render
