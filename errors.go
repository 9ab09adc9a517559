package mdpress

import (
	"errors"

	"github.com/ayase-lab/mdpress/internal/render"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrHTMLConversion re-exports the render sentinel so callers can
	// test for it without importing internal packages.
	ErrHTMLConversion = render.ErrHTMLConversion

	// Engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Output verification errors.
	ErrPDFNotGenerated = errors.New("PDF file was not generated")
	ErrPDFEmpty        = errors.New("PDF file is empty (0 bytes)")

	// Job setup errors.
	ErrNoOutputDir   = errors.New("output directory is required")
	ErrNoDocuments   = errors.New("document list is empty")
	ErrDuplicatePath = errors.New("duplicate document path")

	// Page layout validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
