package main

import (
	"errors"
	"os"

	mdpress "github.com/ayase-lab/mdpress"
	"github.com/ayase-lab/mdpress/internal/config"
	"github.com/ayase-lab/mdpress/internal/preview"
)

// Exit codes for the mdpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General error, including per-file conversion failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdpress.ErrBrowserConnect) ||
		errors.Is(err, mdpress.ErrPageCreate) ||
		errors.Is(err, mdpress.ErrPageLoad) ||
		errors.Is(err, mdpress.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, preview.ErrNoSourceFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidDuration) ||
		errors.Is(err, config.ErrMarkerTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdpress.ErrNoOutputDir) ||
		errors.Is(err, mdpress.ErrNoDocuments) ||
		errors.Is(err, mdpress.ErrEmptyMarkdown) ||
		errors.Is(err, mdpress.ErrInvalidPageSize) ||
		errors.Is(err, mdpress.ErrInvalidOrientation) ||
		errors.Is(err, mdpress.ErrInvalidMargin) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
