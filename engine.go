package mdpress

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/ayase-lab/mdpress/internal/fileutil"
	"github.com/ayase-lab/mdpress/internal/render"
)

// Engine renders loaded HTML documents to PDF files.
//
// An Engine holds at most one loaded document at a time: LoadHTML replaces
// whatever was loaded before, and PrintToPDF operates on the most recently
// loaded document. Implementations are not safe for concurrent use; a
// batch job drives its engine strictly serially.
type Engine interface {
	// LoadHTML loads a complete HTML document into the engine. baseDir,
	// when non-empty, is the directory used to resolve relative asset
	// references in the document.
	LoadHTML(ctx context.Context, htmlContent, baseDir string) error

	// PrintToPDF renders the loaded document to a PDF file at outputPath,
	// creating parent directories as needed. A nil layout uses A4
	// portrait with default margins.
	PrintToPDF(ctx context.Context, outputPath string, layout *PageLayout) error

	// Close releases all engine resources.
	Close() error
}

// Compile-time interface check
var _ Engine = (*rodEngine)(nil)

// rodEngine implements Engine using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodEngine struct {
	browser *rod.Browser
	page    *rod.Page
	cleanup func()
	timeout time.Duration
}

// NewRodEngine creates an Engine backed by headless Chrome with the given
// page-load timeout. The browser is launched lazily on first LoadHTML.
func NewRodEngine(timeout time.Duration) Engine {
	return &rodEngine{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (e *rodEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") != "" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// LoadHTML writes the document to a temporary file and opens it in a fresh
// page. Relative image and link paths are rewritten to file:// URLs under
// baseDir so local assets resolve from the temporary location.
func (e *rodEngine) LoadHTML(ctx context.Context, htmlContent, baseDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.ensureBrowser(); err != nil {
		return err
	}

	e.closePage()

	if baseDir != "" {
		rewritten, err := render.RewriteRelativePaths(htmlContent, baseDir)
		if err == nil {
			htmlContent = rewritten
		}
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		cleanup()
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			page.Close()
			cleanup()
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		page.Close()
		cleanup()
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	e.page = page
	e.cleanup = cleanup
	return nil
}

// PrintToPDF renders the loaded page to a PDF file at outputPath.
func (e *rodEngine) PrintToPDF(ctx context.Context, outputPath string, layout *PageLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.page == nil {
		return fmt.Errorf("%w: no document loaded", ErrPDFGeneration)
	}

	reader, err := e.page.PDF(buildPDFOptions(layout))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	// #nosec G306 -- generated PDFs are regular documents, not secrets
	if err := os.WriteFile(outputPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// closePage releases the current page and its backing temp file.
func (e *rodEngine) closePage() {
	if e.page != nil {
		_ = e.page.Close()
		e.page = nil
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// Close releases the page and browser.
func (e *rodEngine) Close() error {
	e.closePage()
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from a page layout.
func buildPDFOptions(layout *PageLayout) *proto.PagePrintToPDF {
	if layout == nil {
		layout = DefaultPageLayout()
	}

	width, height := layout.paperDimensions()
	margin := layout.Margin

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
