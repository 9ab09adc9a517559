package mdpress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayase-lab/mdpress/internal/fileutil"
)

// Decision is the answer to an overwrite prompt.
type Decision int

const (
	// DecisionOverwrite replaces the existing output file.
	DecisionOverwrite Decision = iota
	// DecisionSkip leaves the existing output file and moves on.
	DecisionSkip
	// DecisionCancel ends the whole job immediately.
	DecisionCancel
)

// ConfirmOverwriteFunc is consulted once per file whose output already
// exists. It receives the output path that would be overwritten.
type ConfirmOverwriteFunc func(outputPath string) Decision

// Default pacing for the batch pipeline.
const (
	// DefaultSettleDelay is how long a loaded page is given for in-page
	// layout to settle before printing. A fixed delay is a deliberate
	// approximation; there is no reliable end-of-layout signal.
	DefaultSettleDelay = 3 * time.Second

	// DefaultVerifyInitialWait is the first wait before checking that the
	// PDF landed on disk.
	DefaultVerifyInitialWait = 10 * time.Second

	// DefaultVerifyGraceWait is the single extra wait granted when the
	// first check fails.
	DefaultVerifyGraceWait = 5 * time.Second
)

// maxSummaryErrors caps how many error lines a formatted summary shows.
const maxSummaryErrors = 5

// JobOptions configures a batch conversion job. Zero-value durations fall
// back to the package defaults.
type JobOptions struct {
	// OutputDir receives one <stem>.pdf per source file. Required.
	OutputDir string

	// PageBreakMarker is substituted with a forced page break. Empty
	// disables substitution.
	PageBreakMarker string

	// Render holds per-document rendering options.
	Render RenderOptions

	// ConfirmOverwrite, when set, gates every file whose output already
	// exists. When nil, existing outputs are overwritten silently.
	ConfirmOverwrite ConfirmOverwriteFunc

	// Progress, when set, receives monotonically non-decreasing values in
	// [0, 100] as the job advances.
	Progress func(percent int)

	SettleDelay       time.Duration
	VerifyInitialWait time.Duration
	VerifyGraceWait   time.Duration
}

// Job converts an ordered list of Markdown files to PDFs, one at a time.
// Per-file failures are recorded and the job moves on; only cancellation
// stops the remaining queue.
type Job struct {
	docs     []string
	opts     JobOptions
	renderer *Renderer
	progress int
}

// Summary reports the outcome of a completed job.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Cancelled bool
	Errors    []string
}

// Format renders the summary as a short human-readable report. At most
// five error lines are shown; further errors are counted.
func (s *Summary) Format() string {
	var b strings.Builder
	if s.Cancelled {
		b.WriteString("Conversion cancelled: ")
	} else {
		b.WriteString("Conversion complete: ")
	}
	fmt.Fprintf(&b, "%d of %d succeeded", s.Succeeded, s.Total)
	if s.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", s.Skipped)
	}
	if len(s.Errors) > 0 {
		fmt.Fprintf(&b, ", %d failed", len(s.Errors))
		shown := s.Errors
		if len(shown) > maxSummaryErrors {
			shown = shown[:maxSummaryErrors]
		}
		for _, e := range shown {
			b.WriteString("\n  ")
			b.WriteString(e)
		}
		if rest := len(s.Errors) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "\n  ... and %d more errors", rest)
		}
	}
	return b.String()
}

// NewJob creates a job over the given source files. Paths keep their
// order; duplicates are rejected.
func NewJob(paths []string, opts JobOptions) (*Job, error) {
	if opts.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}

	seen := make(map[string]struct{}, len(paths))
	docs := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, p)
		}
		seen[p] = struct{}{}
		docs = append(docs, p)
	}

	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.VerifyInitialWait == 0 {
		opts.VerifyInitialWait = DefaultVerifyInitialWait
	}
	if opts.VerifyGraceWait == 0 {
		opts.VerifyGraceWait = DefaultVerifyGraceWait
	}

	return &Job{
		docs:     docs,
		opts:     opts,
		renderer: NewRenderer(),
	}, nil
}

// OutputPath returns the PDF path a source file converts to.
func (j *Job) OutputPath(sourcePath string) string {
	return filepath.Join(j.opts.OutputDir, fileutil.Stem(sourcePath)+".pdf")
}

// Run drives the pipeline over every document in order. Each file walks
// through overwrite gate, read, render, load, settle, print, and verify;
// failures at any stage are recorded as "<file>: <reason>" and the job
// advances. A Cancel decision or context cancellation ends the job; the
// unconverted tail is not counted as errors.
func (j *Job) Run(ctx context.Context, engine Engine) *Summary {
	total := len(j.docs)
	summary := &Summary{Total: total}
	completed := 0

	for _, path := range j.docs {
		if ctx.Err() != nil {
			summary.Cancelled = true
			break
		}

		name := filepath.Base(path)
		outputPath := j.OutputPath(path)

		if j.opts.ConfirmOverwrite != nil && fileutil.FileExists(outputPath) {
			switch j.opts.ConfirmOverwrite(outputPath) {
			case DecisionSkip:
				summary.Skipped++
				completed++
				j.report(completed * 100 / total)
				continue
			case DecisionCancel:
				summary.Cancelled = true
			}
			if summary.Cancelled {
				break
			}
		}

		content, err := os.ReadFile(path) // #nosec G304 -- paths come from the caller's own file list
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", name, err))
			completed++
			j.report(completed * 100 / total)
			continue
		}

		htmlDoc, err := j.renderer.Render(ctx, string(content), j.opts.PageBreakMarker, j.opts.Render)
		if err != nil {
			if ctxDone(ctx, err) {
				summary.Cancelled = true
				break
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", name, err))
			completed++
			j.report(completed * 100 / total)
			continue
		}

		j.report((completed*100 + 20) / total)
		if err := engine.LoadHTML(ctx, htmlDoc, filepath.Dir(path)); err != nil {
			if ctxDone(ctx, err) {
				summary.Cancelled = true
				break
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: HTML load failed", name))
			completed++
			j.report(completed * 100 / total)
			continue
		}
		j.report((completed*100 + 40) / total)

		if err := sleepCtx(ctx, j.opts.SettleDelay); err != nil {
			summary.Cancelled = true
			break
		}
		j.report((completed*100 + 60) / total)

		if err := engine.PrintToPDF(ctx, outputPath, nil); err != nil {
			if ctxDone(ctx, err) {
				summary.Cancelled = true
				break
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: PDF generation error - %v", name, err))
			completed++
			j.report(completed * 100 / total)
			continue
		}

		if err := j.verifyOutput(ctx, outputPath); err != nil {
			if ctxDone(ctx, err) {
				summary.Cancelled = true
				break
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", name, err))
			completed++
			j.report(completed * 100 / total)
			continue
		}

		summary.Succeeded++
		completed++
		j.report(completed * 100 / total)
	}

	if !summary.Cancelled {
		j.report(100)
	}
	return summary
}

// report forwards a progress value, clamped to [0, 100] and never below a
// previously reported value.
func (j *Job) report(percent int) {
	if percent < j.progress {
		percent = j.progress
	}
	if percent > 100 {
		percent = 100
	}
	j.progress = percent
	if j.opts.Progress != nil {
		j.opts.Progress(percent)
	}
}

// ctxDone reports whether err stems from the context ending.
func ctxDone(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// sleepCtx waits for d or until the context ends, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
