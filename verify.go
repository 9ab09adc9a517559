package mdpress

import (
	"context"

	"github.com/ayase-lab/mdpress/internal/fileutil"
)

// verifyOutput checks that the printed PDF actually landed on disk. Chrome
// reports print completion before the file is necessarily flushed, so the
// check waits first, then grants one grace period before giving up.
func (j *Job) verifyOutput(ctx context.Context, outputPath string) error {
	if err := sleepCtx(ctx, j.opts.VerifyInitialWait); err != nil {
		return err
	}

	if err := checkOutput(outputPath); err != nil {
		if serr := sleepCtx(ctx, j.opts.VerifyGraceWait); serr != nil {
			return serr
		}
		return checkOutput(outputPath)
	}
	return nil
}

// checkOutput validates that the file exists and is non-empty.
func checkOutput(path string) error {
	if !fileutil.FileExists(path) {
		return ErrPDFNotGenerated
	}
	if fileutil.FileSize(path) <= 0 {
		return ErrPDFEmpty
	}
	return nil
}
