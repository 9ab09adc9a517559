package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common           commonFlags
	output           string
	marker           string
	noTOC            bool
	confirmOverwrite bool
	settle           string
	verifyWait       string
	verifyGrace      string
	timeout          string

	fs *flag.FlagSet
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	addr   string
	marker string
	noTOC  bool

	fs *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "output directory for PDFs")
	fs.StringVar(&f.marker, "marker", "", "page break marker text (\"\" = config default)")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.confirmOverwrite, "confirm-overwrite", false, "prompt before overwriting existing PDFs")
	fs.StringVar(&f.settle, "settle", "", "page settle delay before printing (e.g., 3s)")
	fs.StringVar(&f.verifyWait, "verify-wait", "", "initial wait before verifying output (e.g., 10s)")
	fs.StringVar(&f.verifyGrace, "verify-grace", "", "extra wait when first verification fails (e.g., 5s)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{fs: fs}

	fs.StringVar(&f.addr, "addr", "", "listen address (host:port)")
	fs.StringVar(&f.marker, "marker", "", "page break marker text")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
