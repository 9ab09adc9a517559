package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	mdpress "github.com/ayase-lab/mdpress"
	"github.com/ayase-lab/mdpress/internal/config"
	"github.com/ayase-lab/mdpress/internal/hints"
)

// runConvert orchestrates a batch conversion.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	if outputDir == "" {
		return fmt.Errorf("%w: use -o/--output or set output.dir in config", mdpress.ErrNoOutputDir)
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	docs, err := discoverDocuments(inputs)
	if err != nil {
		return err
	}
	if docs.Len() == 0 {
		return fmt.Errorf("%w: no markdown files found", mdpress.ErrNoDocuments)
	}

	opts, err := buildJobOptions(flags, cfg, outputDir, env)
	if err != nil {
		return err
	}

	timeout, err := resolveDuration(flags.timeout, cfg.Convert.TimeoutValue(), "--timeout")
	if err != nil {
		return err
	}

	job, err := mdpress.NewJob(docs.Paths(), opts)
	if err != nil {
		return err
	}

	engine := mdpress.NewRodEngine(timeout)
	defer engine.Close()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) to %s\n", docs.Len(), outputDir)
	}

	summary := job.Run(ctx, engine)

	if !flags.common.quiet || len(summary.Errors) > 0 {
		if !flags.common.quiet {
			fmt.Fprintln(env.Stderr) // end the progress line
		}
		fmt.Fprintln(env.Stdout, summary.Format())
	}

	if hasLoadFailures(summary) {
		fmt.Fprint(env.Stderr, hints.ForBrowserConnect())
		fmt.Fprint(env.Stderr, hints.ForTimeout())
		fmt.Fprintln(env.Stderr)
	}
	if hasVerifyFailures(summary) {
		fmt.Fprint(env.Stderr, hints.ForVerification())
		fmt.Fprintln(env.Stderr)
	}

	if summary.Cancelled && ctx.Err() != nil {
		return ctx.Err()
	}
	if len(summary.Errors) > 0 {
		return fmt.Errorf("%d conversion(s) failed", len(summary.Errors))
	}
	return nil
}

// buildJobOptions merges CLI flags over config values. CLI wins.
func buildJobOptions(flags *convertFlags, cfg *config.Config, outputDir string, env *Environment) (mdpress.JobOptions, error) {
	opts := mdpress.JobOptions{
		OutputDir:       outputDir,
		PageBreakMarker: cfg.Convert.PageBreakMarker,
		Render:          mdpress.RenderOptions{IncludeTOC: cfg.Convert.IncludeTOC},
	}

	if flags.fs.Changed("marker") {
		opts.PageBreakMarker = flags.marker
	}
	if flags.noTOC {
		opts.Render.IncludeTOC = false
	}

	var err error
	opts.SettleDelay, err = resolveDuration(flags.settle, cfg.Convert.SettleDelayValue(), "--settle")
	if err != nil {
		return opts, err
	}
	opts.VerifyInitialWait, err = resolveDuration(flags.verifyWait, cfg.Convert.VerifyInitialWaitValue(), "--verify-wait")
	if err != nil {
		return opts, err
	}
	opts.VerifyGraceWait, err = resolveDuration(flags.verifyGrace, cfg.Convert.VerifyGraceWaitValue(), "--verify-grace")
	if err != nil {
		return opts, err
	}

	if flags.confirmOverwrite || cfg.Convert.ConfirmOverwrite {
		opts.ConfirmOverwrite = stdinConfirm(env.Stdin, env.Stderr)
	}

	if !flags.common.quiet {
		opts.Progress = func(percent int) {
			fmt.Fprintf(env.Stderr, "\rProgress: %3d%%", percent)
		}
	}

	return opts, nil
}

// loadConfig loads the named config, or the defaults when no name is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveDuration parses a flag value, falling back to the config value.
func resolveDuration(flagValue string, fallback time.Duration, flagName string) (time.Duration, error) {
	if flagValue == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", config.ErrInvalidDuration, flagName, flagValue)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s = %q (must be >= 0)", config.ErrInvalidDuration, flagName, flagValue)
	}
	return d, nil
}

// hasLoadFailures reports whether any file failed at the HTML load stage,
// the usual symptom of a missing or unlaunchable browser.
func hasLoadFailures(summary *mdpress.Summary) bool {
	for _, e := range summary.Errors {
		if strings.HasSuffix(e, "HTML load failed") {
			return true
		}
	}
	return false
}

// hasVerifyFailures reports whether any output failed verification.
func hasVerifyFailures(summary *mdpress.Summary) bool {
	for _, e := range summary.Errors {
		if strings.HasSuffix(e, mdpress.ErrPDFNotGenerated.Error()) ||
			strings.HasSuffix(e, mdpress.ErrPDFEmpty.Error()) {
			return true
		}
	}
	return false
}
