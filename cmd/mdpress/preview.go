package main

import (
	"context"
	"errors"
	"fmt"

	mdpress "github.com/ayase-lab/mdpress"
	"github.com/ayase-lab/mdpress/internal/preview"
)

// runPreview serves a live preview of a single Markdown file.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}
	if len(inputs) != 1 {
		printPreviewUsage(env.Stderr)
		return ErrNoInput
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	addr := flags.addr
	if addr == "" {
		addr = cfg.Preview.Addr
	}

	marker := cfg.Convert.PageBreakMarker
	if flags.fs.Changed("marker") {
		marker = flags.marker
	}
	renderOpts := mdpress.RenderOptions{IncludeTOC: cfg.Convert.IncludeTOC}
	if flags.noTOC {
		renderOpts.IncludeTOC = false
	}

	renderer := mdpress.NewRenderer()
	render := func(ctx context.Context, markdown string) (string, error) {
		return renderer.Render(ctx, markdown, marker, renderOpts)
	}

	srv, err := preview.NewServer(addr, inputs[0], render)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Previewing %s at http://%s (Ctrl+C to stop)\n", inputs[0], addr)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
