package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an environment capturing output.
func testEnv() (*Environment, *strings.Builder, *strings.Builder) {
	var stdout, stderr strings.Builder
	return &Environment{
		Now:    time.Now,
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no command", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		if code := run(ctx, []string{"mdpress"}, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage: mdpress") {
			t.Error("usage not printed")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		if code := run(ctx, []string{"mdpress", "frobnicate"}, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Unknown command: frobnicate") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		if code := run(ctx, []string{"mdpress", "version"}, env); code != ExitSuccess {
			t.Errorf("code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "mdpress ") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		if code := run(ctx, []string{"mdpress", "help", "convert"}, env); code != ExitSuccess {
			t.Errorf("code = %d", code)
		}
		if !strings.Contains(stdout.String(), "mdpress convert") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("convert without output dir", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		if code := run(ctx, []string{"mdpress", "convert", "doc.md"}, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("convert without inputs", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		if code := run(ctx, []string{"mdpress", "convert", "-o", t.TempDir()}, env); code != ExitIO {
			t.Errorf("code = %d, want %d", code, ExitIO)
		}
	})

	t.Run("convert with bad duration flag", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		doc := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(doc, []byte("# Hi\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		args := []string{"mdpress", "convert", "-o", t.TempDir(), "--settle", "soon", doc}
		if code := run(ctx, args, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("convert with missing config", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		args := []string{"mdpress", "convert", "-o", t.TempDir(), "-c", "no-such-config", "doc.md"}
		if code := run(ctx, args, env); code != ExitUsage {
			t.Errorf("code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want a hint", stderr.String())
		}
	})

	t.Run("preview without file", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		if code := run(ctx, []string{"mdpress", "preview"}, env); code != ExitIO {
			t.Errorf("code = %d, want %d", code, ExitIO)
		}
	})
}
