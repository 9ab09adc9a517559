// Package preview serves a live-rendered view of a single Markdown file
// over HTTP. A filesystem watcher pushes reload events to connected
// browsers via server-sent events, and the source directory is served
// alongside so relative images resolve.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for the preview server.
var (
	ErrNoSourceFile = errors.New("no source file specified")
	ErrRenderFailed = errors.New("failed to render document")
)

// shutdownGrace bounds how long open connections are drained on stop.
const shutdownGrace = 2 * time.Second

// RenderFunc converts Markdown source into a complete HTML document.
type RenderFunc func(ctx context.Context, markdown string) (string, error)

// Server is a live preview HTTP server for one Markdown file.
type Server struct {
	addr       string
	sourcePath string
	sourceDir  string
	render     RenderFunc
	reload     *broadcaster
	static     http.Handler
}

// NewServer creates a preview server for sourcePath listening on addr.
func NewServer(addr, sourcePath string, render RenderFunc) (*Server, error) {
	if sourcePath == "" {
		return nil, ErrNoSourceFile
	}
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolving source path: %w", err)
	}
	dir := filepath.Dir(abs)

	return &Server{
		addr:       addr,
		sourcePath: abs,
		sourceDir:  dir,
		render:     render,
		reload:     newBroadcaster(),
		static:     http.FileServer(http.Dir(dir)),
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until the context is cancelled. The source file is watched
// for changes; each change pushes a reload event to connected clients.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := watchFile(ctx, s.sourcePath, s.reload.Notify)
	if err != nil {
		return err
	}
	defer watcher.Close()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Handler returns the HTTP handler: "/" serves the rendered document,
// "/events" streams reload events, everything else is served from the
// source directory so relative assets resolve.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/events", s.handleEvents)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.static.ServeHTTP(w, r)
		return
	}

	content, err := os.ReadFile(s.sourcePath) // #nosec G304 -- path fixed at server construction
	if err != nil {
		http.Error(w, fmt.Sprintf("reading %s: %v", filepath.Base(s.sourcePath), err), http.StatusInternalServerError)
		return
	}

	htmlDoc, err := s.render(r.Context(), string(content))
	if err != nil {
		http.Error(w, fmt.Sprintf("%v: %v", ErrRenderFailed, err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(injectReloadScript(htmlDoc)))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	events := s.reload.Subscribe()
	defer s.reload.Unsubscribe(events)

	keepalive := time.NewTicker(15 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-events:
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// reloadScript subscribes the page to the event stream and reloads it on
// every change notification.
const reloadScript = `<script>new EventSource("/events").onmessage = function() { location.reload(); };</script>`

// injectReloadScript inserts the reload script before </body>, or appends
// it when the document has no closing body tag.
func injectReloadScript(htmlDoc string) string {
	if idx := strings.LastIndex(strings.ToLower(htmlDoc), "</body>"); idx >= 0 {
		return htmlDoc[:idx] + reloadScript + "\n" + htmlDoc[idx:]
	}
	return htmlDoc + "\n" + reloadScript
}
