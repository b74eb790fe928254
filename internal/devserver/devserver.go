// Package devserver is a stand-in for the windowing shell spec.md §1
// puts out of scope: it renders a []paint.DisplayItem to SVG and
// serves it over HTTP, reloading connected browser tabs over a
// WebSocket when --watch is set and the source file changes, in the
// live-reload style of dpotapov-go-pages/pages.go's wsUpgrader.
package devserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toybrowser/internal/paint"
	"toybrowser/internal/style"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server renders whatever page Render currently returns and, in watch
// mode, pushes a reload notice to every connected tab when the file
// passed to Watch changes on disk.
type Server struct {
	logger *slog.Logger
	Render func() []paint.DisplayItem

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a Server. render is called fresh on every page load
// (including the reload a watched-file change triggers in a tab), so
// it should re-run the pipeline rather than return a cached result.
func New(render func() []paint.DisplayItem, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Render: render, logger: logger, clients: make(map[*websocket.Conn]struct{})}
}

// Handler returns the net/http handler serving the SVG preview, the
// reload WebSocket, and /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveSVG)
	mux.HandleFunc("/reload", s.serveReloadSocket)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) serveSVG(w http.ResponseWriter, r *http.Request) {
	items := s.Render()
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, RenderSVG(items))
}

func (s *Server) serveReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// The client never sends anything meaningful; block reading until
	// it disconnects so we notice and clean up the map entry.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcastReload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			s.logger.Warn("failed to push reload", slog.Any("error", err))
		}
	}
}

// Watch watches path with fsnotify and calls broadcastReload on every
// write or create event, until stop is closed.
func (s *Server) Watch(path string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				s.logger.Debug("watched file changed", slog.String("path", event.Name))
				s.broadcastReload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", slog.Any("error", err))
		case <-stop:
			return nil
		}
	}
}

// RenderSVG renders a flat display list to an SVG document, in the
// order paint.Paint produced it (pre-order, so later rects can
// overdraw earlier ones exactly as the real paint order would).
func RenderSVG(items []paint.DisplayItem) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg">`)
	for _, it := range items {
		switch it.Kind {
		case paint.KindRect:
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				it.Point.X, it.Point.Y, it.Size.W, it.Size.H, cssColor(it.Style))
		case paint.KindText:
			fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s">%s</text>`,
				it.Point.X, it.Point.Y, textColor(it.Style), escapeText(it.Text))
		}
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func cssColor(cs *style.ComputedStyle) string {
	c := cs.BackgroundColor
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func textColor(cs *style.ComputedStyle) string {
	c := cs.ForegroundColor
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
