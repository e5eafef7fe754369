// Package server exposes the viewer: embedded frontend, the mapping
// database REST API and the live-state WebSocket endpoint.
package server

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/soar/ControllerMapDB/internal/db"
	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/hub"
)

// StateSource supplies the live gamepad state for /api/state. Satisfied
// by the device reader; nil means no reader is running.
type StateSource interface {
	CurrentState() gamepad.GamepadState
}

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	source      StateSource
	database    *db.DB
	frontendFS  fs.FS
	addr        string
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, src StateSource, d *db.DB, frontendFS fs.FS, addr string) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		source:      src,
		database:    d,
		frontendFS:  frontendFS,
		addr:        addr,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.broadcaster))

	// Mapping database API
	mux.HandleFunc("GET /api/mappings", s.handleListMappings)
	mux.HandleFunc("GET /api/mappings/{guid}", s.handleGetMapping)
	mux.HandleFunc("GET /api/state", s.handleState)

	// Static files (frontend), minified on the way out
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	fileServer := http.FileServer(http.FS(s.frontendFS))
	mux.Handle("/", m.Middleware(fileServer))

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	log.Printf("HTTP server listening on %s", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		log.Println("Shutting down HTTP server...")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
