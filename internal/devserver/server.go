// Package devserver serves the compiled page builder bundle during
// development. It serves static assets only; the application keeps no
// server-side state.
package devserver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/vcrobe/pagebuilder/internal/config"
)

const (
	bundleFile   = "main.wasm"
	wasmExecFile = "wasm_exec.js"
)

//go:embed index.html.tmpl
var indexSource string

var indexTemplate = template.Must(template.New("index").Parse(indexSource))

// Server is the development HTTP server.
type Server struct {
	cfg    config.ServerConfig
	log    *logrus.Logger
	build  atomic.Uint64
	router chi.Router
}

// New creates a server for cfg. The router is built immediately so Handler
// can be used without Run, e.g. from httptest.
func New(cfg config.ServerConfig, log *logrus.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Build returns the current bundle build number.
func (s *Server) Build() uint64 {
	return s.build.Load()
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/"+bundleFile, s.handleAsset(bundleFile, "application/wasm"))
	r.Get("/"+wasmExecFile, s.handleAsset(wasmExecFile, "text/javascript; charset=utf-8"))
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	data := struct {
		Title string
		Build uint64
	}{Title: "Page Builder", Build: s.Build()}

	if err := indexTemplate.Execute(w, data); err != nil {
		s.log.WithError(err).Error("render index")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "ok build=%d\n", s.Build())
}

func (s *Server) handleAsset(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.cfg.Dist, name)
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.log.WithField("path", path).Warn("asset missing, build the bundle first")
				http.NotFound(w, r)
				return
			}
			s.log.WithError(err).WithField("path", path).Error("open asset")
			http.Error(w, "asset unavailable", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			http.Error(w, "asset unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Watch {
		w, err := newWatcher(s.cfg.Dist, s.bundleChanged, s.log)
		if err != nil {
			return fmt.Errorf("watch %s: %w", s.cfg.Dist, err)
		}
		go w.run(ctx)
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(logrus.Fields{"addr": s.cfg.Addr, "dist": s.cfg.Dist}).Info("serving page builder")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) bundleChanged() {
	n := s.build.Add(1)
	s.log.WithField("build", n).Info("bundle changed")
}
