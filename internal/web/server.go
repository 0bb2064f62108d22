package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/quic-go/quic-go/http3"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options configures a Server.
type Options struct {
	Table  *site.Table
	Config config.WebConfig
	Logger *slog.Logger
}

// Server serves the route table as HTML pages.
type Server struct {
	table   *site.Table
	cfg     config.WebConfig
	logger  *slog.Logger
	tmpl    *template.Template
	router  *mux.Router
	handler http.Handler
}

// RouteInfo describes one registered mux route.
type RouteInfo struct {
	Path    string
	Methods []string
}

// NewServer builds the handler tree for opts.
func NewServer(opts Options) (*Server, error) {
	table := opts.Table
	if table == nil {
		table = site.DefaultTable()
	}
	cfg := opts.Config
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultConfig().Web.Addr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = config.DefaultConfig().Web.ShutdownTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		table:  table,
		cfg:    cfg,
		logger: logger,
		tmpl:   tmpl,
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/static/").Handler(staticCache(http.StripPrefix("/static/", http.FileServerFS(static)))).
		Methods(http.MethodGet, http.MethodHead)
	for _, route := range table.Routes() {
		r.HandleFunc(route.Path, s.handlePage).Methods(http.MethodGet, http.MethodHead)
	}
	r.NotFoundHandler = http.HandlerFunc(s.handleUnrouted)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	s.router = r

	chain := NewChain(
		Recovery(logger),
		RequestID(),
		Logging(logger),
		SecurityHeaders(),
	)
	if cfg.HTTP3 && cfg.TLS() {
		chain.Use(AltSvc(port(cfg.Addr)))
	}
	s.handler = chain.Then(r)

	return s, nil
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Routes lists the registered mux routes in registration order.
func (s *Server) Routes() ([]RouteInfo, error) {
	var out []RouteInfo
	err := s.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return err
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = nil
		}
		out = append(out, RouteInfo{Path: tpl, Methods: methods})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}
	return out, nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down within the
// configured timeout. HTTP/3 runs beside the TCP listener when enabled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var h3 *http3.Server
	if s.cfg.HTTP3 && s.cfg.TLS() {
		h3 = &http3.Server{
			Addr:    s.cfg.Addr,
			Handler: s.handler,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("web server listening", "addr", s.cfg.Addr, "tls", s.cfg.TLS())
		var err error
		if s.cfg.TLS() {
			err = srv.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	if h3 != nil {
		g.Go(func() error {
			s.logger.Info("http/3 listening", "addr", s.cfg.Addr)
			err := h3.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
			if gctx.Err() != nil || errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("web server stopping", "timeout", s.cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if h3 != nil {
			if cerr := h3.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		return err
	})

	return g.Wait()
}

func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil || p == "" {
		return "443"
	}
	return p
}
