// Package server wires the console's HTTP surface: the rendered dashboard
// pages, health, and metrics.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/nav"
)

// Server serves the console.
type Server struct {
	log     *zap.Logger
	nav     *nav.Nav
	checker auth.Checker
	router  chi.Router
}

// New assembles the router. checker may be nil; every page then renders
// unauthenticated.
func New(log *zap.Logger, n *nav.Nav, checker auth.Checker) *Server {
	s := &Server{
		log:     log,
		nav:     n,
		checker: checker,
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)
	r.Use(auth.Middleware(checker, log))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleRoot)
	r.Get("/{seg}", s.handleOneSegment)
	r.Get("/{namespace}/{page}", s.handleNamespacedPage)

	s.router = r

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }
