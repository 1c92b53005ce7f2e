// Package api exposes the node catalog over HTTP for the editor
// front-end: node schemas to render, and a value-enforcement endpoint the
// execution side calls before running a node.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/soochol/nodecanvas/internal/catalog"
)

type Server struct {
	registry       *catalog.Registry
	allowedOrigins []string
}

func NewServer(registry *catalog.Registry, allowedOrigins []string) *Server {
	return &Server{registry: registry, allowedOrigins: allowedOrigins}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Route("/api", func(r chi.Router) {
		r.Route("/nodes", func(r chi.Router) {
			r.Get("/", s.listNodes)
			r.Get("/{category}/{name}", s.getNode)
			r.Post("/{category}/{name}/enforce", s.enforceNode)
		})
	})
	return r
}
