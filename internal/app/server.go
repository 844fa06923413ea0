// Package app assembles the HTTP surface: the S.P.I.D.E.R. agent-lookup
// protocol, the W.E.B. surveillance and inventory protocol, and the AI chat
// proxy. All datasets are loaded read-only before serving begins, so request
// handling shares no mutable state.
package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"arachnid/internal/ai"
	"arachnid/internal/config"
	"arachnid/internal/dataset"
	"arachnid/internal/observability"
)

type Server struct {
	cfg   config.Config
	store *dataset.Store
	ai    *ai.Client
}

func NewServer(cfg config.Config) (*Server, error) {
	store, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return &Server{
		cfg:   cfg,
		store: store,
		ai:    ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL),
	}, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(observability.RequestID)
	r.Use(observability.Logging)
	r.Use(cors)

	r.Route("/api", func(api chi.Router) {
		api.NotFound(s.handleAPINotFound)

		api.Route("/v1/spider", func(r chi.Router) {
			r.Get("/info", s.handleSpiderInfo)
			r.Post("/key", s.handleSpiderKey)
			r.Group(func(keyed chi.Router) {
				keyed.Use(observability.SpiderKey(s.cfg.SpiderKey))
				keyed.Get("/agents", s.handleAgentSearch)
				keyed.Get("/triggered", s.handleTriggeredAgents)
				keyed.Get("/logs/{uuid}", s.handleAgentLogs)
			})
		})

		// The W.E.B. surface takes no key. Surveillance retrieval is the
		// public tier of the puzzle.
		api.Route("/v1/web", func(r chi.Router) {
			r.Get("/info", s.handleWebInfo)
			r.Get("/suspects", s.handleSuspects)
			r.Get("/surveillance/{uuid}", s.handleSurveillance)
		})
		api.Get("/web/cities", s.handleCities)
		api.Get("/web/inventory", s.handleInventory)

		api.Route("/v1/ai", func(r chi.Router) {
			r.Get("/", s.handleAIInfo)
			r.Post("/chat", s.handleAIChat)
		})
	})

	return r
}

// cors answers preflight for browser callers; the AI chat endpoint is meant
// to be hit from player-written frontends.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Request-Id,X-SPIDER-Key")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleAPINotFound formats undefined API paths as JSON instead of the
// router's default page.
func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error": map[string]any{
			"message": "API endpoint not found",
			"status":  http.StatusNotFound,
			"path":    r.URL.Path,
		},
	})
}
