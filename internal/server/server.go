// Package server exposes the generator over HTTP: form listings, client
// records and document generation, JSON in and out.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/formbuilder"
	"github.com/goliatone/go-lettergen/pkg/generator"
	"github.com/goliatone/go-lettergen/pkg/prompt"
	"github.com/goliatone/go-lettergen/pkg/renderers/vanilla"
)

// Server routes HTTP requests to a Generator and a client store.
type Server struct {
	gen       *generator.Generator
	store     client.Store
	templates *prompt.Registry
	html      *vanilla.Renderer
	logger    *zap.Logger
	router    *chi.Mux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTemplates sets the template registry backing the form listing.
func WithTemplates(reg *prompt.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.templates = reg
		}
	}
}

// New builds a Server around the given generator and store.
func New(gen *generator.Generator, store client.Store, opts ...Option) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("server: generator is required")
	}
	if store == nil {
		return nil, fmt.Errorf("server: client store is required")
	}

	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("server: html renderer: %w", err)
	}

	s := &Server{
		gen:       gen,
		store:     store,
		templates: prompt.Default(),
		html:      html,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/api/v1/health", s.handleHealth)

	r.Route("/api/v1/forms", func(r chi.Router) {
		r.Get("/", s.handleListForms)
		r.Get("/{formType}", s.handleGetForm)
	})

	r.Route("/api/v1/clients", func(r chi.Router) {
		r.Get("/", s.handleListClients)
		r.Post("/", s.handleSaveClient)
		r.Get("/{clientID}", s.handleGetClient)
		r.Put("/{clientID}", s.handleSaveClient)
	})

	r.Post("/api/v1/generate", s.handleGenerate)

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.List(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"documents": len(s.templates.Types()),
	})
}

func (s *Server) handleListForms(w http.ResponseWriter, r *http.Request) {
	type form struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Template string `json:"template,omitempty"`
	}

	forms := []form{}
	for _, docType := range s.templates.Types() {
		def, err := s.templates.Template(docType)
		if err != nil {
			continue
		}
		forms = append(forms, form{
			Type:     def.Type,
			Title:    def.Title,
			Template: def.Webhook.Template,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"forms": forms})
}

// handleGetForm materializes the form for a document type. ?client=ID seeds
// the charges display from the record; ?format=html returns the rendered
// markup instead of JSON.
func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	formType := chi.URLParam(r, "formType")

	var buildOpts []formbuilder.BuildOption
	if clientID := r.URL.Query().Get("client"); clientID != "" {
		rec, err := s.store.Get(r.Context(), clientID)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				respondError(w, http.StatusNotFound, "client not found", err)
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to load client", err)
			return
		}
		buildOpts = append(buildOpts, formbuilder.WithClientCharges(rec.Charges))
	}

	form, err := s.gen.Form(formType, buildOpts...)
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown form type", err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		markup, err := s.html.Render(r.Context(), form)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to render form", err)
			return
		}
		w.Header().Set("Content-Type", s.html.ContentType())
		w.WriteHeader(http.StatusOK)
		w.Write(markup)
		return
	}

	respondJSON(w, http.StatusOK, formPayload(form))
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list clients", err)
		return
	}

	clients := make([]clientPayload, 0, len(records))
	for _, rec := range records {
		clients = append(clients, toClientPayload(rec))
	}

	respondJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			respondError(w, http.StatusNotFound, "client not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load client", err)
		return
	}

	respondJSON(w, http.StatusOK, toClientPayload(rec))
}

// handleSaveClient serves both POST /clients and PUT /clients/{clientID}.
// The path id wins over any id in the body.
func (s *Server) handleSaveClient(w http.ResponseWriter, r *http.Request) {
	var req clientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	rec := req.toRecord()
	if pathID := chi.URLParam(r, "clientID"); pathID != "" {
		rec.ID = pathID
	}

	saved, err := s.store.Put(r.Context(), rec)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save client", err)
		return
	}

	status := http.StatusOK
	if rec.ID == "" {
		status = http.StatusCreated
	}
	respondJSON(w, status, toClientPayload(saved))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type     string         `json:"type"`
		ClientID string         `json:"clientId"`
		Values   prompt.DataBag `json:"values"`
		Send     bool           `json:"send"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Type == "" {
		respondError(w, http.StatusBadRequest, "type is required", nil)
		return
	}

	missing, err := s.gen.Validate(req.Type, req.Values)
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown form type", err)
		return
	}

	genReq := generator.Request{
		DocType:  req.Type,
		ClientID: req.ClientID,
		Values:   req.Values,
	}

	start := time.Now()
	var result generator.Result
	if req.Send {
		result, err = s.gen.Send(r.Context(), genReq)
	} else {
		result, err = s.gen.Generate(r.Context(), genReq)
	}
	if err != nil {
		switch {
		case errors.Is(err, prompt.ErrUnknownTemplate):
			respondError(w, http.StatusNotFound, "unknown document type", err)
		case errors.Is(err, client.ErrNotFound):
			respondError(w, http.StatusNotFound, "client not found", err)
		default:
			respondError(w, http.StatusInternalServerError, "generation failed", err)
		}
		return
	}

	s.logger.Info("document generated",
		zap.String("type", result.DocType),
		zap.String("client", req.ClientID),
		zap.Bool("sent", req.Send),
		zap.Duration("elapsed", time.Since(start)))

	respondJSON(w, http.StatusOK, map[string]any{
		"type":    result.DocType,
		"prompt":  result.Prompt,
		"payload": result.Payload,
		"missing": missing,
		"sent":    req.Send,
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
