package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	hform "github.com/hsmyc/hform-validator"
	"github.com/hsmyc/hform-validator/pkg/schema"
)

// Server exposes schema validation as a JSON API.
type Server struct {
	logger     *slog.Logger
	predicates map[string]func(any) bool

	registry    *prometheus.Registry
	validations *prometheus.CounterVec
}

// ValidateRequest is the body of POST /v1/validate: a declarative schema
// document and the input to check against it.
type ValidateRequest struct {
	Schema map[string]any `json:"schema"`
	Input  map[string]any `json:"input"`
}

// ValidateResponse carries the overall verdict and the mirrored result tree.
type ValidateResponse struct {
	Valid  bool          `json:"valid"`
	Fields schema.Result `json:"fields"`
}

// NewHandler creates the HTTP handler. Schemas arrive per request and may
// reference the given named predicates.
func NewHandler(logger *slog.Logger, predicates map[string]func(any) bool) http.Handler {
	registry := prometheus.NewRegistry()
	validations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hform_validations_total",
			Help: "Validation requests by outcome.",
		},
		[]string{"outcome"},
	)
	registry.MustRegister(validations)

	s := &Server{
		logger:      logger,
		predicates:  predicates,
		registry:    registry,
		validations: validations,
	}

	r := chi.NewRouter()
	r.Post("/v1/validate", s.Validate)
	r.Get("/healthz", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

// Validate handles POST /v1/validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	parsed, err := schema.ParseSchema(body.Schema, schema.WithPredicates(s.predicates))
	if err != nil {
		s.logger.Warn("rejected schema document", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	res := hform.New(parsed, hform.WithLogger(s.logger)).Validate(body.Input)

	outcome := "invalid"
	if res.Ok() {
		outcome = "valid"
	}
	s.validations.WithLabelValues(outcome).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ValidateResponse{Valid: res.Ok(), Fields: res}); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		s.logger.Error("write response", "err", err)
	}
}
