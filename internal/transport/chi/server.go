// Package chi carries the inbound HTTP surface: one search endpoint whose
// behavior is dispatched from its query parameters, plus health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sudutpuncak/puncak/internal/domain"
	healthuc "github.com/sudutpuncak/puncak/internal/usecase/health"
	mountainuc "github.com/sudutpuncak/puncak/internal/usecase/mountain"
	searchuc "github.com/sudutpuncak/puncak/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the catalog query engine over HTTP.
type Server struct {
	search        *searchuc.Service
	mountains     *mountainuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	mountains *mountainuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		mountains: mountains,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, "Mountain not found"),
		sentinelHandler(domain.ErrQueryRejected, http.StatusBadGateway, "Failed to query SPARQL endpoint"),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusBadGateway, "Failed to connect to SPARQL endpoint"),
	}
	return s
}

// RegisterRoutes mounts all endpoints on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/api/search", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Search handles GET /api/search. The request shape picks the operation:
// name -> single lookup, relatedTo -> related lookup, provinces=true ->
// province listing, otherwise a ranked full-text/filtered search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if name := q.Get("name"); name != "" {
		s.getByName(w, r, name)
		return
	}

	if relatedTo := q.Get("relatedTo"); relatedTo != "" {
		s.getRelated(w, r, relatedTo)
		return
	}

	if q.Get("provinces") == "true" {
		s.getProvinces(w, r)
		return
	}

	params := searchuc.Params{
		Query:        q.Get("q"),
		Province:     q.Get("province"),
		MinElevation: parseOptionalInt(q.Get("minElevation")),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
	}

	result, err := s.search.Search(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bestMatches":  result.BestMatches,
		"otherMatches": result.OtherMatches,
	})
}

func (s *Server) getByName(w http.ResponseWriter, r *http.Request, name string) {
	m, err := s.mountains.Get(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mountain": m})
}

func (s *Server) getRelated(w http.ResponseWriter, r *http.Request, relatedTo string) {
	related, err := s.mountains.Related(r.Context(), relatedTo)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"relatedMountains": related})
}

func (s *Server) getProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := s.mountains.Provinces(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"provinces": provinces})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// parseOptionalInt parses a numeric query parameter. Non-numeric input is
// ignored rather than rejected: the filter simply does not apply.
func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sentinelHandler maps one sentinel error to an HTTP status and message.
func sentinelHandler(sentinel error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, message)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled domain error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
