package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/recodex/internal/domain"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/request"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/sortby"
	"github.com/kailas-cloud/recodex/internal/logger"
	healthuc "github.com/kailas-cloud/recodex/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/recodex/internal/usecase/recommend"
)

// EmptyMessage is the empty-state text of a recommendation response.
const EmptyMessage = "No restaurants found for the selected city and cuisine(s)."

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Limits bounds the number of recommendations per request.
type Limits struct {
	DefaultTopN int
	MaxTopN     int
}

// Server serves the recommendation API over chi.
type Server struct {
	recommend     *recommenduc.Service
	health        *healthuc.Service
	limits        Limits
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	recommend *recommenduc.Service,
	health *healthuc.Service,
	limits Limits,
	logger *zap.Logger,
) *Server {
	if limits.DefaultTopN <= 0 {
		limits.DefaultTopN = request.DefaultTopN
	}
	s := &Server{
		recommend: recommend,
		health:    health,
		limits:    limits,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrDatasetUnavailable, http.StatusServiceUnavailable, CodeDatasetUnavailable),
	}
	return s
}

// Routes mounts the API on r. /health and /metrics live at the root, the rest under /api/v1.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cities", s.ListCities)
		r.Get("/cities/{city}/cuisines", s.ListCuisines)
		r.Post("/recommendations", s.Recommend)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})
}

// ListCities handles GET /api/v1/cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.recommend.Cities(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}
	writeJSON(w, http.StatusOK, CitiesResponse{Cities: cities})
}

// ListCuisines handles GET /api/v1/cities/{city}/cuisines.
func (s *Server) ListCuisines(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	cuisines, err := s.recommend.Cuisines(r.Context(), city)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CuisinesResponse{City: city, Cuisines: cuisines})
}

// Recommend handles POST /api/v1/recommendations.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var body RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	topN := s.limits.DefaultTopN
	if body.TopN != nil {
		topN = *body.TopN
	}
	order := sortby.Similarity
	if body.SortBy != "" {
		order = sortby.Mode(body.SortBy)
	}

	req, err := request.New(body.City, body.Cuisines, topN, s.limits.MaxTopN, order)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	res, err := s.recommend.Recommend(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := RecommendResponse{
		City:         res.City,
		Count:        res.Len(),
		SortBy:       string(req.SortBy()),
		IncludesArea: res.IncludesArea,
		Items:        res.Items,
	}
	if res.IsEmpty() {
		resp.Message = EmptyMessage
	}
	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrDatasetUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
