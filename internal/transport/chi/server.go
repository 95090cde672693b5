// Package chi implements the HTTP API over the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain"
	"github.com/lexica-cloud/wordrank/internal/domain/criteria"
	"github.com/lexica-cloud/wordrank/internal/domain/word"
	extractuc "github.com/lexica-cloud/wordrank/internal/usecase/extract"
	healthuc "github.com/lexica-cloud/wordrank/internal/usecase/health"
)

// Server implements the HTTP handlers for the wordrank API.
type Server struct {
	extract *extractuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(extract *extractuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{extract: extract, health: health, logger: logger}
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/api/v1/extract", s.ExtractWords)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// extractRequest mirrors the inbound JSON payload.
type extractRequest struct {
	Fields      []string `json:"fields"`
	LengthRange []int    `json:"lengthRange"`
	FirstLetter string   `json:"firstLetter"`
	POSType     string   `json:"posType"`
	RarityRange []int    `json:"rarityRange"`
	BrandMode   bool     `json:"brandMode"`
	MaxResults  int      `json:"maxResults"`
}

type wordMeta struct {
	Brand           float64 `json:"brand"`
	Rarity          float64 `json:"rarity"`
	Sentiment       float64 `json:"sentiment"`
	DomainAvailable bool    `json:"domain_available"`
	DomainScore     float64 `json:"domain_score"`
}

type scoredWordItem struct {
	Word string   `json:"word"`
	Meta wordMeta `json:"meta"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ExtractWords handles POST /api/v1/extract.
func (s *Server) ExtractWords(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	crit, err := criteriaFromRequest(req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.extract.Extract(r.Context(), &crit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]scoredWordItem, len(results))
	for i := range results {
		items[i] = scoredToItem(&results[i])
	}

	writeJSON(w, http.StatusOK, items)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":       report.Status,
		"scoring_mode": report.ScoringMode,
		"checks":       report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func criteriaFromRequest(req extractRequest) (criteria.Criteria, error) {
	var minLen, maxLen int
	if len(req.LengthRange) == 2 {
		minLen, maxLen = req.LengthRange[0], req.LengthRange[1]
	} else if len(req.LengthRange) != 0 {
		return criteria.Criteria{}, errors.Join(
			domain.ErrInvalidCriteria, errors.New("lengthRange must be [min,max]"),
		)
	}

	var minRarity, maxRarity int
	if len(req.RarityRange) == 2 {
		minRarity, maxRarity = req.RarityRange[0], req.RarityRange[1]
	} else if len(req.RarityRange) != 0 {
		return criteria.Criteria{}, errors.Join(
			domain.ErrInvalidCriteria, errors.New("rarityRange must be [min,max]"),
		)
	}

	return criteria.New(
		req.Fields,
		minLen, maxLen,
		req.FirstLetter,
		req.POSType,
		minRarity, maxRarity,
		req.BrandMode,
		req.MaxResults,
	)
}

func scoredToItem(s *word.Scored) scoredWordItem {
	m := s.Metrics()
	return scoredWordItem{
		Word: s.Value(),
		Meta: wordMeta{
			Brand:           m.Brand(),
			Rarity:          m.Rarity(),
			Sentiment:       m.Sentiment(),
			DomainAvailable: m.DomainAvailable(),
			DomainScore:     m.DomainScore(),
		},
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidCriteria) {
		s.logger.Warn("rejected request", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
