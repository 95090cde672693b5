// Package openai implements the scoring provider over the
// OpenAI-compatible chat completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain"
	"github.com/lexica-cloud/wordrank/internal/metrics"
	"github.com/lexica-cloud/wordrank/internal/usecase/scoring"
)

const scoringInstruction = `Score each of the following English words for product naming.
For every word return: "brand" (0-10, how well it works as a brand name),
"sentiment" (-1 to 1, emotional tone) and "rarity" (1-5, how uncommon the word is).
Respond with ONLY a JSON array of objects {"word","brand","sentiment","rarity"}, no prose.

Words: %s`

// Scorer is a scoring provider using the OpenAI-compatible API.
type Scorer struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// Config holds the scoring provider settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
	Logger   *zap.Logger
}

// NewScorer creates an OpenAI-compatible scoring provider.
func NewScorer(cfg *Config) *Scorer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	provider := cfg.Provider
	if provider == "" {
		provider = "openai"
	}

	return &Scorer{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: provider,
		logger:   cfg.Logger,
	}
}

// entryDTO decodes one provider response entry. Optional fields are
// pointers so that "absent" and "zero" stay distinguishable.
type entryDTO struct {
	Word      string   `json:"word"`
	Brand     *float64 `json:"brand"`
	Sentiment *float64 `json:"sentiment"`
	Rarity    *float64 `json:"rarity"`
}

// ScoreBatch implements scoring.Provider. Transport failures wrap
// domain.ErrScoringProviderError; an unparseable response body wraps
// domain.ErrMalformedScoringResponse.
func (s *Scorer) ScoreBatch(ctx context.Context, words []string) ([]scoring.Entry, error) {
	prompt := fmt.Sprintf(scoringInstruction, strings.Join(words, ", "))

	start := time.Now()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.ScoringRequestsTotal.WithLabelValues(s.provider, s.model, "error").Inc()
		return nil, parseAPIError(err)
	}

	metrics.ScoringRequestsTotal.WithLabelValues(s.provider, s.model, "success").Inc()
	metrics.ScoringRequestDuration.WithLabelValues(s.provider, s.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.ScoringTokensTotal.WithLabelValues(s.provider, s.model, "prompt").
			Add(float64(resp.Usage.PromptTokens))
		metrics.ScoringTokensTotal.WithLabelValues(s.provider, s.model, "total").
			Add(float64(resp.Usage.TotalTokens))
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response: %w", domain.ErrMalformedScoringResponse)
	}

	entries, err := parseEntries(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (s *Scorer) HealthCheck(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseEntries decodes the completion text as a JSON array of scoring
// entries. A surrounding markdown code fence is tolerated.
func parseEntries(content string) ([]scoring.Entry, error) {
	var dtos []entryDTO
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &dtos); err != nil {
		return nil, fmt.Errorf("decode scoring entries: %w: %w", domain.ErrMalformedScoringResponse, err)
	}

	entries := make([]scoring.Entry, 0, len(dtos))
	for _, d := range dtos {
		entries = append(entries, scoring.Entry{
			Word:      strings.ToLower(strings.TrimSpace(d.Word)),
			Brand:     d.Brand,
			Sentiment: d.Sentiment,
			Rarity:    d.Rarity,
		})
	}
	return entries, nil
}

// stripCodeFence removes a leading/trailing ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrScoringProviderError so the
// scoring service treats them as a dropped batch.
func parseAPIError(err error) error {
	wrap := domain.ErrScoringProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("scoring API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("scoring API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("scoring request failed: %w", wrap)
}
