package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/shiftswap-service/internal/config"
	"github.com/spec-kit/shiftswap-service/internal/domain"
	"github.com/spec-kit/shiftswap-service/internal/observability"
)

const maxResponseBytes = 1 << 20

// GeminiClient ranks candidates via the generativelanguage generateContent
// endpoint with an enforced JSON response schema. One bounded call per
// request, no retries.
type GeminiClient struct {
	cfg        config.RankingConfig
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewRanker returns the appropriate client for the configuration: a live
// Gemini client when a credential is present, otherwise a disabled client
// that always reports "no ranking available" without touching the network.
func NewRanker(cfg config.RankingConfig, logger *zap.Logger, metrics *observability.Metrics) Ranker {
	if !cfg.Enabled() {
		logger.Warn("GEMINI_API_KEY not set; ranking disabled, swaps will degrade to empty rankings")
		return &disabledClient{}
	}
	return &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
		metrics:    metrics,
	}
}

// Rank sends the request to Gemini and returns the validated result. Any
// transport failure, non-2xx status, unparseable body, or schema-invalid
// payload is an error; the caller degrades it to the empty result.
func (g *GeminiClient) Rank(ctx context.Context, req Request) (domain.RankingResult, error) {
	result, err := g.generate(ctx, req)
	g.metrics.RecordRankingCall(err != nil)
	if err != nil {
		g.logger.Error("ranking call failed", zap.Error(err))
		return domain.RankingResult{}, err
	}
	g.logger.Info("ranking received", zap.Int("candidates", len(result.RankedColleagues)))
	return result, nil
}

func (g *GeminiClient) generate(ctx context.Context, req Request) (domain.RankingResult, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return domain.RankingResult{}, err
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   rankingResponseSchema(),
		},
	})
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.cfg.BaseURL, g.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("call ranking service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.RankingResult{}, fmt.Errorf("ranking service returned status %d", resp.StatusCode)
	}

	var wire generateContentResponse
	if err := json.Unmarshal(payload, &wire); err != nil {
		return domain.RankingResult{}, fmt.Errorf("decode response envelope: %w", err)
	}
	text, err := wire.text()
	if err != nil {
		return domain.RankingResult{}, err
	}

	var result domain.RankingResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return domain.RankingResult{}, fmt.Errorf("decode ranking payload: %w", err)
	}
	// The response schema is requested from the service, but never trusted.
	if err := result.Validate(); err != nil {
		return domain.RankingResult{}, fmt.Errorf("invalid ranking payload: %w", err)
	}
	return result, nil
}

// disabledClient is the no-credential degradation path: immediately "no
// ranking available", no network call, no error.
type disabledClient struct{}

func (d *disabledClient) Rank(ctx context.Context, req Request) (domain.RankingResult, error) {
	return domain.RankingResult{}, nil
}

// --- generateContent wire types ---

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r generateContentResponse) text() (string, error) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contains no content")
	}
	return r.Candidates[0].Content.Parts[0].Text, nil
}

// rankingResponseSchema is the structured-output schema enforced on the
// service side: {rankedColleagues: [{userId, name, score, reason}]}.
func rankingResponseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"rankedColleagues": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"userId": map[string]any{"type": "INTEGER"},
						"name":   map[string]any{"type": "STRING"},
						"score":  map[string]any{"type": "NUMBER"},
						"reason": map[string]any{"type": "STRING"},
					},
					"required": []string{"userId", "name", "score", "reason"},
				},
			},
		},
		"required": []string{"rankedColleagues"},
	}
}
