// Package ai contains the HTTP adapters for the external recommendation
// service. Both adapters speak the provider REST APIs directly with net/http;
// no SDK is required.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/ports"
)

// Compile-time check that GeminiService implements AdvisorService.
var _ ports.AdvisorService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// advisorSystemPrompt pins the model to the showroom-advisor role and a
	// short plain-text answer the chat panel can display as-is.
	advisorSystemPrompt = `You are an expert car sales advisor for a premium dealership showroom.
The showroom carries performance and luxury vehicles across Petrol, Diesel, EV and Hybrid fuel types.
Given a customer's free-text request, recommend one or two concrete models that fit it and say why in one or two sentences.
Answer in plain text only: no markdown, no lists, at most 80 words.`
)

// GeminiService adapter implementing AdvisorService against the Google Gemini
// REST API.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService constructs the adapter. model is usually "gemini-1.5-flash".
// An empty apiKey makes calls return a descriptive error instead of panicking.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // network budget; the session adds its own WithTimeout
		},
	}
}

// ── Internal structures for the Gemini API ────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Port implementation ───────────────────────────────────────────────────────

// Recommend sends the customer query to Gemini and returns the reply text.
func (s *GeminiService) Recommend(ctx context.Context, query string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY not configured")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: advisorSystemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: query}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.6,
			MaxOutputTokens: 256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serialize request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: build HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout or cancellation: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: read response: %w", err)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserialize Gemini response: %w", err)
	}
	if gemResp.Error != nil {
		return "", fmt.Errorf("AI: Gemini error %d: %s", gemResp.Error.Code, gemResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI: Gemini HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini returned an empty reply")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
