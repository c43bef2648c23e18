package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"game-matchmaker/internal/domain/entity"

	"github.com/goccy/go-json"
)

const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's OpenAI-compatible chat completions API in JSON mode.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGroqClient never fails: a missing key surfaces on the first Generate call.
// A zero timeout leaves the call bounded only by the provider.
func NewGroqClient(apiKey, model, baseURL string, timeout time.Duration) *GroqClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultGroqBaseURL
	}
	return &GroqClient{
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *GroqClient) Name() string { return "groq" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func (g *GroqClient) Generate(ctx context.Context, req entity.AIRequest) (*entity.AIResponse, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: GROQ_API_KEY is not set", entity.ErrProviderUnavailable)
	}

	payload, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemInstruction},
			{Role: "user", Content: req.Prompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("groq response read: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("groq error: status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("groq response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("groq error: status %d: %s (%s)", resp.StatusCode, parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("groq error: status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("groq response missing choices: %w", entity.ErrEmptyCompletion)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("groq: %w", entity.ErrEmptyCompletion)
	}

	out := &entity.AIResponse{
		Content: content,
		Model:   parsed.Model,
		Latency: time.Since(start).Milliseconds(),
	}
	if out.Model == "" {
		out.Model = g.model
	}
	if parsed.Usage != nil {
		out.TokenCount = parsed.Usage.TotalTokens
	}
	return out, nil
}
