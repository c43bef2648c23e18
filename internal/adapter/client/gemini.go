package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"game-matchmaker/internal/domain/entity"

	"google.golang.org/genai"
)

// GeminiClient asks Gemini for JSON constrained by RecommendationSchema.
type GeminiClient struct {
	client *genai.Client
	model  string
}

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiOptions selects the backend: Vertex AI when Project is set, the Gemini API otherwise.
type GeminiOptions struct {
	APIKey   string
	Project  string
	Location string
	BaseURL  string // optional endpoint override, e.g. a proxy
	Model    string
}

func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.Project != "" {
		cfg = &genai.ClientConfig{
			Project:  opts.Project,
			Location: opts.Location,
			Backend:  genai.BackendVertexAI,
		}
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewGeminiClientFromClient(c, opts.Model), nil
}

// NewGeminiClientFromClient shares an existing genai client; an empty model
// falls back to DefaultGeminiModel.
func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{client: c, model: model}
}

func (g *GeminiClient) Name() string { return "gemini" }

func (g *GeminiClient) Generate(ctx context.Context, req entity.AIRequest) (*entity.AIResponse, error) {
	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    RecommendationSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	resp, err := responseFromResult(g.model, result)
	if err != nil {
		return nil, err
	}
	resp.Latency = time.Since(start).Milliseconds()
	return resp, nil
}

func responseFromResult(model string, result *genai.GenerateContentResponse) (*entity.AIResponse, error) {
	if result == nil {
		return nil, fmt.Errorf("gemini: %w", entity.ErrEmptyCompletion)
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, fmt.Errorf("gemini refused the prompt: %s", fb.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini response missing candidates: %w", entity.ErrEmptyCompletion)
	}

	content := strings.TrimSpace(result.Text())
	if content == "" {
		return nil, fmt.Errorf("gemini: %w", entity.ErrEmptyCompletion)
	}

	resp := &entity.AIResponse{
		Content: content,
		Model:   model,
	}
	if result.ModelVersion != "" {
		resp.Model = result.ModelVersion
	}
	if result.UsageMetadata != nil {
		resp.TokenCount = int(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}
