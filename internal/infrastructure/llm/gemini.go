package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ai-ppt-api/internal/config"
	"ai-ppt-api/pkg/metrics"
)

// GeminiGenerator 基于 Google GenAI SDK 的文本生成
type GeminiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGeminiGenerator 创建 Gemini 文本生成器
func NewGeminiGenerator(ctx context.Context, cfg config.ProviderConfig) (*GeminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		cc.HTTPOptions.Timeout = genai.Ptr(cfg.Timeout)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	gc := &genai.GenerateContentConfig{}
	if cfg.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxTokens)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
		config: gc,
	}, nil
}

// Model 模型名称
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate 单轮生成，返回模型输出的纯文本
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	if usage := resp.UsageMetadata; usage != nil {
		metrics.LLMTokensUsed.WithLabelValues(config.ProviderGemini, g.model, "prompt").Add(float64(usage.PromptTokenCount))
		metrics.LLMTokensUsed.WithLabelValues(config.ProviderGemini, g.model, "completion").Add(float64(usage.CandidatesTokenCount))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text(), nil
}
