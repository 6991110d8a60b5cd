package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"ai-ppt-api/internal/config"
	einoobs "ai-ppt-api/internal/observability/eino"
)

// EinoGenerator 基于 Eino ChatModel 的文本生成（任意 OpenAI 兼容端点）
type EinoGenerator struct {
	chatModel model.BaseChatModel
	provider  string
	model     string
}

// NewEinoGenerator 使用 Eino OpenAI 适配器创建文本生成器
func NewEinoGenerator(ctx context.Context, name string, cfg config.ProviderConfig) (*EinoGenerator, error) {
	mc := &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		mc.MaxTokens = ptr(cfg.MaxTokens)
	}
	if cfg.Temperature > 0 {
		mc.Temperature = ptr(float32(cfg.Temperature))
	}

	chatModel, err := openai.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}
	return NewEinoGeneratorWithModel(chatModel, name, cfg.Model), nil
}

// NewEinoGeneratorWithModel 包装已有的 ChatModel
func NewEinoGeneratorWithModel(chatModel model.BaseChatModel, provider, modelName string) *EinoGenerator {
	return &EinoGenerator{
		chatModel: chatModel,
		provider:  provider,
		model:     modelName,
	}
}

// Model 模型名称
func (g *EinoGenerator) Model() string {
	return g.model
}

// Generate 单轮生成
func (g *EinoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = einoobs.WithProvider(ctx, g.provider)

	msg, err := g.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", g.provider, err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", ErrEmptyResponse
	}
	return msg.Content, nil
}

func ptr[T any](v T) *T {
	return &v
}
