// Package llm 提供文本生成的提供商实现（Gemini / OpenAI 兼容）
package llm

import (
	"context"
	"fmt"

	"ai-ppt-api/internal/config"
)

// NewTextGenerator 按配置创建当前启用提供商的文本生成器
func NewTextGenerator(ctx context.Context, cfg *config.Config) (*Instrumented, error) {
	name, provider, ok := cfg.LLM.Active()
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", cfg.LLM.Provider)
	}

	switch name {
	case config.ProviderGemini:
		g, err := NewGeminiGenerator(ctx, provider)
		if err != nil {
			return nil, err
		}
		return NewInstrumented(g, name, g.Model()), nil
	default:
		// 其余提供商均按 OpenAI 兼容协议接入
		g, err := NewEinoGenerator(ctx, name, provider)
		if err != nil {
			return nil, err
		}
		return NewInstrumented(g, name, g.Model()), nil
	}
}
