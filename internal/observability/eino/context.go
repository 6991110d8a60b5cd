package eino

import (
	"context"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
)

type llmCtxKey string

const llmCtxKeyProvider llmCtxKey = "llm_provider"

// WithProvider 记录提供商名称，并为直接调用的 ChatModel 挂载全局 callbacks
func WithProvider(ctx context.Context, provider string) context.Context {
	p := strings.TrimSpace(provider)
	if p != "" {
		ctx = context.WithValue(ctx, llmCtxKeyProvider, p)
	}
	return einocb.InitCallbacks(ctx, &einocb.RunInfo{
		Name:      p,
		Type:      "OpenAI",
		Component: components.ComponentOfChatModel,
	})
}

// ProviderFromContext 读取提供商名称
func ProviderFromContext(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	s, ok := ctx.Value(llmCtxKeyProvider).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
