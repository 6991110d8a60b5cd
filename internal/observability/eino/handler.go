package eino

import (
	"context"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ai-ppt-api/pkg/metrics"
)

// newChatModelCallbackHandler 记录 ChatModel 的 Token 消耗
//
// 调用次数与耗时由 llm.Instrumented 统一上报，这里只补充 Eino 输出里才有的用量信息。
func newChatModelCallbackHandler() *cbtemplate.ModelCallbackHandler {
	return &cbtemplate.ModelCallbackHandler{
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *model.CallbackOutput) context.Context {
			if output == nil || output.TokenUsage == nil {
				return ctx
			}
			recordTokenUsage(ctx, modelNameFromOutput(output), output.TokenUsage)
			return ctx
		},
	}
}

func recordTokenUsage(ctx context.Context, modelName string, usage *model.TokenUsage) {
	provider := ProviderFromContext(ctx)

	metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "prompt").Add(float64(usage.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "completion").Add(float64(usage.CompletionTokens))

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("llm.prompt_tokens", usage.PromptTokens),
		attribute.Int("llm.completion_tokens", usage.CompletionTokens),
	)
}

// modelNameFromOutput 从输出配置中提取模型名称
func modelNameFromOutput(out *model.CallbackOutput) string {
	if out == nil || out.Config == nil {
		return ""
	}
	return out.Config.Model
}
