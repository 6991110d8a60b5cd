package llm

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ai-ppt-api/internal/application/outline"
	"ai-ppt-api/pkg/logger"
	"ai-ppt-api/pkg/metrics"
	"ai-ppt-api/pkg/tracer"
)

// Instrumented 为文本生成调用记录指标、追踪与日志
type Instrumented struct {
	next     outline.TextGenerator
	provider string
	model    string
}

// NewInstrumented 包装文本生成器
func NewInstrumented(next outline.TextGenerator, provider, model string) *Instrumented {
	return &Instrumented{next: next, provider: provider, model: model}
}

// Generate 调用底层生成器
func (g *Instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.Generate", trace.WithAttributes(
		attribute.String("llm.provider", g.provider),
		attribute.String("llm.model", g.model),
		attribute.Int("llm.prompt_chars", len(prompt)),
	))
	defer span.End()

	metrics.LLMInflight.Inc()
	defer metrics.LLMInflight.Dec()

	start := time.Now()
	text, err := g.next.Generate(ctx, prompt)
	elapsed := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(g.provider, g.model).Observe(elapsed.Seconds())

	if err != nil {
		kind := Classify(err)
		status := "error"
		if kind == KindTransient {
			status = "transient_error"
		}
		metrics.LLMCallTotal.WithLabelValues(g.provider, g.model, status).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "llm call failed", err,
			"provider", g.provider,
			"model", g.model,
			"kind", kind.String(),
			"duration_ms", elapsed.Milliseconds(),
		)
		return "", err
	}

	metrics.LLMCallTotal.WithLabelValues(g.provider, g.model, "success").Inc()
	span.SetAttributes(attribute.Int("llm.response_chars", len(text)))
	logger.Debug(ctx, "llm call completed",
		"provider", g.provider,
		"model", g.model,
		"duration_ms", elapsed.Milliseconds(),
	)
	return text, nil
}
