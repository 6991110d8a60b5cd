package eino

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"ai-ppt-api/pkg/metrics"
)

func TestProviderFromContext(t *testing.T) {
	assert.Equal(t, "unknown", ProviderFromContext(context.Background()))
	assert.Equal(t, "openai", ProviderFromContext(WithProvider(context.Background(), " openai ")))
}

func TestChatModelCallback_RecordsTokens(t *testing.T) {
	ctx := WithProvider(context.Background(), "handler-test")
	h := newChatModelCallbackHandler()

	h.OnEnd(ctx, nil, &model.CallbackOutput{
		Config:     &model.Config{Model: "m1"},
		TokenUsage: &model.TokenUsage{PromptTokens: 11, CompletionTokens: 7},
	})
	h.OnEnd(ctx, nil, &model.CallbackOutput{Config: &model.Config{Model: "m1"}})

	assert.Equal(t, 11.0, testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("handler-test", "m1", "prompt")))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("handler-test", "m1", "completion")))
}
