package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatModel struct {
	reply    *schema.Message
	err      error
	received []*schema.Message
}

func (m *stubChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.received = input
	return m.reply, m.err
}

func (m *stubChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestEinoGenerator_Generate(t *testing.T) {
	cm := &stubChatModel{reply: schema.AssistantMessage("Slide 1: A", nil)}
	g := NewEinoGeneratorWithModel(cm, "openai", "gpt-4o-mini")

	text, err := g.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: A", text)

	require.Len(t, cm.received, 1)
	assert.Equal(t, schema.User, cm.received[0].Role)
	assert.Equal(t, "the prompt", cm.received[0].Content)
}

func TestEinoGenerator_Errors(t *testing.T) {
	g := NewEinoGeneratorWithModel(&stubChatModel{reply: schema.AssistantMessage("  ", nil)}, "openai", "m")
	_, err := g.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	upstream := errors.New("status code: 503")
	g = NewEinoGeneratorWithModel(&stubChatModel{err: upstream}, "openai", "m")
	_, err = g.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, KindTransient, Classify(err))
}

func TestInstrumented_PassesThrough(t *testing.T) {
	inner := NewEinoGeneratorWithModel(&stubChatModel{reply: schema.AssistantMessage("ok", nil)}, "openai", "m")
	text, err := NewInstrumented(inner, "openai", "m").Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	failing := NewEinoGeneratorWithModel(&stubChatModel{err: errors.New("boom")}, "openai", "m")
	_, err = NewInstrumented(failing, "openai", "m").Generate(context.Background(), "p")
	assert.Error(t, err)
}
