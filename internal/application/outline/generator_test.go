package outline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_Build(t *testing.T) {
	prompt, err := NewPromptBuilder().Build(context.Background(), "Solar energy", 4)
	require.NoError(t, err)

	assert.Contains(t, prompt, `Create a PowerPoint presentation outline on the topic: "Solar energy".`)
	assert.Contains(t, prompt, "Include exactly 4 slides.")
	assert.Contains(t, prompt, "Slide 1: Title of the slide\n- Bullet point 1")
}

func TestPromptBuilder_OutputParsesAsExample(t *testing.T) {
	prompt, err := NewPromptBuilder().Build(context.Background(), "Go", 1)
	require.NoError(t, err)

	slides := Parse(prompt, 5)
	require.Len(t, slides, 1)
	assert.Equal(t, "Title of the slide", slides[0].Title)
	assert.Len(t, slides[0].Points, 3)
}
