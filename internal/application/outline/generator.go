package outline

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/topic_outline.user.txt
var topicTemplate string

// TextGenerator 外部文本生成能力（port），由基础设施层提供 Gemini/OpenAI 实现
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PromptBuilder 渲染主题纲要提示词
type PromptBuilder struct {
	tpl einoprompt.ChatTemplate
}

// NewPromptBuilder 创建提示词构建器
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tpl: einoprompt.FromMessages(schema.FString, schema.UserMessage(strings.TrimSpace(topicTemplate))),
	}
}

// Build 按主题与页数渲染提示词
func (b *PromptBuilder) Build(ctx context.Context, topic string, slideCount int) (string, error) {
	msgs, err := b.tpl.Format(ctx, map[string]any{
		"topic":       topic,
		"slide_count": slideCount,
	})
	if err != nil {
		return "", fmt.Errorf("format outline prompt: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("format outline prompt: no message rendered")
	}
	return msgs[0].Content, nil
}
