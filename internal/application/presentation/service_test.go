package presentation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"ai-ppt-api/internal/config"
	"ai-ppt-api/internal/domain/deck"
	apperrors "ai-ppt-api/pkg/errors"
)

type stubGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	block   chan struct{}
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.reply, g.err
}

type recordingBuilder struct {
	slides   []deck.Slide
	template string
	err      error
}

func (b *recordingBuilder) Build(_ context.Context, slides []deck.Slide, themeName string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.slides = slides
	b.template = themeName
	return "generated-id.pptx", nil
}

func testConfig() *config.Config {
	return &config.Config{Generation: config.GenerationConfig{
		DefaultSlideCount: 6,
		MaxSlideCount:     20,
		MaxConcurrent:     2,
		Timeout:           time.Second,
	}}
}

func requireAppError(t *testing.T, err error, code apperrors.ErrorCode, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}

func fiveSlides() string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "Slide %d: Title %d\n- point\n", i, i)
	}
	return b.String()
}

func TestFromText_Success(t *testing.T) {
	builder := &recordingBuilder{}
	svc := NewService(testConfig(), &stubGenerator{}, builder)

	res, err := svc.FromText(context.Background(), "Slide 1: Intro\n- Point A\n- Point B\nSlide 2: End\n- Bye", "dark")
	require.NoError(t, err)

	assert.Equal(t, "generated-id.pptx", res.FileName)
	assert.Equal(t, 2, res.SlideCount)
	assert.Equal(t, "dark", builder.template)
	assert.Equal(t, []deck.Slide{
		{Title: "Intro", Points: []string{"Point A", "Point B"}},
		{Title: "End", Points: []string{"Bye"}},
	}, builder.slides)
}

func TestFromText_Rejections(t *testing.T) {
	svc := NewService(testConfig(), &stubGenerator{}, &recordingBuilder{})

	_, err := svc.FromText(context.Background(), "   ", "")
	requireAppError(t, err, apperrors.CodeInvalidParam, MsgEmptyText)
	assert.Equal(t, 400, apperrors.AsAppError(err).HTTPStatus)

	_, err = svc.FromText(context.Background(), "no markers here", "")
	requireAppError(t, err, apperrors.CodeNoValidSlides, MsgNoValidSlides)
	assert.Equal(t, 400, apperrors.AsAppError(err).HTTPStatus)
}

func TestFromText_TruncatesToDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.DefaultSlideCount = 3
	builder := &recordingBuilder{}

	res, err := NewService(cfg, &stubGenerator{}, builder).FromText(context.Background(), fiveSlides(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, res.SlideCount)
}

func TestFromTopic_RespectsSlideCount(t *testing.T) {
	gen := &stubGenerator{reply: fiveSlides()}
	builder := &recordingBuilder{}
	count := 3

	res, err := NewService(testConfig(), gen, builder).FromTopic(context.Background(), " Solar power ", "corporate", &count)
	require.NoError(t, err)

	assert.Equal(t, 3, res.SlideCount)
	require.Len(t, builder.slides, 3)
	assert.Equal(t, "Title 3", builder.slides[2].Title)
	assert.Equal(t, "corporate", builder.template)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `on the topic: "Solar power".`)
	assert.Contains(t, gen.prompts[0], "Include exactly 3 slides.")
}

func TestFromTopic_DefaultSlideCount(t *testing.T) {
	gen := &stubGenerator{reply: "Slide 1: Only\n- x"}

	res, err := NewService(testConfig(), gen, &recordingBuilder{}).FromTopic(context.Background(), "Go", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SlideCount)
	assert.Contains(t, gen.prompts[0], "Include exactly 6 slides.")
}

func TestFromTopic_Rejections(t *testing.T) {
	svc := NewService(testConfig(), &stubGenerator{reply: "nothing useful"}, &recordingBuilder{})

	_, err := svc.FromTopic(context.Background(), "  ", "", nil)
	requireAppError(t, err, apperrors.CodeInvalidParam, MsgNoTopic)

	for _, n := range []int{0, -1, 21} {
		count := n
		_, err = svc.FromTopic(context.Background(), "Go", "", &count)
		require.Error(t, err, "count %d", n)
		assert.Equal(t, apperrors.CodeInvalidParam, apperrors.AsAppError(err).Code)
	}

	_, err = svc.FromTopic(context.Background(), "Go", "", nil)
	requireAppError(t, err, apperrors.CodeNoValidSlides, MsgAINoValidSlides)
	assert.Equal(t, 400, apperrors.AsAppError(err).HTTPStatus)
}

func TestFromTopic_GenerationFailure(t *testing.T) {
	svc := NewService(testConfig(), &stubGenerator{err: errors.New("invalid api key")}, &recordingBuilder{})
	_, err := svc.FromTopic(context.Background(), "Go", "", nil)
	requireAppError(t, err, apperrors.CodeLLMCallFailed, MsgAIFailed)
	assert.Equal(t, 500, apperrors.AsAppError(err).HTTPStatus)

	svc = NewService(testConfig(), &stubGenerator{err: genai.APIError{Code: 503}}, &recordingBuilder{})
	_, err = svc.FromTopic(context.Background(), "Go", "", nil)
	requireAppError(t, err, apperrors.CodeLLMProviderError, MsgAIFailed)
	assert.Equal(t, 500, apperrors.AsAppError(err).HTTPStatus)
}

func TestFromTopic_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.Timeout = 20 * time.Millisecond
	gen := &stubGenerator{reply: "Slide 1: X", block: make(chan struct{})}

	_, err := NewService(cfg, gen, &recordingBuilder{}).FromTopic(context.Background(), "Go", "", nil)
	requireAppError(t, err, apperrors.CodeLLMProviderError, MsgAIFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFromTopic_WaitForSlotCountsAgainstTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.MaxConcurrent = 1
	cfg.Generation.Timeout = 30 * time.Millisecond
	gen := &stubGenerator{reply: "Slide 1: X"}
	svc := NewService(cfg, gen, &recordingBuilder{})

	// 占住唯一的并发名额
	require.NoError(t, svc.sem.Acquire(context.Background(), 1))
	defer svc.sem.Release(1)

	_, err := svc.FromTopic(context.Background(), "Go", "", nil)
	requireAppError(t, err, apperrors.CodeLLMProviderError, MsgAIFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, gen.prompts)
}

func TestBuildFailurePropagates(t *testing.T) {
	svc := NewService(testConfig(), &stubGenerator{}, &recordingBuilder{err: errors.New("disk full")})
	_, err := svc.FromText(context.Background(), "Slide 1: A", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeStorageError, apperrors.AsAppError(err).Code)
	assert.Equal(t, 500, apperrors.AsAppError(err).HTTPStatus)
}
