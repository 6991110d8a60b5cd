// Package presentation 编排演示文稿生成流程：文本/主题 -> 解析 -> 渲染 -> 落盘
package presentation

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"ai-ppt-api/internal/application/outline"
	"ai-ppt-api/internal/config"
	"ai-ppt-api/internal/domain/deck"
	"ai-ppt-api/internal/infrastructure/llm"
	apperrors "ai-ppt-api/pkg/errors"
	"ai-ppt-api/pkg/logger"
	"ai-ppt-api/pkg/metrics"
	"ai-ppt-api/pkg/tracer"
)

// 生成来源，用作指标标签
const (
	SourceText  = "text"
	SourceTopic = "topic"
)

// 对外错误文案
const (
	MsgEmptyText        = "Empty topic"
	MsgNoValidSlides    = "No valid slides found"
	MsgNoTopic          = "No topic provided"
	MsgAIFailed         = "AI generation failed"
	MsgAINoValidSlides  = "AI did not return valid slides"
	msgInvalidSlideSize = "slide_count must be between 1 and "
)

// DeckBuilder 将幻灯片渲染并保存为文件
type DeckBuilder interface {
	Build(ctx context.Context, slides []deck.Slide, themeName string) (string, error)
}

// Result 生成结果
type Result struct {
	FileName   string
	SlideCount int
}

// Service 演示文稿生成服务
type Service struct {
	generator     outline.TextGenerator
	prompts       *outline.PromptBuilder
	builder       DeckBuilder
	sem           *semaphore.Weighted
	timeout       time.Duration
	defaultSlides int
	maxSlides     int
}

// NewService 创建生成服务
func NewService(cfg *config.Config, generator outline.TextGenerator, builder DeckBuilder) *Service {
	concurrent := cfg.Generation.MaxConcurrent
	if concurrent < 1 {
		concurrent = 1
	}
	return &Service{
		generator:     generator,
		prompts:       outline.NewPromptBuilder(),
		builder:       builder,
		sem:           semaphore.NewWeighted(int64(concurrent)),
		timeout:       cfg.Generation.Timeout,
		defaultSlides: cfg.Generation.DefaultSlideCount,
		maxSlides:     cfg.Generation.MaxSlideCount,
	}
}

// FromText 将用户提供的纲要文本渲染为演示文稿
func (s *Service) FromText(ctx context.Context, text, template string) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "presentation.FromText")
	defer span.End()
	defer s.observe(ctx, SourceText, time.Now(), &res, &err)

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, MsgEmptyText)
	}

	slides := outline.Parse(text, s.defaultSlides)
	if len(slides) == 0 {
		return nil, apperrors.New(apperrors.CodeNoValidSlides, MsgNoValidSlides)
	}

	return s.build(ctx, slides, template)
}

// FromTopic 由模型生成纲要后渲染为演示文稿，slideCount 为空时使用默认页数
func (s *Service) FromTopic(ctx context.Context, topic, template string, slideCount *int) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "presentation.FromTopic")
	defer span.End()
	defer s.observe(ctx, SourceTopic, time.Now(), &res, &err)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, MsgNoTopic)
	}

	count := s.defaultSlides
	if slideCount != nil {
		count = *slideCount
	}
	if count < 1 || count > s.maxSlides {
		return nil, apperrors.New(apperrors.CodeInvalidParam, msgInvalidSlideSize+strconv.Itoa(s.maxSlides))
	}
	span.SetAttributes(attribute.Int("deck.requested_slides", count))

	prompt, err := s.prompts.Build(ctx, topic, count)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, MsgAIFailed)
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		code := apperrors.CodeLLMCallFailed
		if llm.Classify(err) == llm.KindTransient {
			code = apperrors.CodeLLMProviderError
		}
		return nil, apperrors.Wrap(err, code, MsgAIFailed)
	}

	slides := outline.Parse(text, count)
	if len(slides) == 0 {
		logger.Warn(ctx, "model output contained no slides", "topic", topic, "response_chars", len(text))
		return nil, apperrors.New(apperrors.CodeNoValidSlides, MsgAINoValidSlides)
	}

	return s.build(ctx, slides, template)
}

// generate 在并发名额与超时约束下调用模型，等待名额的时间计入超时
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	return s.generator.Generate(ctx, prompt)
}

func (s *Service) build(ctx context.Context, slides []deck.Slide, template string) (*Result, error) {
	name, err := s.builder.Build(ctx, slides, template)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "failed to build presentation")
	}
	return &Result{FileName: name, SlideCount: len(slides)}, nil
}

// observe 上报生成结果指标与日志
func (s *Service) observe(ctx context.Context, source string, start time.Time, res **Result, err *error) {
	metrics.DeckGenerationDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	if *err != nil {
		appErr := apperrors.AsAppError(*err)
		status := "error"
		if appErr.HTTPStatus < 500 {
			status = "rejected"
		}
		metrics.DeckGenerationTotal.WithLabelValues(source, status).Inc()

		span := trace.SpanFromContext(ctx)
		span.SetStatus(codes.Error, appErr.Message)
		if appErr.HTTPStatus >= 500 {
			span.RecordError(*err)
			logger.Error(ctx, "presentation generation failed", *err, "source", source, "code", string(appErr.Code))
		}
		return
	}

	metrics.DeckGenerationTotal.WithLabelValues(source, "success").Inc()
	metrics.DeckSlides.Observe(float64((*res).SlideCount))
	logger.Info(ctx, "presentation generated",
		"source", source,
		"file", (*res).FileName,
		"slides", (*res).SlideCount,
	)
}
