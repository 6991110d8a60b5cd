//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"ai-ppt-api/internal/application/outline"
	"ai-ppt-api/internal/application/presentation"
	"ai-ppt-api/internal/config"
	"ai-ppt-api/internal/domain/deck"
	"ai-ppt-api/internal/infrastructure/llm"
	"ai-ppt-api/internal/infrastructure/pptx"
	"ai-ppt-api/internal/infrastructure/storage"
	"ai-ppt-api/internal/interfaces/http/handler"
	"ai-ppt-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		StorageSet,
		DeckSet,
		LLMSet,
		RedisSet,
		RouterSet,
	)
	return nil, nil, nil
}

// StorageSet 输出目录与前端资源
var StorageSet = wire.NewSet(
	storage.NewStore,
	storage.NewAssets,
	wire.Bind(new(deck.FileStore), new(*storage.Store)),
)

// DeckSet 文档渲染
var DeckSet = wire.NewSet(
	pptx.NewWriter,
	deck.NewBuilder,
	wire.Bind(new(deck.DocumentWriter), new(*pptx.Writer)),
	wire.Bind(new(presentation.DeckBuilder), new(*deck.Builder)),
)

// LLMSet 文本生成与编排服务
var LLMSet = wire.NewSet(
	llm.NewTextGenerator,
	presentation.NewService,
	wire.Bind(new(outline.TextGenerator), new(*llm.Instrumented)),
	wire.Bind(new(handler.PresentationService), new(*presentation.Service)),
)

// RedisSet 可选限流（未启用时不连接 Redis）
var RedisSet = wire.NewSet(
	ProvideRateLimiter,
	ProvideRouteLimiter,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewPresentationHandler,
	handler.NewDownloadHandler,
	handler.NewFrontendHandler,
	ProvideHealthHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
