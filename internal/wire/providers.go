package wire

import (
	"ai-ppt-api/internal/config"
	"ai-ppt-api/internal/infrastructure/persistence/redis"
	"ai-ppt-api/internal/infrastructure/storage"
	"ai-ppt-api/internal/interfaces/http/handler"
	"ai-ppt-api/internal/interfaces/http/middleware"
)

// ProvideRateLimiter 提供 Redis 限流器，未启用限流时返回 nil
func ProvideRateLimiter(cfg *config.Config) (*redis.RateLimiter, func(), error) {
	if !cfg.Security.RateLimit.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return redis.NewRateLimiter(client), cleanup, nil
}

// ProvideRouteLimiter 将可能为空的限流器转换为中间件接口
func ProvideRouteLimiter(l *redis.RateLimiter) middleware.RateLimiter {
	if l == nil {
		return nil
	}
	return l
}

// ProvideHealthHandler 提供健康检查处理器
func ProvideHealthHandler(store *storage.Store, l *redis.RateLimiter) *handler.HealthHandler {
	if l == nil {
		return handler.NewHealthHandler(store, nil)
	}
	return handler.NewHealthHandler(store, l)
}
