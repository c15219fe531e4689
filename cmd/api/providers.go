package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/events"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/resilience"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
	"github.com/xiebiao/bookcatalog/pkg/password"
)

// App 组装完成的应用
type App struct {
	Server *http.Server
}

func newApp(server *http.Server) *App {
	return &App{Server: server}
}

// provideDB 创建数据库连接，cleanup关闭连接池
func provideDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Info().Msg("数据库连接已关闭")
	}
	return db, cleanup, nil
}

func provideHasher(cfg *config.Config) *password.Hasher {
	return password.NewHasher(cfg.Security.BcryptCost)
}

// provideDetailCache 未启用Redis时退化为空缓存，启用时加熔断保护
func provideDetailCache(cfg *config.Config, log zerolog.Logger) (seller.DetailCache, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info().Msg("Redis未启用，卖家详情不缓存")
		return seller.NopCache{}, func() {}, nil
	}

	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr()).Dur("ttl", cfg.Redis.CacheTTL).Msg("Redis缓存已启用")
	cache := resilience.NewGuardedCache(
		redis.NewSellerCache(client, cfg.Redis.CacheTTL),
		resilience.NewBreaker("redis", cfg.Breaker, log),
	)
	return cache, func() { _ = client.Close() }, nil
}

// provideEventPublisher 未启用MQ时事件直接丢弃
func provideEventPublisher(cfg *config.Config, log zerolog.Logger) (seller.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		log.Info().Msg("MQ未启用，不发布卖家事件")
		return seller.NopPublisher{}, func() {}, nil
	}

	publisher, err := events.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("exchange", cfg.MQ.Exchange).Msg("事件发布已启用")
	guarded := resilience.NewGuardedPublisher(publisher, resilience.NewBreaker("rabbitmq", cfg.Breaker, log))
	return guarded, func() { _ = publisher.Close() }, nil
}

func provideRouterOptions(cfg *config.Config, log zerolog.Logger) router.Options {
	return router.Options{
		Logger:        log,
		EnableSwagger: cfg.Server.EnableSwagger,
	}
}

func provideServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
