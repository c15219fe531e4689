// Package resilience 用熔断器包装可选的外部依赖
//
// Redis或RabbitMQ宕机时，熔断器打开后缓存读写和事件发布直接失败，
// 调用方按原有逻辑记录warn日志并回退到数据库，请求不再等待下游超时。
// 熔断期间跳过的缓存失效由cache_ttl兜底。
package resilience

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// NewBreaker 按配置创建熔断器，状态变化写日志和指标
func NewBreaker(name string, cfg config.BreakerConfig, log zerolog.Logger) *circuitbreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	cb := circuitbreaker.New(name, circuitbreaker.Config{
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
	})

	cb.OnStateChange(func(name string, from, to circuitbreaker.State) {
		metrics.RecordBreakerState(name, int(to))
		event := log.Info()
		if to == circuitbreaker.StateOpen {
			event = log.Warn()
		}
		event.Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
	})
	metrics.RecordBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

// GuardedCache 熔断保护的卖家详情缓存
type GuardedCache struct {
	next    seller.DetailCache
	breaker *circuitbreaker.CircuitBreaker
}

var _ seller.DetailCache = (*GuardedCache)(nil)

func NewGuardedCache(next seller.DetailCache, breaker *circuitbreaker.CircuitBreaker) *GuardedCache {
	return &GuardedCache{next: next, breaker: breaker}
}

// GetDetail 未命中不计为失败
func (g *GuardedCache) GetDetail(ctx context.Context, id uint, dst interface{}) (hit bool, version int64, err error) {
	err = g.breaker.Execute(func() error {
		var err error
		hit, version, err = g.next.GetDetail(ctx, id, dst)
		return err
	})
	return hit, version, openAsCacheError(err)
}

func (g *GuardedCache) SetDetail(ctx context.Context, id uint, version int64, v interface{}) error {
	return openAsCacheError(g.breaker.Execute(func() error {
		return g.next.SetDetail(ctx, id, version, v)
	}))
}

func (g *GuardedCache) DeleteDetail(ctx context.Context, id uint) error {
	return openAsCacheError(g.breaker.Execute(func() error {
		return g.next.DeleteDetail(ctx, id)
	}))
}

func openAsCacheError(err error) error {
	if err == circuitbreaker.ErrOpenState {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "缓存熔断中")
	}
	return err
}

// GuardedPublisher 熔断保护的事件发布器
type GuardedPublisher struct {
	next    seller.EventPublisher
	breaker *circuitbreaker.CircuitBreaker
}

var _ seller.EventPublisher = (*GuardedPublisher)(nil)

func NewGuardedPublisher(next seller.EventPublisher, breaker *circuitbreaker.CircuitBreaker) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker}
}

func (g *GuardedPublisher) Publish(ctx context.Context, e seller.Event) error {
	err := g.breaker.Execute(func() error {
		return g.next.Publish(ctx, e)
	})
	if err == circuitbreaker.ErrOpenState {
		metrics.RecordPublish(e.Type, err)
	}
	return err
}
