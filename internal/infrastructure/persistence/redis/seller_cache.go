package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// versionTTL 失效版本号的有效期，远大于一次查询的耗时即可
const versionTTL = 24 * time.Hour

// SellerCache 卖家详情缓存（Cache-Aside）
// 设计说明：
// 1. 查询详情时先读缓存，未命中再查数据库并回填
// 2. 更新、删除卖家以及增删图书后删除缓存，而不是更新缓存
// 3. Key设计：seller:detail:{id}，值为不含密码的详情JSON
// 4. seller:detail:ver:{id} 为失效版本号，删除缓存时递增；
//    回填用WATCH监视版本号，读取后版本号变化则放弃写入
type SellerCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ seller.DetailCache = (*SellerCache)(nil)

// errVersionChanged 回填期间发生过失效
var errVersionChanged = errors.New("seller cache version changed")

// NewSellerCache 创建卖家详情缓存
func NewSellerCache(client *redis.Client, ttl time.Duration) *SellerCache {
	return &SellerCache{client: client, ttl: ttl}
}

// GetDetail 一次MGET同时读取详情和失效版本号，未命中返回false
func (c *SellerCache) GetDetail(ctx context.Context, id uint, dst interface{}) (bool, int64, error) {
	vals, err := c.client.MGet(ctx, detailKey(id), versionKey(id)).Result()
	if err != nil {
		metrics.RecordCache("error")
		return false, 0, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "读取缓存失败")
	}

	version, err := parseVersion(vals[1])
	if err != nil {
		metrics.RecordCache("error")
		return false, 0, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "缓存版本号损坏")
	}

	val, ok := vals[0].(string)
	if !ok {
		metrics.RecordCache("miss")
		return false, version, nil
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		metrics.RecordCache("error")
		return false, version, apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "缓存数据损坏")
	}

	metrics.RecordCache("hit")
	return true, version, nil
}

// SetDetail 失效版本号仍为version时写入，否则静默放弃
func (c *SellerCache) SetDetail(ctx context.Context, id uint, version int64, v interface{}) error {
	val, err := json.Marshal(v)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "序列化缓存失败")
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(id)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errVersionChanged
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, detailKey(id), val, c.ttl)
			return nil
		})
		return err
	}, versionKey(id))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errVersionChanged), errors.Is(err, redis.TxFailedErr):
		metrics.RecordCache("stale")
		return nil
	default:
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "写入缓存失败")
	}
}

// DeleteDetail 删除缓存并递增失效版本号（MULTI/EXEC原子执行）
func (c *SellerCache) DeleteDetail(ctx context.Context, id uint) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, detailKey(id))
		pipe.Incr(ctx, versionKey(id))
		pipe.Expire(ctx, versionKey(id), versionTTL)
		return nil
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeCacheError, "删除缓存失败")
	}
	return nil
}

func detailKey(id uint) string {
	return fmt.Sprintf("seller:detail:%d", id)
}

func versionKey(id uint) string {
	return fmt.Sprintf("seller:detail:ver:%d", id)
}

func parseVersion(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
