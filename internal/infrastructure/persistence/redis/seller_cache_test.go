package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

type detail struct {
	ID    uint     `json:"id"`
	Email string   `json:"email"`
	Books []string `json:"books"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*SellerCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSellerCache(client, ttl), mr
}

func TestSellerCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	var got detail
	hit, version, err := cache.GetDetail(ctx, 1, &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, version)

	want := detail{ID: 1, Email: "johndoe@example.com", Books: []string{"Dune"}}
	require.NoError(t, cache.SetDetail(ctx, 1, version, want))
	assert.True(t, mr.Exists("seller:detail:1"))

	hit, _, err = cache.GetDetail(ctx, 1, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	require.NoError(t, cache.DeleteDetail(ctx, 1))
	hit, version, err = cache.GetDetail(ctx, 1, &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(1), version, "删除后版本号递增")
	assert.Equal(t, versionTTL, mr.TTL("seller:detail:ver:1"))
}

func TestSellerCache_StaleFillRejected(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	var got detail
	_, version, err := cache.GetDetail(ctx, 4, &got)
	require.NoError(t, err)

	// 读库期间有写操作提交并删除了缓存
	require.NoError(t, cache.DeleteDetail(ctx, 4))

	require.NoError(t, cache.SetDetail(ctx, 4, version, detail{ID: 4, Email: "old@example.com"}))
	assert.False(t, mr.Exists("seller:detail:4"), "旧快照不回填")

	// 用新版本号回填正常写入
	_, version, err = cache.GetDetail(ctx, 4, &got)
	require.NoError(t, err)
	require.NoError(t, cache.SetDetail(ctx, 4, version, detail{ID: 4, Email: "new@example.com"}))
	hit, _, err := cache.GetDetail(ctx, 4, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestSellerCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 30*time.Second)

	require.NoError(t, cache.SetDetail(ctx, 2, 0, detail{ID: 2}))
	assert.Equal(t, 30*time.Second, mr.TTL("seller:detail:2"))

	mr.FastForward(31 * time.Second)
	var got detail
	hit, _, err := cache.GetDetail(ctx, 2, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSellerCache_CorruptValue(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("seller:detail:3", "{not json"))

	var got detail
	hit, _, err := cache.GetDetail(context.Background(), 3, &got)
	assert.False(t, hit)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCacheError, apperrors.GetAppError(err).Code)

	require.NoError(t, mr.Set("seller:detail:ver:3", "abc"))
	_, _, err = cache.GetDetail(context.Background(), 3, &got)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCacheError, apperrors.GetAppError(err).Code)
}

func TestSellerCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	var got detail
	_, _, err := cache.GetDetail(context.Background(), 1, &got)
	assert.Error(t, err)
	assert.Error(t, cache.SetDetail(context.Background(), 1, 0, detail{ID: 1}))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	cfg := config.RedisConfig{Host: mr.Host(), Port: port, DialTimeout: time.Second}

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), cfg)
	assert.Error(t, err)
}
