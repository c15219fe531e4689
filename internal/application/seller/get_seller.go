package seller

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// GetSellerUseCase 查询卖家详情（含图书）
// 启用缓存时先读缓存，未命中再查库并回填（Cache-Aside）
type GetSellerUseCase struct {
	sellerRepo seller.Repository
	bookRepo   book.Repository
	txManager  *mysql.TxManager
	cache      seller.DetailCache
}

func NewGetSellerUseCase(
	sellerRepo seller.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
	cache seller.DetailCache,
) *GetSellerUseCase {
	return &GetSellerUseCase{
		sellerRepo: sellerRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

func (uc *GetSellerUseCase) Execute(ctx context.Context, id uint) (result *SellerWithBooksResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "GetSeller")
	defer func() { finish(span, "get_seller", err) }()
	span.SetAttributes(attribute.Int64("seller.id", int64(id)))

	if id == 0 {
		return nil, apperrors.Invalid("id must be a positive integer")
	}

	log := zerolog.Ctx(ctx)

	var cached SellerWithBooksResult
	hit, version, cacheErr := uc.cache.GetDetail(ctx, id, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("seller_id", id).Msg("read seller cache failed")
	}
	if hit {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return &cached, nil
	}

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		s, err := uc.sellerRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		books, err := uc.bookRepo.ListBySeller(ctx, s.ID)
		if err != nil {
			return err
		}
		result = toSellerWithBooks(s, books)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 读库期间若有更新或删除提交，版本号已变，回填会被放弃
	if err := uc.cache.SetDetail(ctx, id, version, result); err != nil {
		log.Warn().Err(err).Uint("seller_id", id).Msg("fill seller cache failed")
	}
	return result, nil
}
