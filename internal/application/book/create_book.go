package book

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// CreateBookUseCase 为卖家添加图书
// 设计说明:
// 1. 所属卖家必须存在,否则返回ErrSellerNotFound
// 2. 查卖家和写图书在同一事务中
// 3. 提交后删除该卖家的详情缓存
type CreateBookUseCase struct {
	bookRepo   book.Repository
	sellerRepo seller.Repository
	txManager  *mysql.TxManager
	cache      seller.DetailCache
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(
	bookRepo book.Repository,
	sellerRepo seller.Repository,
	txManager *mysql.TxManager,
	cache seller.DetailCache,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:   bookRepo,
		sellerRepo: sellerRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
	Title      string
	Author     string
	Year       int
	CountPages int
	SellerID   uint
}

// BookResult 图书响应DTO
type BookResult struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"Dune"`
	Author     string `json:"author" example:"Frank Herbert"`
	Year       int    `json:"year" example:"1965"`
	CountPages int    `json:"count_pages" example:"412"`
	SellerID   uint   `json:"seller_id" example:"1"`
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (result *BookResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "CreateBook")
	defer func() { finish(span, "create_book", err) }()
	span.SetAttributes(attribute.Int64("seller.id", int64(req.SellerID)))

	b := book.NewBook(req.Title, req.Author, req.Year, req.CountPages, req.SellerID)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if _, err := uc.sellerRepo.FindByID(ctx, req.SellerID); err != nil {
			return err
		}
		return uc.bookRepo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, b.SellerID)
	return toBookResult(b), nil
}

func toBookResult(b *book.Book) *BookResult {
	return &BookResult{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		CountPages: b.CountPages,
		SellerID:   b.SellerID,
	}
}

func finish(span trace.Span, operation string, err error) {
	metrics.RecordOperation(operation, err)
	tracing.End(span, err)
}

// invalidate 删除卖家详情缓存,失败只记日志
func invalidate(ctx context.Context, cache seller.DetailCache, sellerID uint) {
	if cache == nil {
		return
	}
	if err := cache.DeleteDetail(ctx, sellerID); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Uint("seller_id", sellerID).Msg("invalidate seller cache failed")
	}
}
