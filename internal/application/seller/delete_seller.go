package seller

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// DeletedMessage 删除成功的提示信息
const DeletedMessage = "Seller and associated books deleted successfully"

// DeleteSellerUseCase 删除卖家及其全部图书
// 业务规则:
// 1. id和email必须同时匹配，否则按卖家不存在处理
// 2. 先删图书再删卖家，两步在同一事务中，任何一步失败都整体回滚
type DeleteSellerUseCase struct {
	sellerRepo seller.Repository
	bookRepo   book.Repository
	txManager  *mysql.TxManager
	cache      seller.DetailCache
	publisher  seller.EventPublisher
}

func NewDeleteSellerUseCase(
	sellerRepo seller.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
	cache seller.DetailCache,
	publisher seller.EventPublisher,
) *DeleteSellerUseCase {
	return &DeleteSellerUseCase{
		sellerRepo: sellerRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
		publisher:  publisher,
	}
}

// DeleteSellerRequest 删除请求
type DeleteSellerRequest struct {
	ID    uint
	Email string
}

func (uc *DeleteSellerUseCase) Execute(ctx context.Context, req DeleteSellerRequest) (message string, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "DeleteSeller")
	defer func() { finish(span, "delete_seller", err) }()
	span.SetAttributes(attribute.Int64("seller.id", int64(req.ID)))

	if req.ID == 0 {
		return "", apperrors.Invalid("id must be a positive integer")
	}

	var (
		deleted    *seller.Seller
		booksCount int64
	)
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		s, err := uc.sellerRepo.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !s.MatchesEmail(req.Email) {
			return seller.ErrSellerNotFound
		}

		booksCount, err = uc.bookRepo.DeleteBySeller(ctx, s.ID)
		if err != nil {
			return err
		}
		if err := uc.sellerRepo.Delete(ctx, s.ID); err != nil {
			return err
		}
		deleted = s
		return nil
	})
	if err != nil {
		return "", err
	}

	metrics.RecordCascade(booksCount)
	span.SetAttributes(attribute.Int64("books.deleted", booksCount))

	event := seller.NewEvent(seller.EventDeleted, deleted)
	event.BooksDeleted = booksCount
	afterCommit(ctx, uc.cache, uc.publisher, deleted.ID, &event)
	return DeletedMessage, nil
}
