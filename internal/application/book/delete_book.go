package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// DeletedMessage 删除成功的提示信息
const DeletedMessage = "Book deleted successfully"

// DeleteBookUseCase 删除单本图书
type DeleteBookUseCase struct {
	bookRepo  book.Repository
	txManager *mysql.TxManager
	cache     seller.DetailCache
}

func NewDeleteBookUseCase(bookRepo book.Repository, txManager *mysql.TxManager, cache seller.DetailCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo, txManager: txManager, cache: cache}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (message string, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "DeleteBook")
	defer func() { finish(span, "delete_book", err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	if id == 0 {
		return "", apperrors.Invalid("id must be a positive integer")
	}

	var owner uint
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		owner = b.SellerID
		return uc.bookRepo.Delete(ctx, id)
	})
	if err != nil {
		return "", err
	}

	invalidate(ctx, uc.cache, owner)
	return DeletedMessage, nil
}
