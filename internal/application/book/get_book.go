package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// GetBookUseCase 查询单本图书
type GetBookUseCase struct {
	bookRepo  book.Repository
	txManager *mysql.TxManager
}

func NewGetBookUseCase(bookRepo book.Repository, txManager *mysql.TxManager) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo, txManager: txManager}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (result *BookResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "GetBook")
	defer func() { finish(span, "get_book", err) }()
	span.SetAttributes(attribute.Int64("book.id", int64(id)))

	if id == 0 {
		return nil, apperrors.Invalid("id must be a positive integer")
	}

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		result = toBookResult(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
