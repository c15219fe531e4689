package seller

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// UpdateSellerUseCase 更新卖家资料
// 三个字段整体覆盖，密码不变；重复提交相同数据结果一致
type UpdateSellerUseCase struct {
	sellerRepo seller.Repository
	bookRepo   book.Repository
	txManager  *mysql.TxManager
	cache      seller.DetailCache
	publisher  seller.EventPublisher
}

func NewUpdateSellerUseCase(
	sellerRepo seller.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
	cache seller.DetailCache,
	publisher seller.EventPublisher,
) *UpdateSellerUseCase {
	return &UpdateSellerUseCase{
		sellerRepo: sellerRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
		publisher:  publisher,
	}
}

// UpdateSellerRequest 更新请求
type UpdateSellerRequest struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
}

func (uc *UpdateSellerUseCase) Execute(ctx context.Context, req UpdateSellerRequest) (result *SellerWithBooksResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "UpdateSeller")
	defer func() { finish(span, "update_seller", err) }()
	span.SetAttributes(attribute.Int64("seller.id", int64(req.ID)))

	if req.ID == 0 {
		return nil, apperrors.Invalid("id must be a positive integer")
	}
	if err := seller.ValidateProfile(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	var updated *seller.Seller
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		s, err := uc.sellerRepo.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}

		s.UpdateProfile(req.FirstName, req.LastName, req.Email)
		if err := uc.sellerRepo.Update(ctx, s); err != nil {
			return err
		}

		books, err := uc.bookRepo.ListBySeller(ctx, s.ID)
		if err != nil {
			return err
		}
		updated = s
		result = toSellerWithBooks(s, books)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := seller.NewEvent(seller.EventUpdated, updated)
	afterCommit(ctx, uc.cache, uc.publisher, updated.ID, &event)
	return result, nil
}
