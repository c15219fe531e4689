package seller

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// ListSellersUseCase 查询全部卖家（按ID升序，不分页）
type ListSellersUseCase struct {
	sellerRepo seller.Repository
	txManager  *mysql.TxManager
}

func NewListSellersUseCase(sellerRepo seller.Repository, txManager *mysql.TxManager) *ListSellersUseCase {
	return &ListSellersUseCase{sellerRepo: sellerRepo, txManager: txManager}
}

func (uc *ListSellersUseCase) Execute(ctx context.Context) (results []SellerResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "ListSellers")
	defer func() { finish(span, "list_sellers", err) }()

	var sellers []*seller.Seller
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		var err error
		sellers, err = uc.sellerRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	results = make([]SellerResult, 0, len(sellers))
	for _, s := range sellers {
		results = append(results, toSellerResult(s))
	}
	span.SetAttributes(attribute.Int("sellers.count", len(results)))
	return results, nil
}
