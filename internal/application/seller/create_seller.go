package seller

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/pkg/password"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// CreateSellerUseCase 创建卖家用例
// 流程：校验 → bcrypt哈希 → 事务内写入 → 发布seller.created
type CreateSellerUseCase struct {
	sellerRepo seller.Repository
	txManager  *mysql.TxManager
	hasher     *password.Hasher
	publisher  seller.EventPublisher
}

// NewCreateSellerUseCase 创建用例
func NewCreateSellerUseCase(
	sellerRepo seller.Repository,
	txManager *mysql.TxManager,
	hasher *password.Hasher,
	publisher seller.EventPublisher,
) *CreateSellerUseCase {
	return &CreateSellerUseCase{
		sellerRepo: sellerRepo,
		txManager:  txManager,
		hasher:     hasher,
		publisher:  publisher,
	}
}

// CreateSellerRequest 创建卖家请求
type CreateSellerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string // 明文，只在本用例内使用
}

// Execute 执行创建
// 邮箱允许重复
func (uc *CreateSellerUseCase) Execute(ctx context.Context, req CreateSellerRequest) (result *SellerResult, err error) {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "CreateSeller")
	defer func() { finish(span, "create_seller", err) }()

	if err := seller.ValidateProfile(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}
	if err := seller.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	s := seller.NewSeller(req.FirstName, req.LastName, req.Email, hashed)
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.sellerRepo.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("seller.id", int64(s.ID)))
	event := seller.NewEvent(seller.EventCreated, s)
	afterCommit(ctx, nil, uc.publisher, s.ID, &event)

	created := toSellerResult(s)
	return &created, nil
}
