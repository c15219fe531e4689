package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/seller"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// sellerRepository 卖家仓储实现(MySQL)
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建卖家仓储
func NewSellerRepository(db *gorm.DB) seller.Repository {
	return &sellerRepository{db: db}
}

// Create 创建卖家
func (r *sellerRepository) Create(ctx context.Context, s *seller.Seller) error {
	model := toSellerModel(s)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.WrapDB(err, "创建卖家失败")
	}

	// 回填自增ID
	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找卖家
func (r *sellerRepository) FindByID(ctx context.Context, id uint) (*seller.Seller, error) {
	var model SellerModel
	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seller.ErrSellerNotFound
		}
		return nil, apperrors.WrapDB(err, "查询卖家失败")
	}
	return toSellerEntity(&model), nil
}

// List 查询全部卖家
func (r *sellerRepository) List(ctx context.Context) ([]*seller.Seller, error) {
	var models []SellerModel
	if err := r.getDB(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapDB(err, "查询卖家列表失败")
	}

	sellers := make([]*seller.Seller, len(models))
	for i := range models {
		sellers[i] = toSellerEntity(&models[i])
	}
	return sellers, nil
}

// Update 只更新姓名和邮箱，密码列不参与
func (r *sellerRepository) Update(ctx context.Context, s *seller.Seller) error {
	err := r.getDB(ctx).
		Model(&SellerModel{ID: s.ID}).
		Updates(map[string]interface{}{
			"first_name": s.FirstName,
			"last_name":  s.LastName,
			"email":      s.Email,
			"updated_at": s.UpdatedAt,
		}).Error
	if err != nil {
		return apperrors.WrapDB(err, "更新卖家失败")
	}
	return nil
}

// Delete 删除卖家
func (r *sellerRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&SellerModel{}, id)
	if result.Error != nil {
		return apperrors.WrapDB(result.Error, "删除卖家失败")
	}
	if result.RowsAffected == 0 {
		return seller.ErrSellerNotFound
	}
	return nil
}

func (r *sellerRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toSellerModel(s *seller.Seller) *SellerModel {
	return &SellerModel{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Password:  s.Password,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSellerEntity(model *SellerModel) *seller.Seller {
	return &seller.Seller{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
