package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库错误统一包装为ErrCodeDatabaseError
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		CountPages: b.CountPages,
		SellerID:   b.SellerID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.WrapDB(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WrapDB(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// ListBySeller 查询卖家的全部图书
// 按ID升序即创建顺序
func (r *bookRepository) ListBySeller(ctx context.Context, sellerID uint) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapDB(err, "查询卖家图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// DeleteBySeller 删除卖家的全部图书
func (r *bookRepository) DeleteBySeller(ctx context.Context, sellerID uint) (int64, error) {
	result := r.getDB(ctx).Where("seller_id = ?", sellerID).Delete(&BookModel{})
	if result.Error != nil {
		return 0, apperrors.WrapDB(result.Error, "删除卖家图书失败")
	}
	return result.RowsAffected, nil
}

// Delete 删除单本图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.WrapDB(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db)
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:         model.ID,
		Title:      model.Title,
		Author:     model.Author,
		Year:       model.Year,
		CountPages: model.CountPages,
		SellerID:   model.SellerID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
