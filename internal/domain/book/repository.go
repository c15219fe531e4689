package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// ctx中携带事务时,所有方法都加入该事务
type Repository interface {
	// Create 创建图书,回填ID
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ListBySeller 查询卖家的全部图书,按创建顺序(ID升序)
	ListBySeller(ctx context.Context, sellerID uint) ([]*Book, error)

	// DeleteBySeller 删除卖家的全部图书,返回删除行数
	DeleteBySeller(ctx context.Context, sellerID uint) (int64, error)

	// Delete 删除单本图书,不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}
