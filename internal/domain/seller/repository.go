package seller

import (
	"context"
)

// Repository 卖家仓储接口
// 设计说明：
// 1. 接口定义在domain层，实现在infrastructure/persistence/mysql
// 2. ctx中携带事务时，所有方法都加入该事务
type Repository interface {
	// Create 创建卖家，回填ID
	Create(ctx context.Context, s *Seller) error

	// FindByID 根据ID查找卖家
	// 不存在时返回ErrSellerNotFound
	FindByID(ctx context.Context, id uint) (*Seller, error)

	// List 查询全部卖家，按ID升序
	List(ctx context.Context) ([]*Seller, error)

	// Update 更新姓名和邮箱
	Update(ctx context.Context, s *Seller) error

	// Delete 删除卖家
	// 不存在时返回ErrSellerNotFound
	Delete(ctx context.Context, id uint) error
}
