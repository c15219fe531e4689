package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中存放事务DB的键
type txKey struct{}

// TxManager 事务管理器
// 说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 每个请求对应一个工作单元,fn返回nil时COMMIT,返回error或panic时ROLLBACK
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    n, err := bookRepo.DeleteBySeller(ctx, id)
//	    if err != nil {
//	        return err // 自动回滚
//	    }
//	    return sellerRepo.Delete(ctx, id) // nil则提交
//	})
//
// ctx中已有事务时直接复用,不再开启新事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFrom 从context获取事务DB,没有则使用默认DB
// 所有仓储方法都必须经过这里,才能加入调用方的事务
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}
