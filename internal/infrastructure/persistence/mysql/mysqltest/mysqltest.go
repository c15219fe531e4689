// Package mysqltest 为测试提供内存SQLite数据库
//
// 表结构与生产环境一致（同一套GORM模型和AutoMigrate），
// 外键约束通过PRAGMA开启。
package mysqltest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
)

var seq atomic.Int64

// NewDB 创建已迁移的内存数据库，测试结束时关闭
// 每次调用都是独立的数据库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq.Add(1))
	db, err := mysql.Open(sqlite.Open(dsn), false)
	if err != nil {
		t.Fatalf("打开SQLite失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取SQL DB失败: %v", err)
	}
	// 单连接：事务内外看到同一个内存库
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := mysql.AutoMigrate(db); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}
