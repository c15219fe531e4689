package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// NewDB 创建MySQL数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. database.auto_migrate为true时自动迁移表结构
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(mysql.Open(cfg.Database.DSN()), cfg.Server.Mode == "debug")
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

// Open 使用任意Dialector打开GORM连接
// 测试中传入SQLite Dialector
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info // 开发环境打印SQL
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().Round(time.Microsecond)
		},
	})
}

// AutoMigrate 自动迁移表结构
// 注意：先迁移sellers_table，books_table的外键才能建立
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SellerModel{},
		&BookModel{},
	)
}

// SellerModel GORM卖家模型
// 设计说明：
// 1. domain/seller/entity.go是领域实体，不依赖GORM
// 2. Books只用于声明外键约束，仓储不做关联预加载
// 3. 硬删除，没有DeletedAt字段
type SellerModel struct {
	ID        uint        `gorm:"primaryKey"`
	FirstName string      `gorm:"size:30;not null;comment:名"`
	LastName  string      `gorm:"size:50;not null;comment:姓"`
	Email     string      `gorm:"size:50;not null;index;comment:邮箱"`
	Password  string      `gorm:"size:255;not null;comment:密码（bcrypt哈希）"`
	Books     []BookModel `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"comment:创建时间"`
	UpdatedAt time.Time   `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (SellerModel) TableName() string {
	return "sellers_table"
}

// BookModel GORM图书模型
type BookModel struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:50;not null;comment:书名"`
	Author     string    `gorm:"size:100;not null;comment:作者"`
	Year       int       `gorm:"not null;default:0;comment:出版年份"`
	CountPages int       `gorm:"not null;default:0;comment:页数"`
	SellerID   uint      `gorm:"index;not null;comment:所属卖家ID"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books_table"
}
