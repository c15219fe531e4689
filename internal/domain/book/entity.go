package book

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 字段长度上限（按字符计）
const (
	MaxTitleLen  = 50
	MaxAuthorLen = 100
)

// Book 图书实体
// DDD设计说明:
// 1. 每本图书只属于一个卖家(SellerID),卖家删除时图书一并删除
// 2. Year、CountPages没有取值范围限制
type Book struct {
	ID         uint
	Title      string
	Author     string
	Year       int
	CountPages int
	SellerID   uint // 所属卖家ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, author string, year, countPages int, sellerID uint) *Book {
	now := time.Now()
	return &Book{
		Title:      title,
		Author:     author,
		Year:       year,
		CountPages: countPages,
		SellerID:   sellerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate 校验必填字段和长度
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return apperrors.Invalid("title is required")
	}
	if utf8.RuneCountInString(b.Title) > MaxTitleLen {
		return apperrors.Invalid("title must be at most %d characters", MaxTitleLen)
	}
	if strings.TrimSpace(b.Author) == "" {
		return apperrors.Invalid("author is required")
	}
	if utf8.RuneCountInString(b.Author) > MaxAuthorLen {
		return apperrors.Invalid("author must be at most %d characters", MaxAuthorLen)
	}
	if b.SellerID == 0 {
		return apperrors.Invalid("seller_id is required")
	}
	return nil
}
