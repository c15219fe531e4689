package seller

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 字段长度上限（按字符计，不是字节）
const (
	MaxFirstNameLen = 30
	MaxLastNameLen  = 50
	MaxEmailLen     = 50
	MaxPasswordLen  = 50
)

// Seller 卖家实体（聚合根）
// DDD设计说明：
// 1. Password只保存bcrypt哈希，创建后不可修改
// 2. 卖家拥有零到多本图书，删除卖家时图书一并删除（由用例在同一事务中完成）
// 3. 领域实体不依赖GORM tag，映射由persistence/mysql负责
type Seller struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt哈希值，永远不对外返回
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSeller 创建新卖家（工厂方法）
// hashedPassword必须是已经哈希过的密码
func NewSeller(firstName, lastName, email, hashedPassword string) *Seller {
	now := time.Now()
	return &Seller{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfile 覆盖姓名和邮箱，密码保持不变
func (s *Seller) UpdateProfile(firstName, lastName, email string) {
	s.FirstName = firstName
	s.LastName = lastName
	s.Email = email
	s.UpdatedAt = time.Now()
}

// MatchesEmail 精确比较邮箱（区分大小写）
func (s *Seller) MatchesEmail(email string) bool {
	return s.Email == email
}

// ValidateProfile 校验姓名和邮箱
func ValidateProfile(firstName, lastName, email string) error {
	if err := checkField("first_name", firstName, MaxFirstNameLen); err != nil {
		return err
	}
	if err := checkField("last_name", lastName, MaxLastNameLen); err != nil {
		return err
	}
	return checkField("email", email, MaxEmailLen)
}

// ValidatePassword 校验明文密码
func ValidatePassword(password string) error {
	return checkField("password", password, MaxPasswordLen)
}

func checkField(name, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Invalid("%s is required", name)
	}
	if utf8.RuneCountInString(value) > max {
		return apperrors.Invalid("%s must be at most %d characters", name, max)
	}
	return nil
}
