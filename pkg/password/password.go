package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Hasher 密码单向哈希
// bcrypt自动加盐，相同明文每次得到不同的哈希值
type Hasher struct {
	cost int
}

// NewHasher 创建哈希器，cost超出bcrypt允许范围时使用默认值
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash 计算密码哈希
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "密码加密失败")
	}
	return string(hashed), nil
}

// Verify 校验明文与哈希是否匹配
func (h *Hasher) Verify(hashed, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperrors.Wrap(err, "密码验证失败")
}
