package seller

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 卖家领域错误定义
var (
	// ErrSellerNotFound 卖家不存在（删除时邮箱不匹配也返回此错误）
	ErrSellerNotFound = apperrors.New(apperrors.ErrCodeSellerNotFound, "Seller not found")
)
