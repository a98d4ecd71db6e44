package cart

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// 购物车领域错误定义
var (
	ErrCartNotFound    = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")
	ErrItemNotInCart   = apperrors.New(apperrors.ErrCodeItemNotInCart, "购物车中没有该商品")
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量不合法")
)
