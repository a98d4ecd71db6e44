package menu

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// ErrItemNotFound 菜品不存在
var ErrItemNotFound = apperrors.New(apperrors.ErrCodeMenuItemNotFound, "菜品不存在")
