package art

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

var (
	ErrArtNotFound     = apperrors.New(apperrors.ErrCodeArtNotFound, "艺术品不存在")
	ErrBookingNotFound = apperrors.New(apperrors.ErrCodeBookingNotFound, "预订申请不存在")
	ErrArtSold         = apperrors.New(apperrors.ErrCodeArtSold, "该艺术品已售出")
	ErrMissingFields   = apperrors.New(apperrors.ErrCodeInvalidParams, "艺术品、姓名和电话为必填项")
)
