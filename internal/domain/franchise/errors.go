package franchise

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

var (
	ErrEnquiryNotFound = apperrors.New(apperrors.ErrCodeEnquiryNotFound, "加盟咨询不存在")
	ErrMissingFields   = apperrors.New(apperrors.ErrCodeInvalidParams, "姓名、电话和城市为必填项")
	ErrInvalidStatus   = apperrors.New(apperrors.ErrCodeInvalidParams, "状态只能是NEW或CONTACTED")
)
