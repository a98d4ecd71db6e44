package workshop

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

var (
	ErrWorkshopNotFound = apperrors.New(apperrors.ErrCodeWorkshopNotFound, "工作坊不存在")
	ErrNoSeatsLeft      = apperrors.New(apperrors.ErrCodeNoSeatsLeft, "名额已满")
	ErrMissingFields    = apperrors.New(apperrors.ErrCodeInvalidParams, "工作坊、姓名和电话为必填项")
)
