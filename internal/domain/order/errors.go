package order

import (
	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在（含访问他人订单）
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// 下单参数校验
	ErrEmptyCart            = apperrors.New(apperrors.ErrCodeInvalidParams, "购物车不能为空")
	ErrPickupTimeRequired   = apperrors.New(apperrors.ErrCodeInvalidParams, "请选择取餐时间")
	ErrInvalidPaymentMethod = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的支付方式")
	ErrPickupInPast         = apperrors.New(apperrors.ErrCodeInvalidParams, "取餐时间必须晚于当前时间")
	ErrInvalidItem          = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细缺少商品ID")
	ErrInvalidQuantity      = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")
	ErrNoValidItems         = apperrors.New(apperrors.ErrCodeInvalidParams, "购物车中没有有效商品")

	// ErrUnknownStatus 列表筛选的状态不存在
	ErrUnknownStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的订单状态")

	// 状态流转
	ErrOrderAlreadyCompleted = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单已完成")
	ErrWrongPaymentMethod    = apperrors.New(apperrors.ErrCodeWrongPaymentMethod, "该操作不适用于此订单的支付方式")
	ErrAlreadyPaid           = apperrors.New(apperrors.ErrCodeAlreadyPaid, "订单已确认收款")

	// ErrTokenExhausted 连续生成的取餐码全部已被占用
	ErrTokenExhausted = apperrors.New(apperrors.ErrCodeTokenExhausted, "取餐码生成失败，请稍后重试")

	// ErrTokenCheckFailed 取餐码唯一性查询出错
	ErrTokenCheckFailed = apperrors.New(apperrors.ErrCodeTokenCheckFailed, "取餐码校验失败，请稍后重试")

	// ErrOrderConflict 唯一索引冲突（订单号或取餐码重复），客户端重试即可
	ErrOrderConflict = apperrors.New(apperrors.ErrCodeConflict, "订单创建冲突，请重试")
)
