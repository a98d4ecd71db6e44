package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，HTTP状态码由response包根据Code推导
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较
// WithCause返回的副本与预定义错误仍然errors.Is相等
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithCause 基于预定义错误附加内部原因，不修改原错误
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal   = 50000 // 内部错误
	ErrCodeRedisError = 50002 // Redis错误

	// 暂时不可用（50300-50399），客户端可重试
	ErrCodeServiceUnavailable = 50300
	ErrCodeTokenExhausted     = 50301 // 取餐码重试次数耗尽
	ErrCodeTokenCheckFailed   = 50302 // 取餐码唯一性校验失败

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期
	ErrCodeForbidden    = 40300 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeMenuItemNotFound = 40401 // 菜品不存在
	ErrCodeOrderNotFound    = 40402 // 订单不存在
	ErrCodeCartNotFound     = 40403 // 购物车不存在
	ErrCodeWorkshopNotFound = 40404 // 工作坊不存在
	ErrCodeEnquiryNotFound  = 40405 // 加盟咨询不存在
	ErrCodeItemNotInCart    = 40406 // 购物车中无此商品
	ErrCodeArtNotFound      = 40407 // 艺术品不存在
	ErrCodeBookingNotFound  = 40408 // 预订申请不存在

	// 业务规则错误（40000-40099）
	ErrCodeInvalidOrderStatus = 40002 // 订单状态非法
	ErrCodeWrongPaymentMethod = 40003 // 支付方式不匹配
	ErrCodeAlreadyPaid        = 40004 // 已确认收款
	ErrCodeNoSeatsLeft        = 40006 // 名额已满
	ErrCodeArtSold            = 40007 // 艺术品已售出

	// 冲突（40900-40999）
	ErrCodeConflict = 40900 // 唯一约束冲突，可重试

	// 参数错误（42200-42299）
	ErrCodeInvalidParams = 42200 // 参数错误
	ErrCodeBindError     = 42201 // 参数绑定失败
)

// =========================================
// 预定义错误
// =========================================

var (
	// 系统错误
	ErrInternal           = New(ErrCodeInternal, "系统内部错误")
	ErrRedisError         = New(ErrCodeRedisError, "缓存服务错误")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "服务暂时不可用，请稍后重试")

	// 认证授权
	ErrUnauthorized = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token已过期")
	ErrForbidden    = New(ErrCodeForbidden, "无权限访问")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
