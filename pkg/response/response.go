package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码，成功时为0
// 2. HTTP状态码由业务码推导（见HTTPStatus），客户端可以只看状态码，也可以看Code
// 3. Data是业务数据，失败时省略
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 资源创建成功（201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部原因只进日志，不返回给客户端
	if appErr.Err != nil {
		zap.L().Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(HTTPStatus(appErr.Code), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(HTTPStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

// HTTPStatus 业务错误码 → HTTP状态码
// 规则：401xx→401，403xx→403，404xx→404，409xx→409，其余4xxxx→400，
// 50300→503，其余5xxxx→500
func HTTPStatus(code int) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code/100 == 401:
		return http.StatusUnauthorized
	case code/100 == 403:
		return http.StatusForbidden
	case code/100 == 404:
		return http.StatusNotFound
	case code/100 == 409:
		return http.StatusConflict
	case code/100 == 503:
		return http.StatusServiceUnavailable
	case code >= 40000 && code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List       interface{} `json:"list"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// NewPageData 创建分页数据
func NewPageData(list interface{}, total int64, page, pageSize int) *PageData {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize != 0 {
			totalPages++
		}
	}

	return &PageData{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, NewPageData(list, total, page, pageSize))
}
