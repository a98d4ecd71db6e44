package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/response"
)

// HeaderRequestID 请求ID头
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "request_id"

// slowRequest 超过这个耗时记Warn
const slowRequest = 3 * time.Second

// RequestLogger 请求日志中间件
// 1. 沿用上游传来的X-Request-ID,没有则生成uuid
// 2. 请求结束后记录方法、路径、状态码、耗时、客户端IP
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case latency > slowRequest:
			logger.Warn("slow request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// GetRequestID 当前请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// Recovery panic恢复,记录堆栈后返回500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Code:    apperrors.ErrInternal.Code,
			Message: apperrors.ErrInternal.Message,
		})
	})
}
