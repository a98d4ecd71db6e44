package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/cafe/pkg/metrics"
)

// Metrics Prometheus请求指标
// path使用路由模板(c.FullPath),避免/orders/1、/orders/2各占一个标签值
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsInProgress.Inc()
		defer metrics.HTTPRequestsInProgress.Dec()

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, c.Request.Method, path, status)
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, time.Since(start).Seconds(), c.Request.Method, path)
	}
}
