package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/response"
)

// pathID 解析路径中的数字ID,失败时已写出错误响应
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID: "+raw)
		return 0, false
	}
	return uint(id), true
}

// bindFailed 参数绑定失败
func bindFailed(c *gin.Context, err error) {
	response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
}
