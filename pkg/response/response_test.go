package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		0:                                   http.StatusOK,
		apperrors.ErrCodeUnauthorized:       http.StatusUnauthorized,
		apperrors.ErrCodeTokenExpired:       http.StatusUnauthorized,
		apperrors.ErrCodeForbidden:          http.StatusForbidden,
		apperrors.ErrCodeOrderNotFound:      http.StatusNotFound,
		apperrors.ErrCodeConflict:           http.StatusConflict,
		apperrors.ErrCodeInvalidParams:      http.StatusBadRequest,
		apperrors.ErrCodeNoSeatsLeft:        http.StatusBadRequest,
		apperrors.ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
		apperrors.ErrCodeRedisError:         http.StatusInternalServerError,
		apperrors.ErrCodeInternal:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code=%d", code)
	}
}

func TestError(t *testing.T) {
	t.Run("AppError按业务码返回状态", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, apperrors.ErrServiceUnavailable.WithCause(errors.New("redis down")))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperrors.ErrCodeServiceUnavailable, body.Code)
		assert.NotContains(t, w.Body.String(), "redis down")
	})

	t.Run("普通error包装为内部错误", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"code":50000`)
	})
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, gin.H{"orderId": "ORD-20240115-001"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"created","data":{"orderId":"ORD-20240115-001"}}`, w.Body.String())
}

func TestNewPageData(t *testing.T) {
	p := NewPageData([]int{1, 2}, 21, 2, 10)
	assert.Equal(t, 3, p.TotalPages)

	empty := NewPageData(nil, 0, 1, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
