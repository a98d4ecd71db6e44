package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/clock"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/jwt"
)

type memRevoker struct {
	ttls map[string]time.Duration
	err  error
}

func (r *memRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.ttls[token] = ttl
	return nil
}

func newTokenEngine(jm *jwt.Manager, revoker *memRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/tokens/revoke", NewTokenHandler(jm, revoker, clock.NewSystem(), nil).RevokeToken)
	return r
}

func postRevoke(t *testing.T, r *gin.Engine, token string) (int, body) {
	t.Helper()
	payload, err := json.Marshal(dto.RevokeTokenRequest{Token: token})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/tokens/revoke", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return w.Code, b
}

func TestRevokeToken(t *testing.T) {
	jm := jwt.NewManager("token-test-secret", time.Hour)

	t.Run("有效Token写入黑名单直到过期", func(t *testing.T) {
		revoker := &memRevoker{ttls: map[string]time.Duration{}}
		token, err := jm.GenerateToken(42, jwt.RoleCustomer)
		require.NoError(t, err)

		status, b := postRevoke(t, newTokenEngine(jm, revoker), token)
		require.Equal(t, http.StatusOK, status)

		var resp dto.RevokeTokenResponse
		require.NoError(t, json.Unmarshal(b.Data, &resp))
		assert.True(t, resp.Revoked)
		assert.Equal(t, uint(42), resp.UserID)

		require.Contains(t, revoker.ttls, token)
		assert.InDelta(t, time.Hour.Seconds(), revoker.ttls[token].Seconds(), 5)
	})

	t.Run("已过期Token不写入", func(t *testing.T) {
		revoker := &memRevoker{ttls: map[string]time.Duration{}}
		expired, err := jwt.NewManager("token-test-secret", -time.Minute).GenerateToken(42, jwt.RoleCustomer)
		require.NoError(t, err)

		status, b := postRevoke(t, newTokenEngine(jm, revoker), expired)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"revoked":false}`, string(b.Data))
		assert.Empty(t, revoker.ttls)
	})

	t.Run("签名不对返回Token无效", func(t *testing.T) {
		revoker := &memRevoker{ttls: map[string]time.Duration{}}
		forged, err := jwt.NewManager("other-secret", time.Hour).GenerateToken(1, jwt.RoleAdmin)
		require.NoError(t, err)

		status, b := postRevoke(t, newTokenEngine(jm, revoker), forged)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, b.Code)
		assert.Empty(t, revoker.ttls)
	})

	t.Run("Redis写入失败", func(t *testing.T) {
		revoker := &memRevoker{err: apperrors.ErrRedisError.WithCause(errors.New("LOADING"))}
		token, err := jm.GenerateToken(7, jwt.RoleAdmin)
		require.NoError(t, err)

		status, b := postRevoke(t, newTokenEngine(jm, revoker), token)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, apperrors.ErrCodeRedisError, b.Code)
	})
}
