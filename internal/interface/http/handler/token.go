package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/interface/http/dto"
	"github.com/xiebiao/cafe/pkg/clock"
	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/jwt"
	"github.com/xiebiao/cafe/pkg/response"
)

// TokenRevoker Token黑名单的写入端(由Redis实现)
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// TokenHandler 店员强制让泄露的Token失效
// 本服务不负责登录,这里只把Token写进黑名单,保留到它本来的过期时间
type TokenHandler struct {
	jwtManager *jwt.Manager
	revoker    TokenRevoker
	clock      clock.Clock
	logger     *zap.Logger
}

// NewTokenHandler 创建Token处理器
func NewTokenHandler(jwtManager *jwt.Manager, revoker TokenRevoker, clk clock.Clock, logger *zap.Logger) *TokenHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenHandler{jwtManager: jwtManager, revoker: revoker, clock: clk, logger: logger}
}

// RevokeToken 强制失效Token(管理员)
// @Summary      强制失效Token
// @Description  Token加入黑名单直到原过期时间;已过期的Token直接返回revoked=false
// @Tags         店员端
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RevokeTokenRequest true "要失效的Token"
// @Success      200 {object} response.Response{data=dto.RevokeTokenResponse}
// @Failure      401 {object} response.Response "Token签名无效"
// @Router       /admin/tokens/revoke [post]
func (h *TokenHandler) RevokeToken(c *gin.Context) {
	var req dto.RevokeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	claims, err := h.jwtManager.ParseToken(req.Token)
	if errors.Is(err, apperrors.ErrTokenExpired) {
		response.Success(c, &dto.RevokeTokenResponse{Revoked: false})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if claims.ExpiresAt == nil {
		response.Error(c, apperrors.ErrInvalidToken)
		return
	}

	ttl := claims.ExpiresAt.Sub(h.clock.Now())
	if err := h.revoker.Revoke(c.Request.Context(), req.Token, ttl); err != nil {
		response.Error(c, err)
		return
	}

	h.logger.Info("token revoked",
		zap.Uint("user_id", claims.UserID),
		zap.String("role", claims.Role),
		zap.Duration("ttl", ttl),
	)
	expiresAt := claims.ExpiresAt.Time
	response.Success(c, &dto.RevokeTokenResponse{
		Revoked:   ttl > 0,
		UserID:    claims.UserID,
		ExpiresAt: &expiresAt,
	})
}
