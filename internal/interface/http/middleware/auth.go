package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
	"github.com/xiebiao/cafe/pkg/jwt"
	"github.com/xiebiao/cafe/pkg/response"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Blacklist Token黑名单(由Redis实现)
type Blacklist interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 设计说明:
// 1. 从Header提取Token
// 2. 检查Token黑名单
// 3. 验证Token有效性
// 4. 将用户ID和角色注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  Blacklist
}

// NewAuthMiddleware 创建认证中间件,blacklist可以为nil
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist Blacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
// 使用方式:
//
//	authorized := v1.Group("")
//	authorized.Use(authMiddleware.RequireAuth())
//	authorized.GET("/cart", cartHandler.GetCart)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 格式:Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		tokenString := parts[1]

		// 2. 已登出或被强制失效的Token
		if m.blacklist != nil {
			revoked, err := m.blacklist.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if revoked {
				response.Error(c, apperrors.ErrTokenExpired)
				c.Abort()
				return
			}
		}

		// 3. 自动处理ErrTokenExpired、ErrInvalidToken
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		// 4. 注入用户信息
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin 要求管理员,必须放在RequireAuth之后
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != jwt.RoleAdmin {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID 从Context获取当前登录用户ID,未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// MustGetUserID 用于已经通过RequireAuth的Handler
func MustGetUserID(c *gin.Context) uint {
	userID := GetUserID(c)
	if userID == 0 {
		panic("user_id not found in context")
	}
	return userID
}
