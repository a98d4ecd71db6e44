package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/cafe/pkg/errors"
)

// TokenBlacklist JWT黑名单
// 设计说明:
// 1. JWT是无状态的,服务端只能靠黑名单让Token提前失效
// 2. Key设计:blacklist:{token},过期时间等于Token剩余有效期
// 3. 写入端是店员的强制失效接口(POST /admin/tokens/revoke),读取端是认证中间件
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist 创建黑名单
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}

// Revoke 将Token加入黑名单,ttl<=0时不写入(Token已过期)
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("添加Token到黑名单失败: %w", err))
	}
	return nil
}

// IsRevoked 检查Token是否在黑名单中
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	exists, err := b.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.ErrRedisError.WithCause(fmt.Errorf("检查黑名单失败: %w", err))
	}
	return exists > 0, nil
}
