package order

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// 取餐码格式:PREFIX-NNNN,如LAT-4821
const (
	maxTokenAttempts = 10
	tokenNumberMin   = 1000
	tokenNumberMax   = 9999
)

var tokenPrefixes = [...]string{"RB", "CAF", "BRU", "ESP", "LAT", "MOC", "VOL"}

// ExistsFunc 判断取餐码是否已被占用
type ExistsFunc func(ctx context.Context, token string) (bool, error)

// RandSource 随机数来源,*rand.Rand满足该接口
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// TokenGenerator 取餐码生成器
// 教学要点:
// 1. 生成→查重→重试,最多10次,每次串行执行
// 2. 查重出错立即停止,不把错误当成"已存在"继续重试
// 3. 10次全部冲突返回ErrTokenExhausted,订单不会创建
type TokenGenerator struct {
	rnd    RandSource
	logger *zap.Logger
}

// NewTokenGenerator 创建取餐码生成器,rnd为nil时使用math/rand/v2全局源(并发安全)
func NewTokenGenerator(rnd RandSource, logger *zap.Logger) *TokenGenerator {
	if rnd == nil {
		rnd = globalRand{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenGenerator{rnd: rnd, logger: logger}
}

// Candidate 生成一个候选取餐码,不查重
func (g *TokenGenerator) Candidate() string {
	prefix := tokenPrefixes[g.rnd.IntN(len(tokenPrefixes))]
	number := tokenNumberMin + g.rnd.IntN(tokenNumberMax-tokenNumberMin+1)
	return fmt.Sprintf("%s-%d", prefix, number)
}

// Generate 生成一个未被占用的取餐码
func (g *TokenGenerator) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", ErrTokenCheckFailed.WithCause(err)
		}

		token := g.Candidate()
		taken, err := exists(ctx, token)
		if err != nil {
			return "", ErrTokenCheckFailed.WithCause(err)
		}
		if !taken {
			return token, nil
		}
		g.logger.Debug("order token collision", zap.String("token", token), zap.Int("attempt", attempt))
	}

	g.logger.Error("order token attempts exhausted", zap.Int("attempts", maxTokenAttempts))
	return "", ErrTokenExhausted
}
