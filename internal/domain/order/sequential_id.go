package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/pkg/clock"
)

// 订单号格式:ORD-YYYYMMDD-NNN,NNN为当天第几单(从001开始)
// 兜底格式:ORD-<毫秒时间戳>
const (
	orderIDPrefix     = "ORD"
	orderIDDateLayout = "20060102"
	maxDailySequence  = 999
)

// DailyCounter 统计[from, to)内创建的订单数
type DailyCounter interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// DailyCounterFunc 函数适配DailyCounter
type DailyCounterFunc func(ctx context.Context, from, to time.Time) (int64, error)

func (f DailyCounterFunc) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return f(ctx, from, to)
}

// idStrategy 订单号生成策略,按顺序尝试,第一个成功的生效
type idStrategy struct {
	name  string
	build func(ctx context.Context, now time.Time) (string, error)
}

// SequentialIDGenerator 订单号生成器
// 教学要点:
// 1. 序号=当天已有订单数+1,依赖计数查询,不加锁,并发下单可能拿到相同序号
// 2. 唯一性由orders.order_id唯一索引兜底,冲突时返回ErrOrderConflict让客户端重试
// 3. 生成器本身永远不失败:计数失败按0计,序号溢出时退回时间戳格式
type SequentialIDGenerator struct {
	counter    DailyCounter
	clock      clock.Clock
	loc        *time.Location
	logger     *zap.Logger
	strategies []idStrategy
}

// NewSequentialIDGenerator 创建订单号生成器
// loc决定"当天"的边界,为nil时使用time.Local
func NewSequentialIDGenerator(counter DailyCounter, clk clock.Clock, loc *time.Location, logger *zap.Logger) *SequentialIDGenerator {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &SequentialIDGenerator{
		counter: counter,
		clock:   clk,
		loc:     loc,
		logger:  logger,
	}
	g.strategies = []idStrategy{
		{name: "daily-sequence", build: g.dailySequence},
		{name: "timestamp", build: timestampID},
	}
	return g
}

// Generate 生成订单号
func (g *SequentialIDGenerator) Generate(ctx context.Context) string {
	now := g.clock.Now().In(g.loc)
	for _, s := range g.strategies {
		id, err := s.build(ctx, now)
		if err == nil {
			return id
		}
		g.logger.Warn("order id strategy failed, trying next",
			zap.String("strategy", s.name),
			zap.Error(err),
		)
	}
	id, _ := timestampID(ctx, now)
	return id
}

// dailySequence ORD-YYYYMMDD-NNN
func (g *SequentialIDGenerator) dailySequence(ctx context.Context, now time.Time) (string, error) {
	start, end := DayWindow(now, g.loc)

	count, err := g.counter.CountCreatedBetween(ctx, start, end)
	if err != nil {
		g.logger.Warn("count today's orders failed, sequence falls back to 1",
			zap.Time("from", start),
			zap.Time("to", end),
			zap.Error(err),
		)
		count = 0
	}

	seq := count + 1
	if seq < 1 || seq > maxDailySequence {
		return "", fmt.Errorf("daily sequence %d does not fit in 3 digits", seq)
	}
	return fmt.Sprintf("%s-%s-%03d", orderIDPrefix, start.Format(orderIDDateLayout), seq), nil
}

// timestampID ORD-<毫秒时间戳>
func timestampID(_ context.Context, now time.Time) (string, error) {
	return fmt.Sprintf("%s-%d", orderIDPrefix, now.UnixMilli()), nil
}

// DayWindow 返回now所在自然日在loc时区下的[00:00, 次日00:00)
// 用AddDate而非加24小时,夏令时切换日也正确
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
