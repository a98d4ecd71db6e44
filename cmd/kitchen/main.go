package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/internal/infrastructure/config"
	"github.com/xiebiao/cafe/pkg/logger"
	"github.com/xiebiao/cafe/pkg/mq"
)

// main 后厨出单服务
// 订阅order.created事件,按取餐时间打印出单小票
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if cfg.MQ.URL == "" {
		log.Fatal("mq.url未配置,后厨服务无法启动")
	}

	// 2. 初始化日志
	l, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = l.Sync() }()

	// 3. 取餐时间按门店时区显示
	loc, err := cfg.Order.Location()
	if err != nil {
		l.Fatal("invalid order timezone", zap.Error(err))
	}

	// 4. 连接RabbitMQ并绑定队列
	consumer, err := mq.NewConsumer(
		cfg.MQ.URL,
		cfg.MQ.Exchange,
		cfg.MQ.ExchangeType,
		cfg.MQ.KitchenQueue,
		[]string{order.EventOrderCreated},
		l,
	)
	if err != nil {
		l.Fatal("connect rabbitmq failed", zap.Error(err))
	}
	defer consumer.Close()

	// 5. 收到SIGINT/SIGTERM后停止消费
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printer := newTicketPrinter(loc, l)
	if err := consumer.Consume(ctx, printer.Handle); err != nil {
		l.Error("consumer exited", zap.Error(err))
		return
	}
	l.Info("kitchen stopped")
}
