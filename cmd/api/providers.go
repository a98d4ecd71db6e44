package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apporder "github.com/xiebiao/cafe/internal/application/order"
	"github.com/xiebiao/cafe/internal/domain/menu"
	"github.com/xiebiao/cafe/internal/domain/order"
	"github.com/xiebiao/cafe/internal/infrastructure/config"
	"github.com/xiebiao/cafe/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/cafe/internal/interface/http/middleware"
	"github.com/xiebiao/cafe/internal/interface/http/router"
	"github.com/xiebiao/cafe/pkg/circuitbreaker"
	"github.com/xiebiao/cafe/pkg/clock"
	"github.com/xiebiao/cafe/pkg/jwt"
	"github.com/xiebiao/cafe/pkg/logger"
	"github.com/xiebiao/cafe/pkg/mq"
	"github.com/xiebiao/cafe/pkg/tracing"
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 教学说明:
// 构造函数的参数需要从Config中提取时,Wire无法自动推导,
// 这时需要编写自定义Provider函数

// App 组装完成的应用
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	server *http.Server
}

func newApp(cfg *config.Config, log *zap.Logger, engine *gin.Engine) *App {
	return &App{
		cfg:    cfg,
		logger: log,
		server: &http.Server{
			Addr:         addr(cfg),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// provideConfig config.Load是变参函数,Wire不支持直接使用
func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return nil, nil, err
	}
	return l, func() { _ = l.Sync() }, nil
}

// provideTracer endpoint为空时不启用,otel使用默认的Noop TracerProvider
func provideTracer(cfg *config.Config, log *zap.Logger) (tracerShutdown, func(), error) {
	if cfg.Tracing.Endpoint == "" {
		log.Info("tracing disabled")
		return tracerShutdown{}, func() {}, nil
	}

	shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return tracerShutdown{}, nil, err
	}
	log.Info("tracing enabled", zap.String("endpoint", cfg.Tracing.Endpoint))

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	return tracerShutdown{}, cleanup, nil
}

// tracerShutdown 仅用于让Wire把provideTracer纳入依赖图
type tracerShutdown struct{}

// provideEventPublisher mq.url为空时丢弃事件,否则经熔断器发布到RabbitMQ
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (apporder.EventPublisher, func(), error) {
	if cfg.MQ.URL == "" {
		log.Info("event publishing disabled")
		return mq.NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log)
	if err != nil {
		return nil, nil, err
	}

	failures := cfg.MQ.BreakerFailures
	breaker := circuitbreaker.New("order-events", circuitbreaker.Config{
		Timeout:       cfg.MQ.BreakerTimeout,
		ReadyToTrip:   func(c circuitbreaker.Counts) bool { return c.ConsecutiveFailures >= failures },
		OnStateChange: mq.LogStateChange(log),
	})
	return mq.NewBreakerPublisher(p, breaker, log), func() { _ = p.Close() }, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

func provideMenuCache(client *goredis.Client, cfg *config.Config) menu.Cache {
	return redis.NewMenuCache(client, cfg.Cache.MenuItemTTL, cfg.Cache.MenuListTTL)
}

func provideTokenGenerator(log *zap.Logger) *order.TokenGenerator {
	return order.NewTokenGenerator(nil, log)
}

// provideSequentialIDGenerator 订单仓储本身就是DailyCounter
func provideSequentialIDGenerator(repo order.Repository, clk clock.Clock, cfg *config.Config, log *zap.Logger) (*order.SequentialIDGenerator, error) {
	loc, err := cfg.Order.Location()
	if err != nil {
		return nil, err
	}
	return order.NewSequentialIDGenerator(repo, clk, loc, log), nil
}

func provideGinEngine(cfg *config.Config, log *zap.Logger, h router.Handlers, auth *middleware.AuthMiddleware, _ tracerShutdown) *gin.Engine {
	return router.New(router.Options{
		Mode:          cfg.Server.Mode,
		EnableSwagger: cfg.Server.Mode != gin.ReleaseMode,
	}, log, h, auth)
}
