package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/cafe/internal/infrastructure/config"
)

// @title           Cafe API
// @version         1.0
// @description     咖啡馆点单服务:菜单、购物车、下单(订单号+取餐码)、咖啡和艺术品目录、艺术品预订、工作坊报名、加盟咨询
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

const shutdownTimeout = 10 * time.Second

// main 主程序入口
// 依赖由Wire在wire_gen.go中组装
func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		app.logger.Error("server exited", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}

// Run 启动HTTP服务,收到SIGINT/SIGTERM后优雅关闭
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started",
			zap.String("addr", a.server.Addr),
			zap.String("mode", a.cfg.Server.Mode),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("启动服务失败: %w", err)
	case sig := <-quit:
		a.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}

func addr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}
