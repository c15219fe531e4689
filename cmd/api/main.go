package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	_ "github.com/xiebiao/bookcatalog/docs"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// @title           图书目录服务API
// @version         1.0
// @description     卖家与图书目录管理：卖家增删改查，删除卖家时级联删除其图书
// @BasePath        /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. 日志
	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "关闭日志输出失败: %v\n", err)
		}
	}()
	zerolog.DefaultContextLogger = &log

	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("关闭Tracer失败")
			}
		}()
		log.Info().Str("endpoint", cfg.Tracing.Endpoint).Msg("链路追踪已启用")
	}

	// 4. 依赖注入
	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// 5. 启动服务，收到SIGINT/SIGTERM后优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", app.Server.Addr).
			Str("mode", cfg.Server.Mode).
			Bool("swagger", cfg.Server.EnableSwagger).
			Msg("服务启动")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP服务异常退出: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	log.Info().Msg("服务已关闭")
	return nil
}
