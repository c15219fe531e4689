// Package logger 基于zerolog构建服务日志
//
// 约定：
//   - 根Logger在main中创建一次，通过依赖注入传递
//   - 请求级Logger由中间件挂到context上，下游用zerolog.Ctx(ctx)取出
//   - 不记录密码、完整请求体等敏感信息
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志配置
type Options struct {
	Level  string // debug | info | warn | error
	Format string // console | json
	Output string // stdout | stderr | /path/to/file
}

// New 创建根Logger
// 返回的closeFn在退出时调用，输出到文件时负责关闭文件
func New(opts Options) (l zerolog.Logger, closeFn func() error, err error) {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	w, closeFn, err := openOutput(opts.Output)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if opts.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}

// WithContext 将Logger挂到context上
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// openOutput 标准输出不需要关闭，返回空操作
func openOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch output {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, f.Close, nil
	}
}
