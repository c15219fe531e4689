package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// RequestIDHeader 请求ID响应头
const RequestIDHeader = "X-Request-ID"

// slowRequest 超过该耗时记为慢请求
const slowRequest = 3 * time.Second

// Logger 请求日志中间件
//
// 1. 沿用客户端传入的X-Request-ID，没有则生成UUID
// 2. 把带request_id的子Logger挂到请求context上，下游用zerolog.Ctx(ctx)取出
// 3. 请求结束后输出一行结构化日志
//
// 不记录请求体（可能包含密码）
func Logger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		reqLog := base.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLog))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = reqLog.Error()
		case status >= 400:
			event = reqLog.Warn()
		case latency > slowRequest:
			event = reqLog.Warn().Bool("slow", true)
		default:
			event = reqLog.Info()
		}

		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			event = event.Str("trace_id", traceID)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
