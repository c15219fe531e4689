package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. 成功时直接返回业务数据（卖家、图书、消息），不再包一层code/data
// 2. 失败时HTTP状态码表达错误类别，Code是业务错误码，Detail是提示信息
type ErrorBody struct {
	Code   int    `json:"code" example:"40401"`
	Detail string `json:"detail" example:"Seller not found"`
}

// MessageBody 仅包含提示信息的响应
type MessageBody struct {
	Message string `json:"message" example:"pong"`
}

// Success 成功响应（HTTP 200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应，只返回提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := StatusOf(appErr.Code)

	// 服务端错误记录内部原因，客户端只看到Message
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Int("code", appErr.Code).
			Msg("request failed")
	}

	_ = c.Error(err)
	c.JSON(status, ErrorBody{
		Code:   appErr.Code,
		Detail: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(StatusOf(code), ErrorBody{
		Code:   code,
		Detail: message,
	})
}

// StatusOf 业务错误码 → HTTP状态码
// - 404xx: 404 Not Found
// - 409xx: 422 Unprocessable Entity（参数校验失败）
// - 其他4xxxx: 400 Bad Request
// - 5xxxx及未知: 500 Internal Server Error
func StatusOf(code int) int {
	switch {
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40900 && code < 41000:
		return http.StatusUnprocessableEntity
	case code >= 40000 && code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
