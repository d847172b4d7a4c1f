package shared

import (
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/i18n"
	"github.com/order-ledger/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.S().With("request_id", id)
		}
	}
	return logger.S()
}

// NewLocalizedError 按请求语言生成接口错误
func NewLocalizedError(c *gin.Context, code int, key string, err error) *response.AppError {
	return response.NewAppError(code, key, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondError 返回国际化错误响应；5xx 记录 error 日志，其余有原因时记录 warn
func RespondError(c *gin.Context, code int, key string, err error) {
	appErr := NewLocalizedError(c, code, key, err)
	logAppError(c, appErr)
	response.Fail(c, appErr)
}

// AbortWithError 返回错误响应并终止后续中间件
func AbortWithError(c *gin.Context, code int, key string, err error) {
	RespondError(c, code, key, err)
	c.Abort()
}

func logAppError(c *gin.Context, appErr *response.AppError) {
	if appErr.Code >= response.CodeInternal {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"error", appErr.Err,
		)
		return
	}
	if appErr.Err != nil {
		RequestLog(c).Warnw("handler_rejected",
			"code", appErr.Code,
			"key", appErr.Key,
			"error", appErr.Err,
		)
	}
}
