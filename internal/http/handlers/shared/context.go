package shared

import (
	"strconv"
	"strings"

	"github.com/order-ledger/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 读取路径中的数字主键，非法时直接写入 400 响应
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

// QueryInt 读取整数查询参数，缺失或非法时返回默认值
func QueryInt(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
