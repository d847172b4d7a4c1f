package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

// Response 统一响应结构（HTTP 状态恒为 200，业务结果看 status_code）
type Response struct {
	StatusCode int         `json:"status_code"` // 业务状态码
	Msg        string      `json:"msg"`         // 提示消息
	Data       interface{} `json:"data"`        // 数据内容
}

// PageResponse 分页响应结构
type PageResponse struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination 按总数计算总页数
func NewPagination(page, pageSize int, total int64) Pagination {
	if pageSize <= 0 {
		pageSize = 20
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
}

// ErrorData 错误响应的附加数据
type ErrorData struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error,omitempty"` // 文案 key，便于前端按 key 处理
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: CodeOK,
		Msg:        "success",
		Data:       data,
	})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		StatusCode: CodeOK,
		Msg:        "success",
		Data:       data,
		Pagination: pagination,
	})
}

// Fail 按 AppError 输出错误响应
func Fail(c *gin.Context, appErr *AppError) {
	if appErr == nil {
		appErr = NewAppError(CodeInternal, "", "internal error", nil)
	}
	c.JSON(http.StatusOK, Response{
		StatusCode: appErr.Code,
		Msg:        appErr.Message,
		Data:       errorData(c, appErr.Key),
	})
}

// Error 错误响应（无文案 key）
func Error(c *gin.Context, statusCode int, msg string) {
	Fail(c, NewAppError(statusCode, "", msg, nil))
}

// NotFound 404响应
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// Forbidden 403响应
func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}

func errorData(c *gin.Context, key string) *ErrorData {
	data := &ErrorData{Error: key}
	if c != nil {
		if id, ok := c.Get(requestIDKey); ok {
			data.RequestID, _ = id.(string)
		}
	}
	if data.RequestID == "" && data.Error == "" {
		return nil
	}
	return data
}
