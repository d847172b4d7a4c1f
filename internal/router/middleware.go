package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/authz"
	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/http/handlers/shared"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// CORSMiddleware 跨域中间件，空配置项由 config 默认值兜底
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	static := map[string]string{
		"Access-Control-Allow-Methods": strings.Join(cfg.AllowedMethods, ", "),
		"Access-Control-Allow-Headers": strings.Join(cfg.AllowedHeaders, ", "),
	}
	if cfg.AllowCredentials {
		static["Access-Control-Allow-Credentials"] = "true"
	}
	if cfg.MaxAge > 0 {
		static["Access-Control-Max-Age"] = strconv.Itoa(cfg.MaxAge)
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		if allowed := resolveAllowedOrigin(c.GetHeader("Origin"), origins, cfg.AllowCredentials); allowed != "" {
			header.Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				header.Add("Vary", "Origin")
			}
		}
		for key, value := range static {
			if value != "" {
				header.Set(key, value)
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// resolveAllowedOrigin 通配且允许凭证时回显请求来源，否则按白名单匹配
func resolveAllowedOrigin(origin string, origins []string, withCredentials bool) string {
	for _, allowed := range origins {
		switch {
		case allowed == "*" && withCredentials && origin != "":
			return origin
		case allowed == "*":
			return "*"
		case origin != "" && strings.EqualFold(allowed, origin):
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 透传或生成 X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// LoggerMiddleware 请求访问日志；5xx 记 error，4xx 记 warn
func LoggerMiddleware(base *zap.Logger) gin.HandlerFunc {
	sugar := logger.S()
	if base != nil {
		sugar = base.Sugar()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		switch {
		case status >= http.StatusInternalServerError || len(c.Errors) > 0:
			sugar.Errorw("http_request", fields...)
		case status >= http.StatusBadRequest:
			sugar.Warnw("http_request", fields...)
		default:
			sugar.Infow("http_request", fields...)
		}
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// EntityEnforcer 实体级权限判定
type EntityEnforcer interface {
	EnforceRole(role, entity, action string) (bool, error)
}

// AdminPermissionMiddleware 后台实体权限中间件，按 (角色, 实体, 动作) 判定
func AdminPermissionMiddleware(enforcer EntityEnforcer, role string, entity adminsite.Entity, action string) gin.HandlerFunc {
	object := authz.NormalizeObject(string(entity))
	act := authz.NormalizeAction(action)
	return func(c *gin.Context) {
		if enforcer == nil {
			logger.Errorw("admin_permission_enforcer_unavailable", "entity", object)
			shared.AbortWithError(c, response.CodeInternal, "error.authz_unavailable", nil)
			return
		}

		allowed, err := enforcer.EnforceRole(role, object, act)
		if err != nil {
			logger.Errorw("admin_permission_enforce_failed",
				"role", role,
				"entity", object,
				"action", act,
				"request_id", getRequestID(c),
				"error", err,
			)
			shared.AbortWithError(c, response.CodeInternal, "error.authz_unavailable", nil)
			return
		}
		if !allowed {
			logger.Warnw("admin_permission_denied",
				"role", role,
				"entity", object,
				"action", act,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", getRequestID(c),
			)
			shared.AbortWithError(c, response.CodeForbidden, "error.forbidden", nil)
			return
		}

		c.Next()
	}
}
