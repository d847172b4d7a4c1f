package router

import (
	"fmt"
	"strings"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/cache"
	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/constants"
	adminhandlers "github.com/order-ledger/internal/http/handlers/admin"
	publichandlers "github.com/order-ledger/internal/http/handlers/public"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按公开/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ol"
	}
	publicRule := NewRateLimitRule(fmt.Sprintf("%s:rate:public", redisPrefix), cfg.Security.PublicRateLimit)
	publicLimiter := RateLimitMiddleware(cache.Client(), publicRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 目录占位接口
	api := r.Group("/api")
	api.Use(publicLimiter)
	{
		api.GET("/hello", publicHandler.ListCategories)
		api.GET("/hi", publicHandler.ListCategories)
		api.POST("/hello", publicHandler.ListCategories)
	}

	registerAdminRoutes(r.Group("/api/v1/admin"), adminHandler, c, cfg.Admin.Role)

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "not found")
	})

	return r
}

func registerAdminRoutes(admin *gin.RouterGroup, h *adminhandlers.Handler, c *provider.Container, role string) {
	perm := func(entity adminsite.Entity, action string) gin.HandlerFunc {
		return AdminPermissionMiddleware(c.AuthzService, role, entity, action)
	}

	admin.GET("/registry", h.AdminGetRegistry)
	admin.GET("/authz/roles", h.ListAuthzRoles)
	admin.GET("/authz/roles/:role/policies", h.GetAuthzRolePolicies)

	// 订单
	admin.GET("/orders", perm(adminsite.EntityOrder, constants.AdminActionView), h.AdminListOrders)
	admin.POST("/orders", perm(adminsite.EntityOrder, constants.AdminActionAdd), h.AdminCreateOrder)
	admin.GET("/orders/:id", perm(adminsite.EntityOrder, constants.AdminActionView), h.AdminGetOrder)
	admin.PATCH("/orders/:id", perm(adminsite.EntityOrder, constants.AdminActionChange), h.AdminUpdateOrder)
	admin.DELETE("/orders/:id", perm(adminsite.EntityOrder, constants.AdminActionDelete), h.AdminDeleteOrder)
	admin.GET("/orders/:id/status-history", perm(adminsite.EntityOrderStatusHistory, constants.AdminActionView), h.AdminGetOrderStatusHistory)
	admin.POST("/orders/:id/items", perm(adminsite.EntityOrderItem, constants.AdminActionAdd), h.AdminAddOrderItem)
	admin.POST("/orders/:id/payments", perm(adminsite.EntityPayment, constants.AdminActionAdd), h.AdminRecordPayment)
	admin.PUT("/orders/:id/shipping-address", perm(adminsite.EntityShippingAddress, constants.AdminActionAdd), h.AdminAttachShippingAddress)
	admin.POST("/orders/:id/refunds", perm(adminsite.EntityRefund, constants.AdminActionAdd), h.AdminCreateRefund)

	// 子记录列表与修改
	admin.GET("/order-items", perm(adminsite.EntityOrderItem, constants.AdminActionView), h.AdminListOrderItems)
	admin.GET("/payments", perm(adminsite.EntityPayment, constants.AdminActionView), h.AdminListPayments)
	admin.PATCH("/payments/:id", perm(adminsite.EntityPayment, constants.AdminActionChange), h.AdminUpdatePayment)
	admin.GET("/shipping-addresses", perm(adminsite.EntityShippingAddress, constants.AdminActionView), h.AdminListShippingAddresses)
	admin.PATCH("/shipping-addresses/:id", perm(adminsite.EntityShippingAddress, constants.AdminActionChange), h.AdminUpdateShippingAddress)
	admin.GET("/refunds", perm(adminsite.EntityRefund, constants.AdminActionView), h.AdminListRefunds)
	admin.PATCH("/refunds/:id", perm(adminsite.EntityRefund, constants.AdminActionChange), h.AdminUpdateRefund)

	// 状态流水只读
	admin.GET("/order-status-histories", perm(adminsite.EntityOrderStatusHistory, constants.AdminActionView), h.AdminListStatusHistory)
	admin.POST("/order-status-histories", perm(adminsite.EntityOrderStatusHistory, constants.AdminActionAdd), h.AdminRejectStatusHistoryWrite)
	admin.PATCH("/order-status-histories/:id", perm(adminsite.EntityOrderStatusHistory, constants.AdminActionChange), h.AdminRejectStatusHistoryWrite)
	admin.DELETE("/order-status-histories/:id", perm(adminsite.EntityOrderStatusHistory, constants.AdminActionDelete), h.AdminRejectStatusHistoryWrite)
}
