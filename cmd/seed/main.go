package main

import (
	"context"
	"time"

	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/provider"
	"github.com/order-ledger/internal/service"

	"github.com/shopspring/decimal"
)

type seedVariant struct {
	Category string
	Name     string
	Price    float64
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(models.DBOptions{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		},
		LogLevel:           cfg.Database.LogLevel,
		SlowQueryThreshold: cfg.Database.SlowQueryDuration(),
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 种子数据不投递队列任务
	c, err := provider.Build(cfg, models.DB, nil)
	if err != nil {
		stdLog.Fatalf("Failed to build container: %v", err)
	}
	ctx := context.Background()

	// 添加分类
	categoryIDs := make(map[string]uint)
	for i, name := range []string{"Electronics", "Books", "Home & Kitchen"} {
		category, err := c.CatalogService.CreateCategory(ctx, service.CreateCategoryInput{
			Name:      name,
			SortOrder: 100 - i*10,
		})
		if err != nil {
			stdLog.Fatalf("Failed to create category %s: %v", name, err)
		}
		categoryIDs[name] = category.ID
	}

	// 添加商品规格
	variants := []seedVariant{
		{Category: "Electronics", Name: "Wireless Headphones", Price: 99.99},
		{Category: "Electronics", Name: "Portable Charger", Price: 49.99},
		{Category: "Books", Name: "Go in Practice", Price: 39.90},
		{Category: "Home & Kitchen", Name: "Pour Over Kettle", Price: 59.00},
	}
	variantIDs := make([]uint, 0, len(variants))
	prices := make([]models.Money, 0, len(variants))
	for _, item := range variants {
		variant, err := c.CatalogService.CreateVariant(service.CreateVariantInput{
			CategoryID: categoryIDs[item.Category],
			Name:       item.Name,
		})
		if err != nil {
			stdLog.Fatalf("Failed to create variant %s: %v", item.Name, err)
		}
		variantIDs = append(variantIDs, variant.ID)
		prices = append(prices, models.NewMoneyFromDecimal(decimal.NewFromFloat(item.Price)))
	}

	// 添加用户
	userIDs := make([]uint, 0, 2)
	for _, username := range []string{"ada", "grace"} {
		user, err := c.UserRepo.GetByUsername(username)
		if err != nil {
			stdLog.Fatalf("Failed to query user %s: %v", username, err)
		}
		if user == nil {
			user = &models.User{Username: username, Email: username + "@example.com"}
			if err := c.UserRepo.Create(user); err != nil {
				stdLog.Fatalf("Failed to create user %s: %v", username, err)
			}
		}
		userIDs = append(userIDs, user.ID)
	}

	// 订单一：已发货并完成支付
	shipped, _, err := c.OrderService.CreateOrder(ctx, service.CreateOrderInput{
		UserID:      userIDs[0],
		TotalAmount: prices[0].Plus(prices[2]),
		Items: []service.OrderItemInput{
			{ProductVariantID: variantIDs[0], Quantity: 1, Price: prices[0]},
			{ProductVariantID: variantIDs[2], Quantity: 1, Price: prices[2]},
		},
		ShippingAddress: &service.ShippingAddressInput{
			FullName:     "Ada Lovelace",
			AddressLine1: "12 St James's Square",
			City:         "London",
			State:        "London",
			PostalCode:   "SW1Y 4JH",
			Country:      "United Kingdom",
			PhoneNumber:  "+44 20 7946 0000",
		},
	})
	if err != nil {
		stdLog.Fatalf("Failed to create order: %v", err)
	}
	transactionID := "txn-" + time.Now().Format("20060102150405")
	if _, err := c.PaymentService.RecordPayment(ctx, shipped.ID, service.RecordPaymentInput{
		Method:        constants.PaymentMethodOnline,
		Amount:        shipped.TotalAmount,
		Status:        constants.PaymentStatusCompleted,
		TransactionID: &transactionID,
	}); err != nil {
		stdLog.Fatalf("Failed to record payment: %v", err)
	}
	for _, status := range []string{constants.OrderStatusProcessing, constants.OrderStatusShipped} {
		if _, _, err := c.OrderService.UpdateOrderStatus(ctx, shipped.ID, status); err != nil {
			stdLog.Fatalf("Failed to update order status: %v", err)
		}
	}

	// 订单二：取消并申请退款
	cancelled, _, err := c.OrderService.CreateOrder(ctx, service.CreateOrderInput{
		UserID:      userIDs[1],
		TotalAmount: prices[3],
		Items: []service.OrderItemInput{
			{ProductVariantID: variantIDs[3], Quantity: 1, Price: prices[3]},
		},
	})
	if err != nil {
		stdLog.Fatalf("Failed to create order: %v", err)
	}
	if _, err := c.PaymentService.RecordPayment(ctx, cancelled.ID, service.RecordPaymentInput{
		Method: constants.PaymentMethodCashOnDelivery,
		Amount: cancelled.TotalAmount,
	}); err != nil {
		stdLog.Fatalf("Failed to record payment: %v", err)
	}
	if _, _, err := c.OrderService.UpdateOrderStatus(ctx, cancelled.ID, constants.OrderStatusCancelled); err != nil {
		stdLog.Fatalf("Failed to cancel order: %v", err)
	}
	if _, err := c.RefundService.CreateRefund(ctx, cancelled.ID, service.CreateRefundInput{
		Amount: cancelled.TotalAmount,
		Reason: "Customer changed their mind",
	}); err != nil {
		stdLog.Fatalf("Failed to create refund: %v", err)
	}

	logger.Infow("seed_completed",
		"categories", len(categoryIDs),
		"variants", len(variantIDs),
		"orders", 2,
	)
}
