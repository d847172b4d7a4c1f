package provider

import (
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/authz"
	"github.com/order-ledger/internal/cache"
	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/queue"
	"github.com/order-ledger/internal/repository"
	"github.com/order-ledger/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client
	Registry    *adminsite.Registry

	// Repositories
	UserRepo            repository.UserRepository
	CategoryRepo        repository.CategoryRepository
	OrderRepo           repository.OrderRepository
	OrderItemRepo       repository.OrderItemRepository
	StatusHistoryRepo   repository.OrderStatusHistoryRepository
	PaymentRepo         repository.PaymentRepository
	ShippingAddressRepo repository.ShippingAddressRepository
	RefundRepo          repository.RefundRepository

	// Services
	AuthzService    *authz.Service
	OrderService    *service.OrderService
	PaymentService  *service.PaymentService
	RefundService   *service.RefundService
	ShippingService *service.ShippingService
	CatalogService  *service.CatalogService
}

// NewContainer 初始化容器（使用全局数据库连接）
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}

	c, err := Build(cfg, models.DB, queueClient)
	if err != nil {
		logger.Errorw("provider_build_container_failed", "error", err)
		panic(err)
	}
	return c
}

// Build 基于给定数据库与队列客户端装配容器
func Build(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) (*Container, error) {
	c := &Container{
		Config:      cfg,
		DB:          db,
		QueueClient: queueClient,
		Registry:    adminsite.NewDefaultRegistry(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.OrderItemRepo = repository.NewOrderItemRepository(db)
	c.StatusHistoryRepo = repository.NewOrderStatusHistoryRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.ShippingAddressRepo = repository.NewShippingAddressRepository(db)
	c.RefundRepo = repository.NewRefundRepository(db)
}

func (c *Container) initServices() error {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.SeedFromRegistry(c.Registry, authz.BuiltinRoleSeeds(c.Config.Admin.Role)); err != nil {
		logger.Errorw("provider_seed_authz_failed", "error", err)
		return err
	}

	c.OrderService = service.NewOrderService(
		c.DB,
		c.OrderRepo,
		c.OrderItemRepo,
		c.StatusHistoryRepo,
		c.ShippingAddressRepo,
		c.UserRepo,
		c.CategoryRepo,
		c.QueueClient,
	)
	c.PaymentService = service.NewPaymentService(c.DB, c.OrderRepo, c.PaymentRepo)
	c.RefundService = service.NewRefundService(c.DB, c.OrderRepo, c.RefundRepo)
	c.ShippingService = service.NewShippingService(c.DB, c.OrderRepo, c.ShippingAddressRepo)
	c.CatalogService = service.NewCatalogService(
		c.CategoryRepo,
		time.Duration(c.Config.Catalog.CacheTTLSeconds)*time.Second,
	)
	return nil
}

// Close 释放容器持有的外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
