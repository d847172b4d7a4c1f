package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/queue"
	"github.com/order-ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService 订单服务（订单保存与状态流水记账）
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	itemRepo    repository.OrderItemRepository
	historyRepo repository.OrderStatusHistoryRepository
	addressRepo repository.ShippingAddressRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CategoryRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, itemRepo repository.OrderItemRepository, historyRepo repository.OrderStatusHistoryRepository, addressRepo repository.ShippingAddressRepository, userRepo repository.UserRepository, catalogRepo repository.CategoryRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		historyRepo: historyRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		queueClient: queueClient,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	Status          string
	TotalAmount     models.Money
	Items           []OrderItemInput
	ShippingAddress *ShippingAddressInput
}

// OrderItemInput 订单项输入（价格为下单时快照）
type OrderItemInput struct {
	ProductVariantID uint
	Quantity         int
	Price            models.Money
}

// UpdateOrderInput 更新订单输入，nil 字段保持不变
type UpdateOrderInput struct {
	UserID      *uint
	Status      *string
	TotalAmount *models.Money
}

// SaveOrder 保存订单并在同一事务内追加状态流水
// ID 为 0 时创建订单，否则基于加锁读取的持久化状态更新
func (s *OrderService) SaveOrder(ctx context.Context, order *models.Order) (*models.Order, []models.OrderStatusHistory, error) {
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	if order.ID == 0 {
		return s.createOrder(ctx, order, nil, nil)
	}
	if err := s.ensureUser(order.UserID); err != nil {
		return nil, nil, err
	}
	incoming := *order
	return s.updateOrder(ctx, order.ID, func(current *models.Order) {
		current.UserID = incoming.UserID
		current.Status = incoming.Status
		current.TotalAmount = incoming.TotalAmount
	})
}

// CreateOrder 创建订单（可同时写入订单项与收货地址）
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, []models.OrderStatusHistory, error) {
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			Price:            item.Price,
		})
	}
	var address *models.ShippingAddress
	if input.ShippingAddress != nil {
		address = input.ShippingAddress.toModel()
	}
	order := &models.Order{
		UserID:      input.UserID,
		Status:      input.Status,
		TotalAmount: input.TotalAmount,
	}
	return s.createOrder(ctx, order, items, address)
}

// UpdateOrder 更新订单状态、金额或所属用户
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*models.Order, []models.OrderStatusHistory, error) {
	if input.UserID != nil {
		if err := s.ensureUser(*input.UserID); err != nil {
			return nil, nil, err
		}
	}
	return s.updateOrder(ctx, id, func(current *models.Order) {
		if input.UserID != nil {
			current.UserID = *input.UserID
		}
		if input.Status != nil {
			current.Status = *input.Status
		}
		if input.TotalAmount != nil {
			current.TotalAmount = *input.TotalAmount
		}
	})
}

// UpdateOrderStatus 更新订单状态
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, []models.OrderStatusHistory, error) {
	return s.UpdateOrder(ctx, id, UpdateOrderInput{Status: &status})
}

func (s *OrderService) createOrder(ctx context.Context, order *models.Order, items []models.OrderItem, address *models.ShippingAddress) (*models.Order, []models.OrderStatusHistory, error) {
	if strings.TrimSpace(order.Status) == "" {
		order.Status = constants.OrderStatusPending
	}
	status, err := normalizeOrderStatus(order.Status)
	if err != nil {
		return nil, nil, err
	}
	if err := validateAmount("total_amount", order.TotalAmount); err != nil {
		return nil, nil, err
	}
	if err := s.ensureUser(order.UserID); err != nil {
		return nil, nil, err
	}
	for i := range items {
		if err := s.normalizeOrderItem(&items[i]); err != nil {
			return nil, nil, err
		}
	}
	if address != nil {
		if err := normalizeShippingAddress(address); err != nil {
			return nil, nil, err
		}
	}

	now := time.Now()
	order.OrderNo = uuid.NewString()
	order.Status = status
	order.CreatedAt = now
	order.UpdatedAt = now

	var appended []models.OrderStatusHistory
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return fmt.Errorf("%w: %w", ErrOrderCreateFailed, err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.itemRepo.WithTx(tx).Create(items); err != nil {
			return fmt.Errorf("%w: %w", ErrOrderCreateFailed, err)
		}
		if address != nil {
			address.OrderID = order.ID
			if err := s.addressRepo.WithTx(tx).Create(address); err != nil {
				return fmt.Errorf("%w: %w", ErrOrderCreateFailed, err)
			}
		}
		// 落库后追加初始状态流水
		entries := PlanStatusHistory(order.ID, nil, order.Status, time.Now())
		if err := s.historyRepo.WithTx(tx).Append(entries); err != nil {
			return fmt.Errorf("%w: %w", ErrStatusHistoryAppendFailed, err)
		}
		appended = entries
		return nil
	})
	if err != nil {
		order.ID = 0
		order.OrderNo = ""
		return nil, nil, err
	}
	order.Items = items
	order.ShippingAddress = address
	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"status", order.Status,
		"items", len(items),
	)
	s.afterStatusAppended(order, appended)
	return order, appended, nil
}

// updateOrder 加锁读取最新持久化状态，应用变更后比较状态并追加流水
func (s *OrderService) updateOrder(ctx context.Context, id uint, mutate func(current *models.Order)) (*models.Order, []models.OrderStatusHistory, error) {
	var saved *models.Order
	var appended []models.OrderStatusHistory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		current, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if current == nil {
			return ErrOrderNotFound
		}
		previous := current.Status
		mutate(current)

		status, err := normalizeOrderStatus(current.Status)
		if err != nil {
			return err
		}
		current.Status = status
		if err := validateAmount("total_amount", current.TotalAmount); err != nil {
			return err
		}

		now := time.Now()
		entries := PlanStatusHistory(current.ID, &previous, current.Status, now)
		if err := s.historyRepo.WithTx(tx).Append(entries); err != nil {
			return fmt.Errorf("%w: %w", ErrStatusHistoryAppendFailed, err)
		}
		current.UpdatedAt = now
		if err := orderRepo.Update(current); err != nil {
			return fmt.Errorf("%w: %w", ErrOrderUpdateFailed, err)
		}
		saved = current
		appended = entries
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	s.afterStatusAppended(saved, appended)
	return saved, appended, nil
}

func (s *OrderService) afterStatusAppended(order *models.Order, appended []models.OrderStatusHistory) {
	if len(appended) == 0 {
		return
	}
	for _, entry := range appended {
		logger.Infow("order_status_history_appended",
			"order_id", order.ID,
			"history_id", entry.ID,
			"status", entry.Status,
		)
	}
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	payload := queue.OrderHistoryReconcilePayload{OrderID: order.ID, Status: order.Status}
	if err := s.queueClient.EnqueueOrderHistoryReconcile(payload); err != nil {
		logger.Warnw("order_enqueue_history_reconcile_failed",
			"order_id", order.ID,
			"status", order.Status,
			"error", err,
		)
	}
}

// AddOrderItem 为订单追加订单项
func (s *OrderService) AddOrderItem(ctx context.Context, orderID uint, input OrderItemInput) (*models.OrderItem, error) {
	item := models.OrderItem{
		OrderID:          orderID,
		ProductVariantID: input.ProductVariantID,
		Quantity:         input.Quantity,
		Price:            input.Price,
	}
	if err := s.normalizeOrderItem(&item); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	items := []models.OrderItem{item}
	if err := s.itemRepo.WithTx(s.db.WithContext(ctx)).Create(items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderUpdateFailed, err)
	}
	return &items[0], nil
}

// ListOrderItems 列出订单的订单项
func (s *OrderService) ListOrderItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.GetOrder(orderID); err != nil {
		return nil, err
	}
	return s.itemRepo.ListByOrder(orderID)
}

// DeleteOrder 删除订单及其全部子记录
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		current, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if current == nil {
			return ErrOrderNotFound
		}
		if err := orderRepo.Delete(id); err != nil {
			return fmt.Errorf("%w: %w", ErrOrderDeleteFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Infow("order_deleted", "order_id", id)
	return nil
}

// GetOrder 获取订单
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrderDetail 获取订单详情（含订单项、状态流水、支付、收货地址与退款）
func (s *OrderService) GetOrderDetail(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetDetail(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListStatusHistory 按时间顺序列出订单状态流水
func (s *OrderService) ListStatusHistory(orderID uint) ([]models.OrderStatusHistory, error) {
	if _, err := s.GetOrder(orderID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByOrder(orderID)
}

// ReconcileStatusHistory 校对订单最新流水与当前状态，不一致时补记一条
func (s *OrderService) ReconcileStatusHistory(ctx context.Context, orderID uint) (*models.OrderStatusHistory, error) {
	var repaired *models.OrderStatusHistory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.orderRepo.WithTx(tx).GetForUpdate(orderID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if current == nil {
			return ErrOrderNotFound
		}
		historyRepo := s.historyRepo.WithTx(tx)
		latest, err := historyRepo.Latest(current.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		if !needsStatusReconcile(latest, current.Status) {
			return nil
		}
		entries := PlanStatusHistory(current.ID, nil, current.Status, time.Now())
		if err := historyRepo.Append(entries); err != nil {
			return fmt.Errorf("%w: %w", ErrStatusHistoryAppendFailed, err)
		}
		repaired = &entries[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if repaired != nil {
		logger.Warnw("order_status_history_reconciled",
			"order_id", orderID,
			"history_id", repaired.ID,
			"status", repaired.Status,
		)
	}
	return repaired, nil
}

// ReconcileRecentlyUpdated 巡检指定时间后更新过的全部订单，batch 为每页条数，返回补记条数
func (s *OrderService) ReconcileRecentlyUpdated(ctx context.Context, since time.Time, batch int) (int, error) {
	repaired := 0
	var cursor uint
	for {
		ids, err := s.orderRepo.ListIDsUpdatedSince(since, cursor, batch)
		if err != nil {
			return repaired, fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return repaired, err
			}
			entry, err := s.ReconcileStatusHistory(ctx, id)
			if err != nil {
				logger.Warnw("order_status_history_reconcile_failed",
					"order_id", id,
					"error", err,
				)
				continue
			}
			if entry != nil {
				repaired++
			}
		}
		if batch <= 0 || len(ids) < batch {
			return repaired, nil
		}
		cursor = ids[len(ids)-1]
	}
}

// ListOrdersAdmin 后台订单列表
func (s *OrderService) ListOrdersAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(view, filter)
}

// ListOrderItemsAdmin 后台订单项列表
func (s *OrderService) ListOrderItemsAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.OrderItem, int64, error) {
	return s.itemRepo.ListAdmin(view, filter)
}

// ListStatusHistoryAdmin 后台状态流水列表
func (s *OrderService) ListStatusHistoryAdmin(view adminsite.ModelAdmin, filter repository.AdminListFilter) ([]models.OrderStatusHistory, int64, error) {
	return s.historyRepo.ListAdmin(view, filter)
}

func (s *OrderService) ensureUser(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: user", ErrFieldRequired)
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

// normalizeOrderItem 校验订单项；数量缺省为 1，价格取自输入快照
func (s *OrderService) normalizeOrderItem(item *models.OrderItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if err := validateQuantity(item.Quantity); err != nil {
		return err
	}
	if err := validateAmount("price", item.Price); err != nil {
		return err
	}
	if item.ProductVariantID == 0 {
		return fmt.Errorf("%w: product_variant", ErrFieldRequired)
	}
	variant, err := s.catalogRepo.GetVariantByID(item.ProductVariantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOrderFetchFailed, err)
	}
	if variant == nil {
		return ErrProductVariantNotFound
	}
	return nil
}
