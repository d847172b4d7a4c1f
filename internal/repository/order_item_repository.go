package repository

import (
	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderItemRepository 订单项数据访问接口
type OrderItemRepository interface {
	Create(items []models.OrderItem) error
	ListByOrder(orderID uint) ([]models.OrderItem, error)
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.OrderItem, int64, error)
	WithTx(tx *gorm.DB) OrderItemRepository
}

// GormOrderItemRepository GORM 实现
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建订单项仓库
func NewOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	if tx == nil {
		return r
	}
	return &GormOrderItemRepository{db: tx}
}

// Create 批量创建订单项
func (r *GormOrderItemRepository) Create(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&items).Error
}

// ListByOrder 列出订单的订单项
func (r *GormOrderItemRepository) ListByOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Preload("ProductVariant").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAdmin 后台订单项列表
func (r *GormOrderItemRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.OrderItem, int64, error) {
	return listAdmin[models.OrderItem](r.db, view, filter, "Order", "ProductVariant")
}
