package repository

import (
	"errors"
	"time"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderID(orderID string) (*models.Order, error)
	GetForUpdate(id uint) (*models.Order, error)
	GetDetail(id uint) (*models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Order, int64, error)
	ListIDsUpdatedSince(since time.Time, afterID uint, limit int) ([]uint, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Omit(clause.Associations).Create(order).Error
}

// GetByID 根据主键获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	return firstOrNil[models.Order](r.db, id)
}

// GetByOrderID 根据对外订单编号获取订单
func (r *GormOrderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	return firstOrNil[models.Order](r.db.Where("order_id = ?", orderID))
}

// GetForUpdate 在主库上加行锁读取订单最新状态（需在事务内调用）
func (r *GormOrderRepository) GetForUpdate(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Clauses(dbresolver.Write).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetDetail 获取订单详情（含全部内联子表）
func (r *GormOrderRepository) GetDetail(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Clauses(dbresolver.Write).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.ProductVariant").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("changed_at ASC, id ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payment_date ASC, id ASC") }).
		Preload("ShippingAddress").
		Preload("Refunds", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Update 更新订单可变字段（order_id 与 created_at 不会被覆盖）
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"user_id":      order.UserID,
			"status":       order.Status,
			"total_amount": order.TotalAmount,
			"updated_at":   order.UpdatedAt,
		}).Error
}

// Delete 删除订单及其全部子记录
func (r *GormOrderRepository) Delete(id uint) error {
	children := []interface{}{
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Payment{},
		&models.ShippingAddress{},
		&models.Refund{},
	}
	for _, child := range children {
		if err := r.db.Where("order_id = ?", id).Delete(child).Error; err != nil {
			return err
		}
	}
	return r.db.Delete(&models.Order{}, id).Error
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Order, int64, error) {
	return listAdmin[models.Order](r.db, view, filter, "User")
}

// ListIDsUpdatedSince 按主键游标分页列出指定时间后更新过的订单（用于状态流水巡检）
func (r *GormOrderRepository) ListIDsUpdatedSince(since time.Time, afterID uint, limit int) ([]uint, error) {
	query := r.db.Model(&models.Order{}).
		Where("updated_at >= ? AND id > ?", since, afterID).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
