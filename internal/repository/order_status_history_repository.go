package repository

import (
	"errors"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// OrderStatusHistoryRepository 订单状态流水数据访问接口（只追加）
type OrderStatusHistoryRepository interface {
	Append(entries []models.OrderStatusHistory) error
	ListByOrder(orderID uint) ([]models.OrderStatusHistory, error)
	Latest(orderID uint) (*models.OrderStatusHistory, error)
	CountByOrder(orderID uint) (int64, error)
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.OrderStatusHistory, int64, error)
	WithTx(tx *gorm.DB) OrderStatusHistoryRepository
}

// GormOrderStatusHistoryRepository GORM 实现
type GormOrderStatusHistoryRepository struct {
	db *gorm.DB
}

// NewOrderStatusHistoryRepository 创建状态流水仓库
func NewOrderStatusHistoryRepository(db *gorm.DB) *GormOrderStatusHistoryRepository {
	return &GormOrderStatusHistoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderStatusHistoryRepository) WithTx(tx *gorm.DB) OrderStatusHistoryRepository {
	if tx == nil {
		return r
	}
	return &GormOrderStatusHistoryRepository{db: tx}
}

// Append 追加状态流水
func (r *GormOrderStatusHistoryRepository) Append(entries []models.OrderStatusHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&entries).Error
}

// ListByOrder 按时间顺序列出订单状态流水
func (r *GormOrderStatusHistoryRepository) ListByOrder(orderID uint) ([]models.OrderStatusHistory, error) {
	var entries []models.OrderStatusHistory
	if err := r.db.Clauses(dbresolver.Write).
		Where("order_id = ?", orderID).
		Order("changed_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Latest 获取订单最新一条状态流水
func (r *GormOrderStatusHistoryRepository) Latest(orderID uint) (*models.OrderStatusHistory, error) {
	var entry models.OrderStatusHistory
	if err := r.db.Clauses(dbresolver.Write).
		Where("order_id = ?", orderID).
		Order("changed_at DESC, id DESC").
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// CountByOrder 统计订单状态流水条数
func (r *GormOrderStatusHistoryRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderStatusHistory{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListAdmin 后台状态流水列表
func (r *GormOrderStatusHistoryRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.OrderStatusHistory, int64, error) {
	return listAdmin[models.OrderStatusHistory](r.db, view, filter, "Order")
}
