package repository

import (
	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RefundRepository 退款记录数据访问接口
type RefundRepository interface {
	Create(refund *models.Refund) error
	GetByID(id uint) (*models.Refund, error)
	Update(refund *models.Refund) error
	ListByOrder(orderID uint) ([]models.Refund, error)
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Refund, int64, error)
	WithTx(tx *gorm.DB) RefundRepository
}

// GormRefundRepository GORM 实现
type GormRefundRepository struct {
	db *gorm.DB
}

// NewRefundRepository 创建退款仓库
func NewRefundRepository(db *gorm.DB) *GormRefundRepository {
	return &GormRefundRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRefundRepository) WithTx(tx *gorm.DB) RefundRepository {
	if tx == nil {
		return r
	}
	return &GormRefundRepository{db: tx}
}

// Create 创建退款记录
func (r *GormRefundRepository) Create(refund *models.Refund) error {
	return r.db.Omit(clause.Associations).Create(refund).Error
}

// GetByID 根据 ID 获取退款记录
func (r *GormRefundRepository) GetByID(id uint) (*models.Refund, error) {
	return firstOrNil[models.Refund](r.db, id)
}

// Update 更新退款状态、原因与流水号（refund_date 创建后不再变更）
func (r *GormRefundRepository) Update(refund *models.Refund) error {
	return r.db.Model(&models.Refund{}).
		Where("id = ?", refund.ID).
		Updates(map[string]interface{}{
			"reason":         refund.Reason,
			"status":         refund.Status,
			"transaction_id": refund.TransactionID,
			"updated_at":     refund.UpdatedAt,
		}).Error
}

// ListByOrder 列出订单的退款记录
func (r *GormRefundRepository) ListByOrder(orderID uint) ([]models.Refund, error) {
	var refunds []models.Refund
	if err := r.db.Where("order_id = ?", orderID).Order("created_at ASC, id ASC").Find(&refunds).Error; err != nil {
		return nil, err
	}
	return refunds, nil
}

// ListAdmin 后台退款记录列表
func (r *GormRefundRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Refund, int64, error) {
	return listAdmin[models.Refund](r.db, view, filter, "Order")
}
