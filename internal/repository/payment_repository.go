package repository

import (
	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository 支付记录数据访问接口
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	Update(payment *models.Payment) error
	ListByOrder(orderID uint) ([]models.Payment, error)
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Payment, int64, error)
	WithTx(tx *gorm.DB) PaymentRepository
}

// GormPaymentRepository GORM 实现
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓库
func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPaymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentRepository{db: tx}
}

// Create 创建支付记录
func (r *GormPaymentRepository) Create(payment *models.Payment) error {
	return r.db.Omit(clause.Associations).Create(payment).Error
}

// GetByID 根据 ID 获取支付记录
func (r *GormPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	return firstOrNil[models.Payment](r.db, id)
}

// Update 更新支付状态与流水号（payment_date 创建后不再变更）
func (r *GormPaymentRepository) Update(payment *models.Payment) error {
	return r.db.Model(&models.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"status":         payment.Status,
			"transaction_id": payment.TransactionID,
		}).Error
}

// ListByOrder 列出订单的支付记录
func (r *GormPaymentRepository) ListByOrder(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("payment_date ASC, id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListAdmin 后台支付记录列表
func (r *GormPaymentRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.Payment, int64, error) {
	return listAdmin[models.Payment](r.db, view, filter, "Order")
}
