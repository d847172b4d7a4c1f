package repository

import (
	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShippingAddressRepository 收货地址数据访问接口
type ShippingAddressRepository interface {
	Create(address *models.ShippingAddress) error
	GetByID(id uint) (*models.ShippingAddress, error)
	GetByOrder(orderID uint) (*models.ShippingAddress, error)
	Update(address *models.ShippingAddress) error
	ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.ShippingAddress, int64, error)
	WithTx(tx *gorm.DB) ShippingAddressRepository
}

// GormShippingAddressRepository GORM 实现
type GormShippingAddressRepository struct {
	db *gorm.DB
}

// NewShippingAddressRepository 创建收货地址仓库
func NewShippingAddressRepository(db *gorm.DB) *GormShippingAddressRepository {
	return &GormShippingAddressRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShippingAddressRepository) WithTx(tx *gorm.DB) ShippingAddressRepository {
	if tx == nil {
		return r
	}
	return &GormShippingAddressRepository{db: tx}
}

// Create 创建收货地址，同一订单重复创建会触发唯一约束错误
func (r *GormShippingAddressRepository) Create(address *models.ShippingAddress) error {
	return r.db.Omit(clause.Associations).Create(address).Error
}

// GetByID 根据 ID 获取收货地址
func (r *GormShippingAddressRepository) GetByID(id uint) (*models.ShippingAddress, error) {
	return firstOrNil[models.ShippingAddress](r.db, id)
}

// GetByOrder 获取订单的收货地址
func (r *GormShippingAddressRepository) GetByOrder(orderID uint) (*models.ShippingAddress, error) {
	return firstOrNil[models.ShippingAddress](r.db.Where("order_id = ?", orderID))
}

// Update 更新收货地址字段（order_id 不可变）
func (r *GormShippingAddressRepository) Update(address *models.ShippingAddress) error {
	return r.db.Model(&models.ShippingAddress{}).
		Where("id = ?", address.ID).
		Updates(map[string]interface{}{
			"full_name":      address.FullName,
			"address_line_1": address.AddressLine1,
			"address_line_2": address.AddressLine2,
			"city":           address.City,
			"state":          address.State,
			"postal_code":    address.PostalCode,
			"country":        address.Country,
			"phone_number":   address.PhoneNumber,
		}).Error
}

// ListAdmin 后台收货地址列表
func (r *GormShippingAddressRepository) ListAdmin(view adminsite.ModelAdmin, filter AdminListFilter) ([]models.ShippingAddress, int64, error) {
	return listAdmin[models.ShippingAddress](r.db, view, filter, "Order")
}
