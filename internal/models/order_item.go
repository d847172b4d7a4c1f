package models

// OrderItem 订单项表
type OrderItem struct {
	ID               uint  `gorm:"primarykey" json:"id"`                               // 主键
	OrderID          uint  `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductVariantID uint  `gorm:"index;not null" json:"product_variant_id"`           // 商品规格ID
	Quantity         int   `gorm:"not null;default:1" json:"quantity"`                 // 数量
	Price            Money `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 下单时单价快照

	Order          *Order          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"`                    // 所属订单
	ProductVariant *ProductVariant `gorm:"foreignKey:ProductVariantID;constraint:OnDelete:CASCADE" json:"product_variant,omitempty"` // 商品规格
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
