package models

import (
	"time"
)

// Order 订单表
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                            // 主键
	OrderNo     string    `gorm:"column:order_id;type:varchar(36);uniqueIndex;not null" json:"order_id"` // 订单公开编号（UUID v4，创建后不可变）
	UserID      uint      `gorm:"index;not null" json:"user_id"`                                   // 所属用户ID
	Status      string    `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // 订单状态
	TotalAmount Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`       // 订单总额
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`                                         // 更新时间

	// 关联
	User            *User                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`              // 所属用户
	Items           []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`            // 订单项
	StatusHistory   []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`   // 状态历史
	Payments        []Payment            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`         // 支付记录
	ShippingAddress *ShippingAddress     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping_address,omitempty"` // 收货地址
	Refunds         []Refund             `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"refunds,omitempty"`          // 退款记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
