package models

import "time"

// OrderStatusHistory 订单状态变更流水（只追加）
type OrderStatusHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`          // 订单ID
	Status    string    `gorm:"type:varchar(20);not null" json:"status"` // 变更后的状态
	ChangedAt time.Time `gorm:"index;not null" json:"changed_at"`        // 变更时间

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"` // 所属订单
}

// TableName 指定表名
func (OrderStatusHistory) TableName() string {
	return "order_status_histories"
}
