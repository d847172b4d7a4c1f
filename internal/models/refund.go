package models

import (
	"time"
)

// Refund 退款记录
type Refund struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                            // 主键
	OrderID       uint      `gorm:"index;not null" json:"order_id"`                                  // 订单ID
	Amount        Money     `gorm:"type:decimal(10,2);not null" json:"amount"`                       // 退款金额
	Reason        string    `gorm:"type:text;not null" json:"reason"`                                // 退款原因
	Status        string    `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // 退款状态
	TransactionID *string   `gorm:"type:varchar(100)" json:"transaction_id"`                         // 退款流水号
	RefundDate    time.Time `gorm:"index;not null" json:"refund_date"`                               // 退款申请时间（创建时写入）
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`                                         // 更新时间

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"` // 所属订单
}

// TableName 指定表名
func (Refund) TableName() string {
	return "refunds"
}
