package models

import (
	"time"
)

// Payment 支付记录
type Payment struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                            // 主键
	OrderID       uint      `gorm:"index;not null" json:"order_id"`                                  // 订单ID
	Method        string    `gorm:"type:varchar(20);not null" json:"method"`                         // 支付方式（online/cash_on_delivery）
	Amount        Money     `gorm:"type:decimal(10,2);not null" json:"amount"`                       // 支付金额
	Status        string    `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // 支付状态
	TransactionID *string   `gorm:"type:varchar(100)" json:"transaction_id"`                         // 第三方流水号
	PaymentDate   time.Time `gorm:"index;not null" json:"payment_date"`                              // 支付记录时间（创建时写入）

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"` // 所属订单
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
