package models

// ShippingAddress 收货地址（与订单一对一）
type ShippingAddress struct {
	ID           uint    `gorm:"primarykey" json:"id"`                                                   // 主键
	OrderID      uint    `gorm:"uniqueIndex;not null" json:"order_id"`                                   // 订单ID
	FullName     string  `gorm:"type:varchar(255);not null" json:"full_name"`                            // 收件人
	AddressLine1 string  `gorm:"column:address_line_1;type:varchar(255);not null" json:"address_line_1"` // 地址行 1
	AddressLine2 *string `gorm:"column:address_line_2;type:varchar(255)" json:"address_line_2"`          // 地址行 2
	City         string  `gorm:"type:varchar(100);index;not null" json:"city"`                           // 城市
	State        string  `gorm:"type:varchar(100);index;not null" json:"state"`                          // 省/州
	PostalCode   string  `gorm:"type:varchar(20);index;not null" json:"postal_code"`                     // 邮编
	Country      string  `gorm:"type:varchar(100);index;not null" json:"country"`                        // 国家
	PhoneNumber  string  `gorm:"type:varchar(20);not null" json:"phone_number"`                          // 联系电话

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"` // 所属订单
}

// TableName 指定表名
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
