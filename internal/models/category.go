package models

import (
	"time"
)

// Category 商品分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"` // 唯一标识
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`             // 名称
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// ProductVariant 商品规格表
type ProductVariant struct {
	ID         uint      `gorm:"primarykey" json:"id"`                             // 主键
	CategoryID uint      `gorm:"index;not null" json:"category_id"`                // 分类ID
	SKU        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"` // SKU 编码
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`           // 展示名称
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                          // 创建时间

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"` // 所属分类
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
