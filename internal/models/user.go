package models

import (
	"time"
)

// User 用户表（账号体系由外部维护，这里只保留身份信息）
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                   // 主键
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"` // 用户名
	Email     string    `gorm:"type:varchar(254)" json:"email"`                         // 邮箱
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                             // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
