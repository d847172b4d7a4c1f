package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrUnknownListFilter 后台列表使用了未注册的筛选项
	ErrUnknownListFilter = errors.New("unknown list filter")
	// ErrInvalidListFilterValue 筛选值格式错误
	ErrInvalidListFilterValue = errors.New("invalid list filter value")
	// ErrUnknownListOrdering 后台列表使用了不可排序的字段
	ErrUnknownListOrdering = errors.New("unknown list ordering")
)

// AdminListFilter 后台列表查询条件（字段含义由 adminsite 配置解释）
type AdminListFilter struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
	Ordering string // 形如 "status" 或 "-total_amount"，为空时使用默认排序
}

// firstOrNil 读取单条记录，不存在时返回 nil, nil
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	if err := query.First(&row, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
