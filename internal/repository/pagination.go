package repository

import "gorm.io/gorm"

// maxListPageSize 单页上限，HTTP 层之外的调用方同样受限
const maxListPageSize = 100

// paginate 按后台列表条件分页；PageSize 非正时不分页
func (f AdminListFilter) paginate(query *gorm.DB) *gorm.DB {
	if query == nil || f.PageSize <= 0 {
		return query
	}
	size := f.PageSize
	if size > maxListPageSize {
		size = maxListPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	return query.Limit(size).Offset((page - 1) * size)
}
