package shared

import (
	"strings"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/repository"

	"github.com/gin-gonic/gin"
)

// ParseAdminListFilter 按后台配置解析列表查询参数
// 只收集配置中声明过的筛选项，其余查询参数忽略
func ParseAdminListFilter(c *gin.Context, view adminsite.ModelAdmin) repository.AdminListFilter {
	page, pageSize := NormalizePagination(QueryInt(c, "page", 1), QueryInt(c, "page_size", defaultAdminPageSize))

	search := strings.TrimSpace(c.Query("q"))
	if search == "" {
		search = strings.TrimSpace(c.Query("search"))
	}

	filters := make(map[string]string, len(view.ListFilter))
	for _, spec := range view.ListFilter {
		if value, ok := c.GetQuery(spec.Name); ok && strings.TrimSpace(value) != "" {
			filters[spec.Name] = strings.TrimSpace(value)
		}
	}

	return repository.AdminListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		Filters:  filters,
		Ordering: strings.TrimSpace(c.Query("ordering")),
	}
}

// BuildPagination 计算分页信息
func BuildPagination(filter repository.AdminListFilter, total int64) response.Pagination {
	return response.NewPagination(filter.Page, filter.PageSize, total)
}

const (
	defaultAdminPageSize = 20
	maxAdminPageSize     = 100
)

// NormalizePagination 归一化后台列表分页参数
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = defaultAdminPageSize
	case pageSize > maxAdminPageSize:
		pageSize = maxAdminPageSize
	}
	return page, pageSize
}
