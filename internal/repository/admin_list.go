package repository

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/order-ledger/internal/adminsite"

	"gorm.io/gorm"
)

const filterDateLayout = "2006-01-02"

// joinSet 按首次出现顺序去重 JOIN 子句
type joinSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *joinSet) add(joins ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, join := range joins {
		if _, ok := s.seen[join]; ok {
			continue
		}
		s.seen[join] = struct{}{}
		s.items = append(s.items, join)
	}
}

func (s *joinSet) apply(query *gorm.DB) *gorm.DB {
	for _, join := range s.items {
		query = query.Joins(join)
	}
	return query
}

// listAdmin 按后台配置执行列表查询：搜索、筛选、排序与分页
func listAdmin[T any](db *gorm.DB, view adminsite.ModelAdmin, filter AdminListFilter, preloads ...string) ([]T, int64, error) {
	var joins joinSet
	conditions := make([]func(*gorm.DB) *gorm.DB, 0, len(filter.Filters)+1)

	if search := strings.TrimSpace(filter.Search); search != "" && len(view.SearchFields) > 0 {
		columns := make([]string, 0, len(view.SearchFields))
		for _, field := range view.SearchFields {
			joins.add(field.Joins...)
			columns = append(columns, field.Column)
		}
		condition, args := containsCondition(dialectName(db), columns, search)
		conditions = append(conditions, func(query *gorm.DB) *gorm.DB {
			return query.Where("("+condition+")", args...)
		})
	}

	// 按名称排序，保证生成的 SQL 稳定
	names := make([]string, 0, len(filter.Filters))
	for name := range filter.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spec, ok := view.Filter(name)
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownListFilter, name)
		}
		condition, err := buildFilterCondition(spec, filter.Filters[name])
		if err != nil {
			return nil, 0, err
		}
		joins.add(spec.Joins...)
		conditions = append(conditions, condition)
	}

	orderings, err := resolveOrdering(view, filter.Ordering)
	if err != nil {
		return nil, 0, err
	}
	for _, ordering := range orderings {
		joins.add(ordering.Joins...)
	}

	var model T
	query := joins.apply(db.Model(&model))
	for _, condition := range conditions {
		query = condition(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Select(view.Table + ".*")
	for _, ordering := range orderings {
		direction := "ASC"
		if ordering.Desc {
			direction = "DESC"
		}
		query = query.Order(ordering.Column + " " + direction)
	}
	query = query.Order(view.Table + ".id DESC")
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	query = filter.paginate(query)

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func buildFilterCondition(spec adminsite.ListFilter, raw string) (func(*gorm.DB) *gorm.DB, error) {
	value := strings.TrimSpace(raw)
	switch spec.Kind {
	case adminsite.FilterDate:
		day, err := time.ParseInLocation(filterDateLayout, value, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidListFilterValue, spec.Name)
		}
		next := day.AddDate(0, 0, 1)
		return func(query *gorm.DB) *gorm.DB {
			return query.Where(spec.Column+" >= ? AND "+spec.Column+" < ?", day, next)
		}, nil
	case adminsite.FilterID:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidListFilterValue, spec.Name)
		}
		return func(query *gorm.DB) *gorm.DB {
			return query.Where(spec.Column+" = ?", uint(id))
		}, nil
	default:
		return func(query *gorm.DB) *gorm.DB {
			return query.Where(spec.Column+" = ?", value)
		}, nil
	}
}

// resolveOrdering 解析排序参数，未指定时使用配置的默认排序
func resolveOrdering(view adminsite.ModelAdmin, raw string) ([]adminsite.OrderingField, error) {
	field := strings.TrimSpace(raw)
	if field == "" {
		return view.Ordering, nil
	}
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")
	column, ok := view.SortableColumn(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownListOrdering, field)
	}
	return []adminsite.OrderingField{{Name: field, Column: column, Desc: desc}}, nil
}
