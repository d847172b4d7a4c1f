package adminsite

import (
	"fmt"
	"strings"
)

// Entity 后台实体类型
type Entity string

const (
	EntityOrder              Entity = "order"
	EntityOrderItem          Entity = "order_item"
	EntityOrderStatusHistory Entity = "order_status_history"
	EntityPayment            Entity = "payment"
	EntityShippingAddress    Entity = "shipping_address"
	EntityRefund             Entity = "refund"
)

// FilterKind 列表筛选类型
type FilterKind string

const (
	FilterExact FilterKind = "exact" // 等值匹配
	FilterDate  FilterKind = "date"  // 按自然日匹配（YYYY-MM-DD）
	FilterID    FilterKind = "id"    // 关联主键匹配
)

// InlineStyle 内联展示样式
type InlineStyle string

const (
	InlineTabular InlineStyle = "tabular"
	InlineStacked InlineStyle = "stacked"
)

// ListFilter 列表筛选项
type ListFilter struct {
	Name   string     `json:"name"`
	Column string     `json:"-"`
	Kind   FilterKind `json:"kind"`
	Joins  []string   `json:"-"`
}

// SearchField 可搜索字段
type SearchField struct {
	Name   string   `json:"name"`
	Column string   `json:"-"`
	Joins  []string `json:"-"`
}

// OrderingField 默认排序字段
type OrderingField struct {
	Name   string   `json:"name"`
	Column string   `json:"-"`
	Desc   bool     `json:"desc"`
	Joins  []string `json:"-"`
}

// Fieldset 编辑页字段分组
type Fieldset struct {
	Title  string   `json:"title"`
	Fields []string `json:"fields"`
}

// Inline 详情页内联子表
type Inline struct {
	Entity         Entity      `json:"entity"`
	Style          InlineStyle `json:"style"`
	Extra          int         `json:"extra"`
	ReadonlyFields []string    `json:"readonly_fields"`
}

// Permissions 实体级权限开关
type Permissions struct {
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Change bool `json:"change"`
	Delete bool `json:"delete"`
}

// ModelAdmin 单个实体的后台展示配置
type ModelAdmin struct {
	Entity         Entity          `json:"entity"`
	Path           string          `json:"path"`
	Table          string          `json:"-"`
	Label          string          `json:"label"`
	ListDisplay    []string        `json:"list_display"`
	ListFilter     []ListFilter    `json:"list_filter"`
	SearchFields   []SearchField   `json:"search_fields"`
	ReadonlyFields []string        `json:"readonly_fields"`
	Ordering       []OrderingField `json:"ordering"`
	Fieldsets      []Fieldset      `json:"fieldsets,omitempty"`
	Inlines        []Inline        `json:"inlines,omitempty"`
	Permissions    Permissions     `json:"permissions"`
}

// Allows 判断实体是否允许某个后台动作（view/add/change/delete）
func (m ModelAdmin) Allows(action string) bool {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "view":
		return m.Permissions.View
	case "add":
		return m.Permissions.Add
	case "change":
		return m.Permissions.Change
	case "delete":
		return m.Permissions.Delete
	default:
		return false
	}
}

// AllowedActions 返回允许的后台动作列表
func (m ModelAdmin) AllowedActions() []string {
	actions := make([]string, 0, 4)
	for _, action := range []string{"view", "add", "change", "delete"} {
		if m.Allows(action) {
			actions = append(actions, action)
		}
	}
	return actions
}

// Filter 按名称查找筛选项
func (m ModelAdmin) Filter(name string) (ListFilter, bool) {
	for _, filter := range m.ListFilter {
		if filter.Name == name {
			return filter, true
		}
	}
	return ListFilter{}, false
}

// relationFields 列表中展示为关联对象的字段，不能直接排序
var relationFields = map[string]struct{}{
	"order":           {},
	"user":            {},
	"product_variant": {},
}

// SortableColumn 返回列表字段对应的可排序列
func (m ModelAdmin) SortableColumn(field string) (string, bool) {
	if _, isRelation := relationFields[field]; isRelation {
		return "", false
	}
	for _, display := range m.ListDisplay {
		if display == field {
			return m.Table + "." + field, true
		}
	}
	return "", false
}

// IsReadonly 判断字段是否只读
func (m ModelAdmin) IsReadonly(field string) bool {
	for _, readonly := range m.ReadonlyFields {
		if readonly == field {
			return true
		}
	}
	return false
}

// Registry 实体到后台配置的显式映射
type Registry struct {
	views map[Entity]ModelAdmin
	order []Entity
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{views: make(map[Entity]ModelAdmin)}
}

// Register 注册实体配置，同一实体只能注册一次
func (r *Registry) Register(view ModelAdmin) error {
	if view.Entity == "" {
		return fmt.Errorf("admin view entity is empty")
	}
	if strings.TrimSpace(view.Table) == "" {
		return fmt.Errorf("admin view %s table is empty", view.Entity)
	}
	if _, exists := r.views[view.Entity]; exists {
		return fmt.Errorf("admin view %s already registered", view.Entity)
	}
	r.views[view.Entity] = view
	r.order = append(r.order, view.Entity)
	return nil
}

// Get 获取实体配置
func (r *Registry) Get(entity Entity) (ModelAdmin, bool) {
	if r == nil {
		return ModelAdmin{}, false
	}
	view, ok := r.views[entity]
	return view, ok
}

// MustGet 获取实体配置，不存在时 panic（仅用于启动期装配）
func (r *Registry) MustGet(entity Entity) ModelAdmin {
	view, ok := r.Get(entity)
	if !ok {
		panic(fmt.Sprintf("admin view %s not registered", entity))
	}
	return view
}

// ByPath 按路由路径查找实体配置
func (r *Registry) ByPath(path string) (ModelAdmin, bool) {
	if r == nil {
		return ModelAdmin{}, false
	}
	for _, entity := range r.order {
		if view := r.views[entity]; view.Path == path {
			return view, true
		}
	}
	return ModelAdmin{}, false
}

// Views 按注册顺序返回全部配置
func (r *Registry) Views() []ModelAdmin {
	if r == nil {
		return nil
	}
	views := make([]ModelAdmin, 0, len(r.order))
	for _, entity := range r.order {
		views = append(views, r.views[entity])
	}
	return views
}
