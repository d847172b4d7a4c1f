package public

import (
	"github.com/order-ledger/internal/provider"
	"github.com/order-ledger/internal/service"
)

// Handler 公开接口处理器入口
// 说明：该处理器仅用于目录占位接口，不依赖订单核心。
type Handler struct {
	*provider.Container
	catalog service.CatalogReader
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	h := &Handler{Container: c}
	if c != nil && c.CatalogService != nil {
		h.catalog = c.CatalogService
	}
	return h
}

// NewWithCatalog 使用指定目录读取器创建处理器
func NewWithCatalog(reader service.CatalogReader) *Handler {
	return &Handler{catalog: reader}
}
