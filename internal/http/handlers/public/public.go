package public

import (
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCategories 返回全部分类（GET/POST 行为一致，不做筛选）
func (h *Handler) ListCategories(c *gin.Context) {
	if h.catalog == nil {
		respondError(c, response.CodeInternal, "error.catalog_unavailable", nil)
		return
	}
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_unavailable", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	response.Success(c, categories)
}
