package admin

import (
	"github.com/order-ledger/internal/adminsite"
	handlershared "github.com/order-ledger/internal/http/handlers/shared"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminGetRegistry 返回后台实体展示配置
func (h *Handler) AdminGetRegistry(c *gin.Context) {
	response.Success(c, h.Registry.Views())
}

// adminListContext 解析实体配置与列表查询参数
func (h *Handler) adminListContext(c *gin.Context, entity adminsite.Entity) (adminsite.ModelAdmin, repository.AdminListFilter, bool) {
	view, ok := h.Registry.Get(entity)
	if !ok {
		respondError(c, response.CodeNotFound, "error.admin_view_not_found", nil)
		return adminsite.ModelAdmin{}, repository.AdminListFilter{}, false
	}
	return view, handlershared.ParseAdminListFilter(c, view), true
}

func respondAdminPage[T any](c *gin.Context, items []T, total int64, filter repository.AdminListFilter) {
	if items == nil {
		items = []T{}
	}
	response.SuccessWithPage(c, items, handlershared.BuildPagination(filter, total))
}

// AdminListOrderItems 后台订单项列表
func (h *Handler) AdminListOrderItems(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityOrderItem)
	if !ok {
		return
	}
	items, total, err := h.OrderService.ListOrderItemsAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, items, total, filter)
}

// AdminListStatusHistory 后台状态流水列表
func (h *Handler) AdminListStatusHistory(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityOrderStatusHistory)
	if !ok {
		return
	}
	rows, total, err := h.OrderService.ListStatusHistoryAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, rows, total, filter)
}

// AdminListPayments 后台支付记录列表
func (h *Handler) AdminListPayments(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityPayment)
	if !ok {
		return
	}
	payments, total, err := h.PaymentService.ListPaymentsAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, payments, total, filter)
}

// AdminListShippingAddresses 后台收货地址列表
func (h *Handler) AdminListShippingAddresses(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityShippingAddress)
	if !ok {
		return
	}
	addresses, total, err := h.ShippingService.ListShippingAddressesAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, addresses, total, filter)
}

// AdminListRefunds 后台退款列表
func (h *Handler) AdminListRefunds(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityRefund)
	if !ok {
		return
	}
	refunds, total, err := h.RefundService.ListRefundsAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, refunds, total, filter)
}

// AdminRejectStatusHistoryWrite 状态流水只读，写操作一律拒绝
func (h *Handler) AdminRejectStatusHistoryWrite(c *gin.Context) {
	requestLog(c).Warnw("admin_status_history_write_rejected",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	respondError(c, response.CodeForbidden, "error.status_history_readonly", nil)
}
