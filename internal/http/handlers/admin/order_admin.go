package admin

import (
	"github.com/order-ledger/internal/adminsite"
	handlershared "github.com/order-ledger/internal/http/handlers/shared"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	ProductVariantID uint         `json:"product_variant_id" binding:"required"`
	Quantity         int          `json:"quantity"`
	Price            models.Money `json:"price"`
}

func (r OrderItemRequest) toInput() service.OrderItemInput {
	return service.OrderItemInput{
		ProductVariantID: r.ProductVariantID,
		Quantity:         r.Quantity,
		Price:            r.Price,
	}
}

// CreateOrderRequest 后台创建订单请求
type CreateOrderRequest struct {
	UserID          uint                    `json:"user_id"`
	Status          string                  `json:"status"`
	TotalAmount     models.Money            `json:"total_amount"`
	Items           []OrderItemRequest      `json:"items"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address"`
}

// UpdateOrderRequest 后台更新订单请求，缺省字段保持不变
type UpdateOrderRequest struct {
	UserID      *uint         `json:"user_id"`
	Status      *string       `json:"status"`
	TotalAmount *models.Money `json:"total_amount"`
}

// AdminOrderSaveResult 订单保存结果（含本次追加的状态流水）
type AdminOrderSaveResult struct {
	Order           *models.Order               `json:"order"`
	AppendedHistory []models.OrderStatusHistory `json:"appended_history"`
}

func newOrderSaveResult(order *models.Order, appended []models.OrderStatusHistory) AdminOrderSaveResult {
	if appended == nil {
		appended = []models.OrderStatusHistory{}
	}
	return AdminOrderSaveResult{Order: order, AppendedHistory: appended}
}

// AdminListOrders 后台订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	view, filter, ok := h.adminListContext(c, adminsite.EntityOrder)
	if !ok {
		return
	}
	orders, total, err := h.OrderService.ListOrdersAdmin(view, filter)
	if err != nil {
		respondListError(c, err)
		return
	}
	respondAdminPage(c, orders, total, filter)
}

// AdminCreateOrder 后台创建订单
func (h *Handler) AdminCreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input := service.CreateOrderInput{
		UserID:      req.UserID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		Items:       make([]service.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, item.toInput())
	}
	if req.ShippingAddress != nil {
		address := req.ShippingAddress.toInput()
		input.ShippingAddress = &address
	}

	order, appended, err := h.OrderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderError(c, err, "error.order_create_failed")
		return
	}
	response.Success(c, newOrderSaveResult(order, appended))
}

// AdminGetOrder 后台订单详情（含内联子表）
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetOrderDetail(id)
	if err != nil {
		respondOrderError(c, err, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// AdminUpdateOrder 后台更新订单
func (h *Handler) AdminUpdateOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, appended, err := h.OrderService.UpdateOrder(c.Request.Context(), id, service.UpdateOrderInput{
		UserID:      req.UserID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		respondOrderError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, newOrderSaveResult(order, appended))
}

// AdminDeleteOrder 后台删除订单（级联删除子记录）
func (h *Handler) AdminDeleteOrder(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.OrderService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderError(c, err, "error.order_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// AdminGetOrderStatusHistory 订单状态流水（按时间正序）
func (h *Handler) AdminGetOrderStatusHistory(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.OrderService.ListStatusHistory(id)
	if err != nil {
		respondOrderError(c, err, "error.order_fetch_failed")
		return
	}
	if rows == nil {
		rows = []models.OrderStatusHistory{}
	}
	response.Success(c, rows)
}

// AdminAddOrderItem 为订单追加订单项
func (h *Handler) AdminAddOrderItem(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.OrderService.AddOrderItem(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondOrderError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, item)
}
