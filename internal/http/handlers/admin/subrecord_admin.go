package admin

import (
	handlershared "github.com/order-ledger/internal/http/handlers/shared"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordPaymentRequest 记录支付请求
type RecordPaymentRequest struct {
	Method        string       `json:"method"`
	Amount        models.Money `json:"amount"`
	Status        string       `json:"status"`
	TransactionID *string      `json:"transaction_id"`
}

// UpdatePaymentRequest 更新支付请求
type UpdatePaymentRequest struct {
	Status        *string `json:"status"`
	TransactionID *string `json:"transaction_id"`
}

// ShippingAddressRequest 收货地址请求
type ShippingAddressRequest struct {
	FullName     string  `json:"full_name"`
	AddressLine1 string  `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
	PhoneNumber  string  `json:"phone_number"`
}

func (r ShippingAddressRequest) toInput() service.ShippingAddressInput {
	return service.ShippingAddressInput{
		FullName:     r.FullName,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		PhoneNumber:  r.PhoneNumber,
	}
}

// CreateRefundRequest 创建退款请求
type CreateRefundRequest struct {
	Amount        models.Money `json:"amount"`
	Reason        string       `json:"reason"`
	TransactionID *string      `json:"transaction_id"`
}

// UpdateRefundRequest 更新退款请求
type UpdateRefundRequest struct {
	Reason        *string `json:"reason"`
	Status        *string `json:"status"`
	TransactionID *string `json:"transaction_id"`
}

// AdminRecordPayment 为订单记录支付
func (h *Handler) AdminRecordPayment(c *gin.Context) {
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	payment, err := h.PaymentService.RecordPayment(c.Request.Context(), orderID, service.RecordPaymentInput{
		Method:        req.Method,
		Amount:        req.Amount,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, payment)
}

// AdminUpdatePayment 更新支付状态或流水号
func (h *Handler) AdminUpdatePayment(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	payment, err := h.PaymentService.UpdatePayment(c.Request.Context(), id, service.UpdatePaymentInput{
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, payment)
}

// AdminAttachShippingAddress 为订单写入收货地址（每单一个）
func (h *Handler) AdminAttachShippingAddress(c *gin.Context) {
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	address, err := h.ShippingService.AttachShippingAddress(c.Request.Context(), orderID, req.toInput())
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, address)
}

// AdminUpdateShippingAddress 更新收货地址
func (h *Handler) AdminUpdateShippingAddress(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	address, err := h.ShippingService.UpdateShippingAddress(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, address)
}

// AdminCreateRefund 为订单创建退款申请
func (h *Handler) AdminCreateRefund(c *gin.Context) {
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	refund, err := h.RefundService.CreateRefund(c.Request.Context(), orderID, service.CreateRefundInput{
		Amount:        req.Amount,
		Reason:        req.Reason,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, refund)
}

// AdminUpdateRefund 更新退款
func (h *Handler) AdminUpdateRefund(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	refund, err := h.RefundService.UpdateRefund(c.Request.Context(), id, service.UpdateRefundInput{
		Reason:        req.Reason,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondSubrecordError(c, err, "error.order_update_failed")
		return
	}
	response.Success(c, refund)
}
