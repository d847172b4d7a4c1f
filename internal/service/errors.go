package service

import "errors"

var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderFetchFailed          = errors.New("order fetch failed")
	ErrOrderCreateFailed         = errors.New("order create failed")
	ErrOrderUpdateFailed         = errors.New("order update failed")
	ErrOrderDeleteFailed         = errors.New("order delete failed")
	ErrOrderStatusInvalid        = errors.New("order status invalid")
	ErrStatusHistoryAppendFailed = errors.New("order status history append failed")
	ErrUserNotFound              = errors.New("user not found")
	ErrProductVariantNotFound    = errors.New("product variant not found")
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrPaymentMethodInvalid      = errors.New("payment method invalid")
	ErrPaymentStatusInvalid      = errors.New("payment status invalid")
	ErrRefundNotFound            = errors.New("refund not found")
	ErrRefundStatusInvalid       = errors.New("refund status invalid")
	ErrShippingAddressNotFound   = errors.New("shipping address not found")
	ErrShippingAddressExists     = errors.New("shipping address already exists")
	ErrInvalidAmount             = errors.New("amount invalid")
	ErrInvalidQuantity           = errors.New("quantity invalid")
	ErrFieldRequired             = errors.New("field required")
	ErrFieldTooLong              = errors.New("field too long")
	ErrCatalogUnavailable        = errors.New("catalog unavailable")
)
