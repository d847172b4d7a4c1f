package admin

import (
	"errors"

	handlershared "github.com/order-ledger/internal/http/handlers/shared"
	"github.com/order-ledger/internal/http/response"
	"github.com/order-ledger/internal/repository"
	"github.com/order-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			requestLog(c).Debugw("admin_request_rejected", "key", rule.key, "error", err)
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var validationErrorRules = []mappedHandlerError{
	{target: service.ErrFieldRequired, code: response.CodeBadRequest, key: "error.field_required"},
	{target: service.ErrFieldTooLong, code: response.CodeBadRequest, key: "error.field_too_long"},
	{target: service.ErrInvalidAmount, code: response.CodeBadRequest, key: "error.amount_invalid"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
}

var orderErrorRules = append([]mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrUserNotFound, code: response.CodeBadRequest, key: "error.user_not_found"},
	{target: service.ErrProductVariantNotFound, code: response.CodeBadRequest, key: "error.product_variant_not_found"},
	{target: service.ErrShippingAddressExists, code: response.CodeConflict, key: "error.shipping_address_exists"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	{target: service.ErrPaymentStatusInvalid, code: response.CodeBadRequest, key: "error.payment_status_invalid"},
	{target: service.ErrRefundStatusInvalid, code: response.CodeBadRequest, key: "error.refund_status_invalid"},
	{target: service.ErrStatusHistoryAppendFailed, code: response.CodeInternal, key: "error.status_history_append_failed"},
}, validationErrorRules...)

var subrecordErrorRules = append([]mappedHandlerError{
	{target: service.ErrPaymentNotFound, code: response.CodeNotFound, key: "error.payment_not_found"},
	{target: service.ErrRefundNotFound, code: response.CodeNotFound, key: "error.refund_not_found"},
	{target: service.ErrShippingAddressNotFound, code: response.CodeNotFound, key: "error.shipping_address_not_found"},
}, orderErrorRules...)

var listErrorRules = []mappedHandlerError{
	{target: repository.ErrUnknownListFilter, code: response.CodeBadRequest, key: "error.list_filter_invalid"},
	{target: repository.ErrInvalidListFilterValue, code: response.CodeBadRequest, key: "error.list_filter_invalid"},
	{target: repository.ErrUnknownListOrdering, code: response.CodeBadRequest, key: "error.list_filter_invalid"},
}

func respondOrderError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, fallbackKey)
}

func respondSubrecordError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, subrecordErrorRules, response.CodeInternal, fallbackKey)
}

func respondListError(c *gin.Context, err error) {
	respondWithMappedError(c, err, listErrorRules, response.CodeInternal, "error.order_fetch_failed")
}
