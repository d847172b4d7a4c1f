package constants

import "strings"

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付方式常量
const (
	PaymentMethodOnline         = "online"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// 支付状态常量
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// 退款状态常量
const (
	RefundStatusPending   = "pending"
	RefundStatusApproved  = "approved"
	RefundStatusRejected  = "rejected"
	RefundStatusProcessed = "processed"
)

// 字段长度上限
const (
	MaxTransactionIDLength = 100
	MaxFullNameLength      = 255
	MaxAddressLineLength   = 255
	MaxCityLength          = 100
	MaxStateLength         = 100
	MaxPostalCodeLength    = 20
	MaxCountryLength       = 100
	MaxPhoneNumberLength   = 20
)

// 队列任务类型
const (
	TaskOrderHistoryReconcile = "order:history_reconcile"
)

// 缓存键
const (
	CacheKeyCatalogCategories = "catalog:categories"
)

// 后台权限动作
const (
	AdminActionView   = "view"
	AdminActionAdd    = "add"
	AdminActionChange = "change"
	AdminActionDelete = "delete"
)

// 默认后台角色
const DefaultAdminRole = "staff"

var (
	orderStatuses   = []string{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}
	paymentMethods  = []string{PaymentMethodOnline, PaymentMethodCashOnDelivery}
	paymentStatuses = []string{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed}
	refundStatuses  = []string{RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusProcessed}
)

// OrderStatuses 返回全部订单状态（按生命周期顺序）
func OrderStatuses() []string {
	return append([]string(nil), orderStatuses...)
}

// IsValidOrderStatus 校验订单状态
func IsValidOrderStatus(status string) bool {
	return contains(orderStatuses, status)
}

// IsValidPaymentMethod 校验支付方式
func IsValidPaymentMethod(method string) bool {
	return contains(paymentMethods, method)
}

// IsValidPaymentStatus 校验支付状态
func IsValidPaymentStatus(status string) bool {
	return contains(paymentStatuses, status)
}

// IsValidRefundStatus 校验退款状态
func IsValidRefundStatus(status string) bool {
	return contains(refundStatuses, status)
}

// NormalizeChoice 统一枚举值格式（去空白、小写）
func NormalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
