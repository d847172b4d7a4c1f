package i18n

var catalogs = map[string]map[string]string{
	LocaleZH: {
		"error.bad_request":                  "请求参数错误",
		"error.not_found":                    "资源不存在",
		"error.forbidden":                    "无权执行该操作",
		"error.internal_error":               "服务器内部错误",
		"error.rate_limited":                 "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable":       "限流服务暂不可用",
		"error.admin_view_not_found":         "后台实体不存在",
		"error.authz_unavailable":            "权限服务暂不可用",
		"error.order_not_found":              "订单不存在",
		"error.order_fetch_failed":           "获取订单失败",
		"error.order_create_failed":          "创建订单失败",
		"error.order_update_failed":          "更新订单失败",
		"error.order_delete_failed":          "删除订单失败",
		"error.order_status_invalid":         "订单状态无效",
		"error.status_history_append_failed": "记录订单状态流水失败",
		"error.status_history_readonly":      "订单状态流水只读，不允许新增、修改或删除",
		"error.user_not_found":               "用户不存在",
		"error.product_variant_not_found":    "商品规格不存在",
		"error.payment_not_found":            "支付记录不存在",
		"error.payment_method_invalid":       "支付方式无效",
		"error.payment_status_invalid":       "支付状态无效",
		"error.refund_not_found":             "退款记录不存在",
		"error.refund_status_invalid":        "退款状态无效",
		"error.shipping_address_not_found":   "收货地址不存在",
		"error.shipping_address_exists":      "该订单已有收货地址",
		"error.amount_invalid":               "金额无效",
		"error.quantity_invalid":             "数量必须为正整数",
		"error.field_required":               "缺少必填字段",
		"error.field_too_long":               "字段长度超出限制",
		"error.list_filter_invalid":          "列表筛选参数无效",
		"error.catalog_unavailable":          "商品目录暂不可用",
		"order.status.pending":               "待处理",
		"order.status.processing":            "处理中",
		"order.status.shipped":               "已发货",
		"order.status.delivered":             "已送达",
		"order.status.cancelled":             "已取消",
	},
	LocaleTW: {
		"error.bad_request":                  "請求參數錯誤",
		"error.not_found":                    "資源不存在",
		"error.forbidden":                    "無權執行該操作",
		"error.internal_error":               "伺服器內部錯誤",
		"error.rate_limited":                 "請求過於頻繁，請 %d 秒後再試",
		"error.rate_limit_unavailable":       "限流服務暫不可用",
		"error.admin_view_not_found":         "後台實體不存在",
		"error.authz_unavailable":            "權限服務暫不可用",
		"error.order_not_found":              "訂單不存在",
		"error.order_fetch_failed":           "取得訂單失敗",
		"error.order_create_failed":          "建立訂單失敗",
		"error.order_update_failed":          "更新訂單失敗",
		"error.order_delete_failed":          "刪除訂單失敗",
		"error.order_status_invalid":         "訂單狀態無效",
		"error.status_history_append_failed": "記錄訂單狀態流水失敗",
		"error.status_history_readonly":      "訂單狀態流水唯讀，不允許新增、修改或刪除",
		"error.user_not_found":               "使用者不存在",
		"error.product_variant_not_found":    "商品規格不存在",
		"error.payment_not_found":            "付款記錄不存在",
		"error.payment_method_invalid":       "付款方式無效",
		"error.payment_status_invalid":       "付款狀態無效",
		"error.refund_not_found":             "退款記錄不存在",
		"error.refund_status_invalid":        "退款狀態無效",
		"error.shipping_address_not_found":   "收貨地址不存在",
		"error.shipping_address_exists":      "該訂單已有收貨地址",
		"error.amount_invalid":               "金額無效",
		"error.quantity_invalid":             "數量必須為正整數",
		"error.field_required":               "缺少必填欄位",
		"error.field_too_long":               "欄位長度超出限制",
		"error.list_filter_invalid":          "列表篩選參數無效",
		"error.catalog_unavailable":          "商品目錄暫不可用",
		"order.status.pending":               "待處理",
		"order.status.processing":            "處理中",
		"order.status.shipped":               "已出貨",
		"order.status.delivered":             "已送達",
		"order.status.cancelled":             "已取消",
	},
	LocaleEN: {
		"error.bad_request":                  "Invalid request parameters",
		"error.not_found":                    "Resource not found",
		"error.forbidden":                    "You are not allowed to perform this action",
		"error.internal_error":               "Internal server error",
		"error.rate_limited":                 "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":       "Rate limiter unavailable",
		"error.admin_view_not_found":         "Admin entity not found",
		"error.authz_unavailable":            "Authorization service unavailable",
		"error.order_not_found":              "Order not found",
		"error.order_fetch_failed":           "Failed to load order",
		"error.order_create_failed":          "Failed to create order",
		"error.order_update_failed":          "Failed to update order",
		"error.order_delete_failed":          "Failed to delete order",
		"error.order_status_invalid":         "Invalid order status",
		"error.status_history_append_failed": "Failed to record order status history",
		"error.status_history_readonly":      "Order status history is read-only",
		"error.user_not_found":               "User not found",
		"error.product_variant_not_found":    "Product variant not found",
		"error.payment_not_found":            "Payment not found",
		"error.payment_method_invalid":       "Invalid payment method",
		"error.payment_status_invalid":       "Invalid payment status",
		"error.refund_not_found":             "Refund not found",
		"error.refund_status_invalid":        "Invalid refund status",
		"error.shipping_address_not_found":   "Shipping address not found",
		"error.shipping_address_exists":      "The order already has a shipping address",
		"error.amount_invalid":               "Invalid amount",
		"error.quantity_invalid":             "Quantity must be a positive integer",
		"error.field_required":               "Required field is missing",
		"error.field_too_long":               "Field exceeds maximum length",
		"error.list_filter_invalid":          "Invalid list filter",
		"error.catalog_unavailable":          "Catalog unavailable",
		"order.status.pending":               "Pending",
		"order.status.processing":            "Processing",
		"order.status.shipped":               "Shipped",
		"order.status.delivered":             "Delivered",
		"order.status.cancelled":             "Cancelled",
	},
}
