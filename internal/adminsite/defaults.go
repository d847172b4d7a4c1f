package adminsite

const (
	joinUserOnOrder   = "JOIN users ON users.id = orders.user_id"
	joinVariantOnItem = "JOIN product_variants ON product_variants.id = order_items.product_variant_id"
)

func joinOrderOn(table string) string {
	return "JOIN orders ON orders.id = " + table + ".order_id"
}

// NewDefaultRegistry 构建订单后台的默认配置
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, view := range defaultViews() {
		if err := registry.Register(view); err != nil {
			panic(err)
		}
	}
	return registry
}

func defaultViews() []ModelAdmin {
	return []ModelAdmin{
		orderView(),
		orderItemView(),
		orderStatusHistoryView(),
		paymentView(),
		shippingAddressView(),
		refundView(),
	}
}

func orderView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityOrder,
		Path:        "orders",
		Table:       "orders",
		Label:       "Order",
		ListDisplay: []string{"order_id", "user", "status", "total_amount", "created_at", "updated_at"},
		ListFilter: []ListFilter{
			{Name: "status", Column: "orders.status", Kind: FilterExact},
			{Name: "created_at", Column: "orders.created_at", Kind: FilterDate},
			{Name: "updated_at", Column: "orders.updated_at", Kind: FilterDate},
		},
		SearchFields: []SearchField{
			{Name: "order_id", Column: "orders.order_id"},
			{Name: "user__username", Column: "users.username", Joins: []string{joinUserOnOrder}},
			{Name: "status", Column: "orders.status"},
		},
		ReadonlyFields: []string{"order_id", "created_at", "updated_at"},
		Ordering:       []OrderingField{{Name: "created_at", Column: "orders.created_at", Desc: true}},
		Fieldsets: []Fieldset{
			{Fields: []string{"order_id", "user", "status", "total_amount"}},
			{Title: "Timestamps", Fields: []string{"created_at", "updated_at"}},
		},
		Inlines: []Inline{
			{Entity: EntityOrderItem, Style: InlineTabular, Extra: 1, ReadonlyFields: []string{"product_variant", "quantity", "price"}},
			{Entity: EntityOrderStatusHistory, Style: InlineTabular, ReadonlyFields: []string{"status", "changed_at"}},
			{Entity: EntityPayment, Style: InlineTabular, ReadonlyFields: []string{"method", "amount", "status", "transaction_id", "payment_date"}},
			{Entity: EntityShippingAddress, Style: InlineStacked, ReadonlyFields: []string{"full_name", "address_line_1", "address_line_2", "city", "state", "postal_code", "country", "phone_number"}},
		},
		Permissions: Permissions{View: true, Add: true, Change: true, Delete: true},
	}
}

func orderItemView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityOrderItem,
		Path:        "order-items",
		Table:       "order_items",
		Label:       "Order item",
		ListDisplay: []string{"order", "product_variant", "quantity", "price"},
		ListFilter: []ListFilter{
			{Name: "order", Column: "order_items.order_id", Kind: FilterID},
		},
		SearchFields: []SearchField{
			{Name: "order__order_id", Column: "orders.order_id", Joins: []string{joinOrderOn("order_items")}},
			{Name: "product_variant__name", Column: "product_variants.name", Joins: []string{joinVariantOnItem}},
		},
		Ordering:    []OrderingField{{Name: "order__created_at", Column: "orders.created_at", Desc: true, Joins: []string{joinOrderOn("order_items")}}},
		Permissions: Permissions{View: true, Add: true, Change: true, Delete: true},
	}
}

func orderStatusHistoryView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityOrderStatusHistory,
		Path:        "order-status-histories",
		Table:       "order_status_histories",
		Label:       "Order status history",
		ListDisplay: []string{"order", "status", "changed_at"},
		ListFilter: []ListFilter{
			{Name: "status", Column: "order_status_histories.status", Kind: FilterExact},
			{Name: "changed_at", Column: "order_status_histories.changed_at", Kind: FilterDate},
		},
		SearchFields: []SearchField{
			{Name: "order__order_id", Column: "orders.order_id", Joins: []string{joinOrderOn("order_status_histories")}},
			{Name: "status", Column: "order_status_histories.status"},
		},
		ReadonlyFields: []string{"order", "status", "changed_at"},
		Ordering:       []OrderingField{{Name: "changed_at", Column: "order_status_histories.changed_at", Desc: true}},
		// 状态流水只追加，后台只读
		Permissions: Permissions{View: true},
	}
}

func paymentView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityPayment,
		Path:        "payments",
		Table:       "payments",
		Label:       "Payment",
		ListDisplay: []string{"order", "method", "amount", "status", "transaction_id", "payment_date"},
		ListFilter: []ListFilter{
			{Name: "method", Column: "payments.method", Kind: FilterExact},
			{Name: "status", Column: "payments.status", Kind: FilterExact},
			{Name: "payment_date", Column: "payments.payment_date", Kind: FilterDate},
		},
		SearchFields: []SearchField{
			{Name: "order__order_id", Column: "orders.order_id", Joins: []string{joinOrderOn("payments")}},
			{Name: "method", Column: "payments.method"},
			{Name: "status", Column: "payments.status"},
			{Name: "transaction_id", Column: "payments.transaction_id"},
		},
		ReadonlyFields: []string{"payment_date"},
		Ordering:       []OrderingField{{Name: "payment_date", Column: "payments.payment_date", Desc: true}},
		Permissions:    Permissions{View: true, Add: true, Change: true, Delete: true},
	}
}

func shippingAddressView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityShippingAddress,
		Path:        "shipping-addresses",
		Table:       "shipping_addresses",
		Label:       "Shipping address",
		ListDisplay: []string{"order", "full_name", "address_line_1", "city", "state", "postal_code", "country", "phone_number"},
		ListFilter: []ListFilter{
			{Name: "city", Column: "shipping_addresses.city", Kind: FilterExact},
			{Name: "state", Column: "shipping_addresses.state", Kind: FilterExact},
			{Name: "country", Column: "shipping_addresses.country", Kind: FilterExact},
		},
		SearchFields: []SearchField{
			{Name: "order__order_id", Column: "orders.order_id", Joins: []string{joinOrderOn("shipping_addresses")}},
			{Name: "full_name", Column: "shipping_addresses.full_name"},
			{Name: "city", Column: "shipping_addresses.city"},
			{Name: "state", Column: "shipping_addresses.state"},
			{Name: "postal_code", Column: "shipping_addresses.postal_code"},
			{Name: "country", Column: "shipping_addresses.country"},
		},
		Ordering:    []OrderingField{{Name: "order__created_at", Column: "orders.created_at", Desc: true, Joins: []string{joinOrderOn("shipping_addresses")}}},
		Permissions: Permissions{View: true, Add: true, Change: true, Delete: true},
	}
}

func refundView() ModelAdmin {
	return ModelAdmin{
		Entity:      EntityRefund,
		Path:        "refunds",
		Table:       "refunds",
		Label:       "Refund",
		ListDisplay: []string{"order", "amount", "reason", "status", "refund_date", "created_at", "updated_at"},
		ListFilter: []ListFilter{
			{Name: "status", Column: "refunds.status", Kind: FilterExact},
			{Name: "created_at", Column: "refunds.created_at", Kind: FilterDate},
			{Name: "updated_at", Column: "refunds.updated_at", Kind: FilterDate},
		},
		SearchFields: []SearchField{
			{Name: "order__order_id", Column: "orders.order_id", Joins: []string{joinOrderOn("refunds")}},
			{Name: "reason", Column: "refunds.reason"},
			{Name: "status", Column: "refunds.status"},
		},
		ReadonlyFields: []string{"refund_date", "created_at", "updated_at"},
		Ordering:       []OrderingField{{Name: "created_at", Column: "refunds.created_at", Desc: true}},
		Permissions:    Permissions{View: true, Add: true, Change: true, Delete: true},
	}
}
