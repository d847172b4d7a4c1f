package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/repository"
)

func createTestOrder(t *testing.T, fx *ledgerFixture, username string) *models.Order {
	t.Helper()
	user := seedServiceUser(t, fx.db, username)
	order, _, err := fx.orders.CreateOrder(context.Background(), CreateOrderInput{UserID: user.ID, TotalAmount: money("40.00")})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestRecordAndUpdatePayment(t *testing.T) {
	fx := newLedgerFixture(t, "payment_service")
	ctx := context.Background()
	order := createTestOrder(t, fx, "payer")

	txn := "  txn-001  "
	payment, err := fx.payments.RecordPayment(ctx, order.ID, RecordPaymentInput{
		Method:        "Cash_On_Delivery",
		Amount:        money("40.00"),
		TransactionID: &txn,
	})
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if payment.Method != "cash_on_delivery" || payment.Status != "pending" {
		t.Fatalf("unexpected payment: %+v", payment)
	}
	if payment.TransactionID == nil || *payment.TransactionID != "txn-001" {
		t.Fatalf("transaction id should be trimmed, got %v", payment.TransactionID)
	}
	paymentDate := payment.PaymentDate

	completed := "completed"
	updated, err := fx.payments.UpdatePayment(ctx, payment.ID, UpdatePaymentInput{Status: &completed})
	if err != nil {
		t.Fatalf("update payment failed: %v", err)
	}
	if updated.Status != "completed" {
		t.Fatalf("expected completed, got %s", updated.Status)
	}

	payments, err := fx.payments.ListPayments(order.ID)
	if err != nil || len(payments) != 1 {
		t.Fatalf("list payments failed: %v len=%d", err, len(payments))
	}
	if !payments[0].PaymentDate.Equal(paymentDate) {
		t.Fatalf("payment_date should stay unchanged, before=%v after=%v", paymentDate, payments[0].PaymentDate)
	}

	if _, err := fx.payments.RecordPayment(ctx, order.ID, RecordPaymentInput{Method: "barter", Amount: money("1.00")}); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("expected invalid method, got %v", err)
	}
	if _, err := fx.payments.RecordPayment(ctx, order.ID+100, RecordPaymentInput{Method: "online", Amount: money("1.00")}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
	longTxn := strings.Repeat("x", 101)
	if _, err := fx.payments.UpdatePayment(ctx, payment.ID, UpdatePaymentInput{TransactionID: &longTxn}); !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("expected transaction id too long, got %v", err)
	}
	if _, err := fx.payments.UpdatePayment(ctx, payment.ID+100, UpdatePaymentInput{Status: &completed}); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected payment not found, got %v", err)
	}
}

func TestRefundLifecycle(t *testing.T) {
	fx := newLedgerFixture(t, "refund_service")
	ctx := context.Background()
	order := createTestOrder(t, fx, "refunder")

	refund, err := fx.refunds.CreateRefund(ctx, order.ID, CreateRefundInput{Amount: money("12.00"), Reason: "arrived broken"})
	if err != nil {
		t.Fatalf("create refund failed: %v", err)
	}
	if refund.Status != "pending" {
		t.Fatalf("new refund should be pending, got %s", refund.Status)
	}
	refundDate := refund.RefundDate
	createdUpdatedAt := refund.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	approved := "approved"
	updated, err := fx.refunds.UpdateRefund(ctx, refund.ID, UpdateRefundInput{Status: &approved})
	if err != nil {
		t.Fatalf("update refund failed: %v", err)
	}
	if updated.Status != "approved" || !updated.UpdatedAt.After(createdUpdatedAt) {
		t.Fatalf("unexpected refund after update: %+v", updated)
	}

	refunds, err := fx.refunds.ListRefunds(order.ID)
	if err != nil || len(refunds) != 1 {
		t.Fatalf("list refunds failed: %v len=%d", err, len(refunds))
	}
	if !refunds[0].RefundDate.Equal(refundDate) {
		t.Fatalf("refund_date should stay unchanged")
	}

	if _, err := fx.refunds.CreateRefund(ctx, order.ID, CreateRefundInput{Amount: money("1.00"), Reason: "  "}); !errors.Is(err, ErrFieldRequired) {
		t.Fatalf("expected reason required, got %v", err)
	}
	if _, err := fx.refunds.CreateRefund(ctx, order.ID, CreateRefundInput{Amount: money("-1.00"), Reason: "x"}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	bogus := "reversed"
	if _, err := fx.refunds.UpdateRefund(ctx, refund.ID, UpdateRefundInput{Status: &bogus}); !errors.Is(err, ErrRefundStatusInvalid) {
		t.Fatalf("expected invalid refund status, got %v", err)
	}
	if _, err := fx.refunds.UpdateRefund(ctx, refund.ID+100, UpdateRefundInput{Status: &approved}); !errors.Is(err, ErrRefundNotFound) {
		t.Fatalf("expected refund not found, got %v", err)
	}
}

func TestShippingAddressIsOnePerOrder(t *testing.T) {
	fx := newLedgerFixture(t, "shipping_service")
	ctx := context.Background()
	order := createTestOrder(t, fx, "shipper")

	address, err := fx.shipping.AttachShippingAddress(ctx, order.ID, sampleAddress())
	if err != nil {
		t.Fatalf("attach address failed: %v", err)
	}
	if _, err := fx.shipping.AttachShippingAddress(ctx, order.ID, sampleAddress()); !errors.Is(err, ErrShippingAddressExists) {
		t.Fatalf("expected address exists, got %v", err)
	}

	duplicate := &models.ShippingAddress{
		OrderID:      order.ID,
		FullName:     "Second",
		AddressLine1: "2 Elm St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
		PhoneNumber:  "555-0101",
	}
	if err := repository.NewShippingAddressRepository(fx.db).Create(duplicate); err == nil {
		t.Fatalf("expected unique constraint violation on second address")
	}

	next := sampleAddress()
	next.City = "Norfolk"
	line2 := "Suite 4"
	next.AddressLine2 = &line2
	updated, err := fx.shipping.UpdateShippingAddress(ctx, address.ID, next)
	if err != nil {
		t.Fatalf("update address failed: %v", err)
	}
	if updated.OrderID != order.ID || updated.City != "Norfolk" {
		t.Fatalf("unexpected updated address: %+v", updated)
	}
	stored, err := fx.shipping.GetShippingAddress(order.ID)
	if err != nil {
		t.Fatalf("get address failed: %v", err)
	}
	if stored.AddressLine2 == nil || *stored.AddressLine2 != "Suite 4" {
		t.Fatalf("address line 2 not stored: %+v", stored)
	}
	if _, err := fx.shipping.UpdateShippingAddress(ctx, address.ID+100, next); !errors.Is(err, ErrShippingAddressNotFound) {
		t.Fatalf("expected address not found, got %v", err)
	}
}

func TestCatalogListsAllCategories(t *testing.T) {
	fx := newLedgerFixture(t, "catalog_service")
	ctx := context.Background()

	empty, err := fx.catalog.ListCategories(ctx)
	if err != nil || len(empty) != 0 || empty == nil {
		t.Fatalf("expected empty non-nil list, got %v err=%v", empty, err)
	}

	first, err := fx.catalog.CreateCategory(ctx, CreateCategoryInput{Name: "Rare Books", SortOrder: 1})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if first.Slug != "rare-books" {
		t.Fatalf("expected generated slug, got %s", first.Slug)
	}
	again, err := fx.catalog.CreateCategory(ctx, CreateCategoryInput{Name: "Rare books"})
	if err != nil || again.ID != first.ID {
		t.Fatalf("same slug should return existing category, got %+v err=%v", again, err)
	}
	if _, err := fx.catalog.CreateCategory(ctx, CreateCategoryInput{Name: "Maps", SortOrder: 5}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	var reader CatalogReader = fx.catalog
	categories, err := reader.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Maps" {
		t.Fatalf("unexpected categories: %+v", categories)
	}

	variant, err := fx.catalog.CreateVariant(CreateVariantInput{CategoryID: first.ID, Name: "First Folio"})
	if err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	if variant.SKU != "FIRST-FOLIO" {
		t.Fatalf("expected generated sku, got %s", variant.SKU)
	}
}
