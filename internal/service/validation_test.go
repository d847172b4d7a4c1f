package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/order-ledger/internal/models"

	"github.com/shopspring/decimal"
)

func TestNormalizeOrderStatus(t *testing.T) {
	status, err := normalizeOrderStatus(" Shipped ")
	if err != nil || status != "shipped" {
		t.Fatalf("expected shipped, got %q err=%v", status, err)
	}
	if _, err := normalizeOrderStatus("returned"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestSubRecordStatusDefaults(t *testing.T) {
	if status, err := normalizePaymentStatus(""); err != nil || status != "pending" {
		t.Fatalf("payment status should default to pending, got %q err=%v", status, err)
	}
	if status, err := normalizeRefundStatus(""); err != nil || status != "pending" {
		t.Fatalf("refund status should default to pending, got %q err=%v", status, err)
	}
	if _, err := normalizePaymentStatus("refunded"); !errors.Is(err, ErrPaymentStatusInvalid) {
		t.Fatalf("expected payment status error, got %v", err)
	}
	if _, err := normalizeRefundStatus("paid"); !errors.Is(err, ErrRefundStatusInvalid) {
		t.Fatalf("expected refund status error, got %v", err)
	}
	if _, err := normalizePaymentMethod("crypto"); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("expected payment method error, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount("total_amount", models.NewMoneyFromDecimal(decimal.Zero)); err != nil {
		t.Fatalf("zero amount should be valid: %v", err)
	}
	if err := validateAmount("total_amount", models.NewMoneyFromDecimal(decimal.NewFromInt(-1))); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected negative amount error, got %v", err)
	}
	if err := validateAmount("total_amount", models.NewMoneyFromDecimal(decimal.NewFromInt(100000000))); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected overflow amount error, got %v", err)
	}
}

func TestNormalizeShippingAddress(t *testing.T) {
	blank := "   "
	address := &models.ShippingAddress{
		FullName:     " Ada Lovelace ",
		AddressLine1: "12 St James's Square",
		AddressLine2: &blank,
		City:         "London",
		State:        "Greater London",
		PostalCode:   "SW1Y 4JH",
		Country:      "GB",
		PhoneNumber:  "+44 20 7946 0000",
	}
	if err := normalizeShippingAddress(address); err != nil {
		t.Fatalf("normalize address failed: %v", err)
	}
	if address.FullName != "Ada Lovelace" || address.AddressLine2 != nil {
		t.Fatalf("unexpected normalized address: %+v", address)
	}

	address.City = ""
	if err := normalizeShippingAddress(address); !errors.Is(err, ErrFieldRequired) || !strings.Contains(err.Error(), "city") {
		t.Fatalf("expected city required error, got %v", err)
	}

	address.City = "London"
	address.PostalCode = strings.Repeat("9", 21)
	if err := normalizeShippingAddress(address); !errors.Is(err, ErrFieldTooLong) || !strings.Contains(err.Error(), "postal_code") {
		t.Fatalf("expected postal code too long error, got %v", err)
	}
}
