package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// decimal(10,2) 可表示的最大金额
var maxStoredAmount = decimal.RequireFromString("99999999.99")

func normalizeOrderStatus(raw string) (string, error) {
	status := constants.NormalizeChoice(raw)
	if !constants.IsValidOrderStatus(status) {
		return "", fmt.Errorf("%w: %s", ErrOrderStatusInvalid, raw)
	}
	return status, nil
}

func normalizePaymentStatus(raw string) (string, error) {
	status := constants.NormalizeChoice(raw)
	if status == "" {
		return constants.PaymentStatusPending, nil
	}
	if !constants.IsValidPaymentStatus(status) {
		return "", fmt.Errorf("%w: %s", ErrPaymentStatusInvalid, raw)
	}
	return status, nil
}

func normalizePaymentMethod(raw string) (string, error) {
	method := constants.NormalizeChoice(raw)
	if !constants.IsValidPaymentMethod(method) {
		return "", fmt.Errorf("%w: %s", ErrPaymentMethodInvalid, raw)
	}
	return method, nil
}

func normalizeRefundStatus(raw string) (string, error) {
	status := constants.NormalizeChoice(raw)
	if status == "" {
		return constants.RefundStatusPending, nil
	}
	if !constants.IsValidRefundStatus(status) {
		return "", fmt.Errorf("%w: %s", ErrRefundStatusInvalid, raw)
	}
	return status, nil
}

// validateAmount 金额不能为负，且需落在 decimal(10,2) 范围内
func validateAmount(field string, amount models.Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, field)
	}
	if amount.Decimal.Round(2).GreaterThan(maxStoredAmount) {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, field)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity", ErrInvalidQuantity)
	}
	return nil
}

// requireString 校验必填字符串并返回去空白后的值
func requireString(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrFieldRequired, field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return "", fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return value, nil
}

// optionalString 空白字符串视为未填写
func optionalString(field string, value *string, maxLen int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		return nil, fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return &trimmed, nil
}

// normalizeShippingAddress 校验并整理收货地址字段
func normalizeShippingAddress(address *models.ShippingAddress) error {
	var err error
	if address.FullName, err = requireString("full_name", address.FullName, constants.MaxFullNameLength); err != nil {
		return err
	}
	if address.AddressLine1, err = requireString("address_line_1", address.AddressLine1, constants.MaxAddressLineLength); err != nil {
		return err
	}
	if address.AddressLine2, err = optionalString("address_line_2", address.AddressLine2, constants.MaxAddressLineLength); err != nil {
		return err
	}
	if address.City, err = requireString("city", address.City, constants.MaxCityLength); err != nil {
		return err
	}
	if address.State, err = requireString("state", address.State, constants.MaxStateLength); err != nil {
		return err
	}
	if address.PostalCode, err = requireString("postal_code", address.PostalCode, constants.MaxPostalCodeLength); err != nil {
		return err
	}
	if address.Country, err = requireString("country", address.Country, constants.MaxCountryLength); err != nil {
		return err
	}
	if address.PhoneNumber, err = requireString("phone_number", address.PhoneNumber, constants.MaxPhoneNumberLength); err != nil {
		return err
	}
	return nil
}
