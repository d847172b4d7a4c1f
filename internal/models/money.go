package models

import (
	"database/sql/driver"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale 金额列小数位，对应 decimal(10,2)
const MoneyScale = 2

// Money 金额，读写与序列化时统一舍入到分
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 舍入到分
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(MoneyScale)}
}

// ParseMoney 解析字符串金额
func ParseMoney(raw string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Money{}, err
	}
	return NewMoneyFromDecimal(amount), nil
}

// Plus 金额相加
func (m Money) Plus(other Money) Money {
	return NewMoneyFromDecimal(m.Decimal.Add(other.Decimal))
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Equal 按分比较
func (m Money) Equal(other Money) bool {
	return m.Decimal.Round(MoneyScale).Equal(other.Decimal.Round(MoneyScale))
}

// String 固定两位小数
func (m Money) String() string {
	return m.Decimal.StringFixed(MoneyScale)
}

// MarshalJSON 输出为字符串，避免前端浮点误差
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON 接受字符串或数字
func (m *Money) UnmarshalJSON(b []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(b); err != nil {
		return err
	}
	m.Decimal = amount.Round(MoneyScale)
	return nil
}

// Value 写库前舍入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(MoneyScale).Value()
}

// Scan 读库后舍入
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(MoneyScale)
	return nil
}
