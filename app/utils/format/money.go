package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Money renders prices with the store's currency symbol.
type Money struct {
	ac accounting.Accounting
}

func NewMoney(symbol string) Money {
	if symbol == "" {
		symbol = "₹"
	}
	return Money{ac: accounting.Accounting{Symbol: symbol, Precision: 0, Thousand: ","}}
}

func (m Money) Format(amount decimal.Decimal) string {
	return m.ac.FormatMoneyDecimal(amount)
}

func (m Money) FormatPtr(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return m.ac.FormatMoneyDecimal(*amount)
}
