package calc

import "github.com/shopspring/decimal"

func GetTaxPercent() decimal.Decimal {
	return decimal.NewFromInt(12)
}

func CalculateTax(baseTotal decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(GetTaxPercent()).Div(decimal.NewFromInt(100))
}

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
}

func CalculateGrandTotal(baseTotal, taxAmount, discountAmount, shippingCost decimal.Decimal) decimal.Decimal {
	return baseTotal.Add(taxAmount).Add(shippingCost).Sub(discountAmount)
}
