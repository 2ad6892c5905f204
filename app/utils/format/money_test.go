package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFormat(t *testing.T) {
	m := NewMoney("₹")
	if got := m.Format(decimal.NewFromInt(125000)); got != "₹125,000" {
		t.Errorf("Format = %q", got)
	}
}

func TestMoneyFormatPtr(t *testing.T) {
	m := NewMoney("")
	if got := m.FormatPtr(nil); got != "" {
		t.Errorf("FormatPtr(nil) = %q, want empty", got)
	}
	d := decimal.NewFromInt(1500)
	if got := m.FormatPtr(&d); got != "₹1,500" {
		t.Errorf("FormatPtr = %q", got)
	}
}
