package report

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount in whole currency units with thousands separators.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(0).IntPart()
	if rounded < 0 {
		return "-" + symbol + humanize.Comma(-rounded)
	}
	return symbol + humanize.Comma(rounded)
}

// FormatMoneyCents renders an amount with thousands separators and two decimals.
func FormatMoneyCents(symbol string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	rounded := amount.Abs().Round(2)
	fixed := rounded.StringFixed(2)
	return sign + symbol + humanize.Comma(rounded.Truncate(0).IntPart()) + fixed[len(fixed)-3:]
}
