// SPDX-License-Identifier: MIT

package unit

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits bounds the fractional digits printed by Quantity.String.
const MaxFractionDigits = 3

// The locale is fixed so String renders identically on every host.
var displayTag = language.AmericanEnglish

// String renders the amount with grouping separators and at most
// MaxFractionDigits fractional digits, immediately followed by the symbol:
// "5m", "0.333m", "1,000m".
func (q Quantity[N]) String() string {
	if q.unit == nil {
		return "<nil>"
	}

	return formatAmount(q.unit.arith.ToNative(q.amount)) + q.unit.symbol
}

func formatAmount(v float64) string {
	p := message.NewPrinter(displayTag)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}
