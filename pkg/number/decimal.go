package number

import (
	"strings"

	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Money formats a usd amount the way the product displays prices:
// grouped integer digits, 2 fraction digits, or 4 when the amount
// is below one dollar.
func Money(d decimal.Decimal) string {
	places := int32(2)
	if d.Abs().LessThan(decimal.New(1, 0)) {
		places = 4
	}

	fixed := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	return sign + "$" + group(parts[0]) + "." + parts[1]
}

// SignedPercent formats a 24h change with an explicit leading plus
// for non-negative values.
func SignedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.String() + "%"
	}
	return "+" + d.String() + "%"
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
