// Package money coerces free-text amounts and splits totals across rows.
package money

import (
	"regexp"
	"strings"

	"alkhair/internal/normalize"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept when splitting (piasters).
const Places = 2

var leadingNumber = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)`)

// Parse reads the number at the start of s ("500", "250.5 ج.م", "٣٠٠").
// A quantity such as "2 كرتونة" reads as 2 and text with no leading number
// reads as 0. It never fails.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(normalize.Digits(s))
	s = strings.ReplaceAll(s, "٫", ".")
	s = strings.ReplaceAll(s, ",", "")

	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Sum adds the parsed values of amounts.
func Sum(amounts ...string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(Parse(a))
	}
	return total
}

// Split divides total into n shares rounded down to Places. Whatever is
// left over goes to the first share, so the shares always add up to total.
func Split(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	count := decimal.NewFromInt(int64(n))
	share := total.Div(count).Truncate(Places)
	remainder := total.Sub(share.Mul(count))

	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = share
	}
	out[0] = out[0].Add(remainder)
	return out
}
