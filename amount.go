package wealthpulse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a statement cell into a numeric value. Broker
// exports decorate numbers freely: thousands separators, currency signs,
// parenthesised negatives, stray whitespace. Unparseable or empty cells
// coerce to zero so a bad cell degrades a row instead of a whole file.
func ParseAmount(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" || s == "-" || strings.EqualFold(s, "na") || strings.EqualFold(s, "n/a") {
		return 0
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ',', '₹', '$', ' ', '%':
			return -1
		}
		return r
	}, s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}
	if neg {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f
}

// Round2 rounds to two decimal places, half away from zero, the way
// brokers print monetary values.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// BlendedAvg returns invested/quantity rounded to two decimals, or zero
// when the position has no quantity.
func BlendedAvg(invested, quantity float64) float64 {
	if quantity == 0 {
		return 0
	}
	q, _ := decimal.NewFromFloat(invested).
		Div(decimal.NewFromFloat(quantity)).
		Round(2).Float64()
	return q
}

// WeightedAvg returns the invested-weighted average of rate, rounded to
// two decimals. Zero-weight inputs yield zero.
func WeightedAvg(rates, weights []float64) float64 {
	var num, den decimal.Decimal
	for i, r := range rates {
		w := decimal.NewFromFloat(weights[i])
		num = num.Add(decimal.NewFromFloat(r).Mul(w))
		den = den.Add(w)
	}
	if den.IsZero() {
		return 0
	}
	f, _ := num.Div(den).Round(2).Float64()
	return f
}
