package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
)

// helpers is the function map shared by the markdown and HTML templates.
var helpers = map[string]any{
	"inr": FormatINR,
	"usd": FormatUSD,
	"pct": FormatPct,
	"abs": math.Abs,
}

// FormatINR renders an amount in Indian lakh/crore notation.
func FormatINR(v float64) string {
	switch {
	case math.Abs(v) >= 1e7:
		return fmt.Sprintf("%.2f Cr", v/1e7)
	case math.Abs(v) >= 1e5:
		return fmt.Sprintf("%.2f L", v/1e5)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatUSD renders a dollar amount, abbreviated above a thousand.
func FormatUSD(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return money.New(int64(math.Round(v*100)), money.USD).Display()
	}
}

// FormatPct renders a signed percentage with two decimals.
func FormatPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// Greeting returns the time-of-day salutation shown on the dashboard and
// in the brief.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning ☀️"
	case hour < 17:
		return "Good Afternoon 🌤️"
	default:
		return "Good Evening 🌙"
	}
}
