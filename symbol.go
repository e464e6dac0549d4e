package wealthpulse

import "strings"

// reitSuffix marks a REIT/InvIT unit class. It looks like an exchange
// series marker but is part of the trading symbol and must survive
// normalization (EMBASSY-RR trades as EMBASSY-RR).
const reitSuffix = "-RR"

// providerSuffix is appended to a symbol to form the quote provider's
// ticker for NSE-listed scrips.
const providerSuffix = ".NS"

// NormalizeSymbol reduces a broker-flavoured scrip identifier to the plain
// NSE trading symbol:
//
//	"NSE:RELIANCE"  -> "RELIANCE"   (exchange prefix)
//	"TATAPOWER_EQ"  -> "TATAPOWER"  (platform series suffix)
//	"RAJESHEXPO-Z"  -> "RAJESHEXPO" (exchange series marker, <=2 chars)
//	"EMBASSY-RR"    -> "EMBASSY-RR" (REIT unit class, preserved)
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))

	// Exchange prefix: NSE:RELIANCE, BSE:TCS, NSE_EQ:RELIANCE.
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, "_EQ")

	// Short trailing hyphenated suffixes are exchange series markers,
	// except the REIT unit class.
	if i := strings.LastIndex(s, "-"); i > 0 {
		suffix := s[i:]
		if len(suffix)-1 <= 2 && suffix != reitSuffix {
			s = s[:i]
		}
	}
	return s
}

// IsISIN reports whether the symbol is really an Indian ISIN that an
// adapter fell back to because the statement carried no trading symbol.
func IsISIN(symbol string) bool {
	return len(symbol) == 12 && strings.HasPrefix(symbol, "INE")
}

// ProviderTicker returns the quote provider's ticker for a consolidated
// symbol, or "" when the symbol cannot be quoted (ISIN fallbacks and REIT
// units have no reliable provider listing).
func ProviderTicker(symbol string) string {
	if IsISIN(symbol) || strings.HasSuffix(symbol, reitSuffix) {
		return ""
	}
	return symbol + providerSuffix
}
