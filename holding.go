package wealthpulse

import "fmt"

// StockLot is a single equity holding as reported by one broker statement.
// Invested is the statement's own buy value when it carries one, otherwise
// Quantity × AvgPrice; adapters reconcile the two in the statement's favor.
type StockLot struct {
	Symbol       string  `json:"symbol"`
	ISIN         string  `json:"isin,omitempty"`
	Quantity     float64 `json:"qty"`
	AvgPrice     float64 `json:"avg_price"`
	Invested     float64 `json:"invested"`
	ClosingPrice float64 `json:"closing_price"`
	ClosingValue float64 `json:"closing_value"`
	Broker       string  `json:"broker"`
	Sector       string  `json:"sector,omitempty"`
}

// MutualFundLot is a single mutual-fund folio position. The scheme name is
// the consolidation key: folios of the same fund are the same economic
// position.
type MutualFundLot struct {
	Name        string  `json:"name"`
	AMC         string  `json:"amc,omitempty"`
	Category    string  `json:"category,omitempty"`
	SubCategory string  `json:"sub_category,omitempty"`
	Folio       string  `json:"folio,omitempty"`
	Units       float64 `json:"units"`
	Invested    float64 `json:"invested"`
	Current     float64 `json:"current"`
	XIRR        float64 `json:"xirr"`
	Source      string  `json:"source,omitempty"`
}

// USEquityLot is a US equity holding (ESPP, RSU) in USD.
type USEquityLot struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name,omitempty"`
	Quantity    float64 `json:"qty"`
	AvgPriceUSD float64 `json:"avg_price_usd,omitempty"`
	PriceUSD    float64 `json:"price_usd,omitempty"`
	InvestedUSD float64 `json:"invested_usd,omitempty"`
	ValueUSD    float64 `json:"value_usd"`
	Source      string  `json:"source"`
}

// NPSEntry is a National Pension System scheme entry extracted from a
// CRA transaction statement.
type NPSEntry struct {
	PRAN              string  `json:"pran"`
	SchemeName        string  `json:"scheme_name"`
	FundManager       string  `json:"fund_manager,omitempty"`
	AssetClass        string  `json:"asset_class,omitempty"`
	NAV               float64 `json:"nav,omitempty"`
	Units             float64 `json:"units,omitempty"`
	ContributionTotal float64 `json:"contribution_total,omitempty"`
	CurrentValue      float64 `json:"current_value"`
	StatementDate     string  `json:"statement_date,omitempty"`
}

// EPFOEntry is an Employees' Provident Fund account balance extracted from
// an e-passbook.
type EPFOEntry struct {
	UAN            string  `json:"uan"`
	MemberID       string  `json:"member_id,omitempty"`
	Establishment  string  `json:"establishment,omitempty"`
	EmployeeShare  float64 `json:"employee_share"`
	EmployerShare  float64 `json:"employer_share"`
	PensionShare   float64 `json:"pension_share"`
	TotalBalance   float64 `json:"total_balance"`
	InterestEarned float64 `json:"interest_earned,omitempty"`
	StatementDate  string  `json:"statement_date,omitempty"`
}

// ParseOutcome collects everything one adapter extracted from one statement
// file, plus the non-fatal diagnostics it met on the way.
//
// An outcome with a non-empty Errors list is excluded from consolidation
// even if it carries partial records: unreliable data must not be silently
// mixed with clean data.
type ParseOutcome struct {
	Broker        string
	StatementDate string
	Stocks        []StockLot
	MutualFunds   []MutualFundLot
	USHoldings    []USEquityLot
	NPSHoldings   []NPSEntry
	EPFOHoldings  []EPFOEntry
	Errors        []string
}

// NewParseOutcome returns an empty outcome for the named broker.
func NewParseOutcome(broker string) *ParseOutcome {
	return &ParseOutcome{Broker: broker}
}

// Errorf appends a formatted diagnostic to the outcome.
func (o *ParseOutcome) Errorf(format string, args ...any) {
	o.Errors = append(o.Errors, fmt.Sprintf(format, args...))
}

// Failed reports whether the outcome must be excluded from consolidation.
func (o *ParseOutcome) Failed() bool { return len(o.Errors) > 0 }

// Counts returns the number of records collected per entity kind, in the
// order stocks, mutual funds, US holdings, NPS, EPFO.
func (o *ParseOutcome) Counts() (int, int, int, int, int) {
	return len(o.Stocks), len(o.MutualFunds), len(o.USHoldings), len(o.NPSHoldings), len(o.EPFOHoldings)
}

// Empty reports whether the outcome carries no records at all.
func (o *ParseOutcome) Empty() bool {
	s, m, u, n, e := o.Counts()
	return s+m+u+n+e == 0
}
