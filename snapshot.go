package wealthpulse

// A Snapshot is the consolidated view of the whole portfolio as of the
// last parse run. It is rebuilt in full every run; only the verdict map
// carries identity across runs.
type Snapshot struct {
	Metadata     Metadata                   `json:"_metadata"`
	Stocks       map[string]*StockAggregate `json:"stocks"`
	Verdicts     map[string]Verdict         `json:"stock_verdicts"`
	YahooMap     map[string]string          `json:"yahoo_map"`
	MutualFunds  []FundAggregate            `json:"mutual_funds"`
	USHoldings   map[string]*USAggregate    `json:"us_holdings"`
	NPSHoldings  []NPSEntry                 `json:"nps_holdings"`
	EPFOHoldings []EPFOEntry                `json:"epfo_holdings"`
	NonEquity    map[string]float64         `json:"non_equity"`
}

// Metadata records provenance for a snapshot.
type Metadata struct {
	GeneratedAt string   `json:"generated_at"`
	SourceFiles []string `json:"source_files"`
	StockCount  int      `json:"stock_count"`
	MFCount     int      `json:"mf_count"`
	USCount     int      `json:"us_count"`
	NPSCount    int      `json:"nps_count"`
	EPFOCount   int      `json:"epfo_count"`
}

// A StockAggregate is one symbol's position summed across brokers, with
// the per-broker contributions retained for audit.
type StockAggregate struct {
	Symbol            string      `json:"symbol"`
	TotalQty          float64     `json:"total_qty"`
	TotalInvested     float64     `json:"total_invested"`
	TotalClosingValue float64     `json:"total_closing_value"`
	BlendedAvgPrice   float64     `json:"blended_avg_price"`
	Brokers           []BrokerLot `json:"brokers"`
}

// A BrokerLot is one broker's contribution to a StockAggregate.
type BrokerLot struct {
	Broker       string  `json:"broker"`
	Qty          float64 `json:"qty"`
	AvgPrice     float64 `json:"avg_price"`
	Invested     float64 `json:"invested"`
	ClosingPrice float64 `json:"closing_price"`
	ClosingValue float64 `json:"closing_value"`
}

// A Verdict is the user's stance on a symbol. It is never derived from
// statement data: it carries over from the prior snapshot, may be set in
// configuration, and defaults for symbols seen for the first time.
type Verdict struct {
	Verdict  string  `json:"verdict"`
	Risk     string  `json:"risk"`
	Sector   string  `json:"sector"`
	PE       float64 `json:"pe"`
	ROE      float64 `json:"roe"`
	ROCE     float64 `json:"roce"`
	Target1M float64 `json:"target_1m"`
	Target1Y float64 `json:"target_1y"`
	Target5Y float64 `json:"target_5y"`
}

// DefaultVerdict is assigned to symbols that have no stored or configured
// verdict yet.
func DefaultVerdict() Verdict {
	return Verdict{Verdict: "HOLD", Risk: "Medium", Sector: "Other"}
}

// A FundAggregate is one mutual fund scheme summed across folios and
// sources, with an invested-weighted XIRR.
type FundAggregate struct {
	Name      string  `json:"name"`
	AMC       string  `json:"amc"`
	Category  string  `json:"category"`
	Type      string  `json:"type"`
	Invested  float64 `json:"invested"`
	Current   float64 `json:"current"`
	XIRR      float64 `json:"xirr"`
	NumFolios int     `json:"num_folios"`
}

// A USAggregate is one US ticker's position summed across custodians.
type USAggregate struct {
	Symbol           string     `json:"symbol"`
	Name             string     `json:"name"`
	TotalQty         float64    `json:"total_qty"`
	TotalInvestedUSD float64    `json:"total_invested_usd"`
	TotalValueUSD    float64    `json:"total_value_usd"`
	Sources          []USSource `json:"sources"`
}

// A USSource is one custodian's contribution to a USAggregate.
type USSource struct {
	Source   string  `json:"source"`
	Qty      float64 `json:"qty"`
	ValueUSD float64 `json:"value_usd"`
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Stocks:     make(map[string]*StockAggregate),
		Verdicts:   make(map[string]Verdict),
		YahooMap:   make(map[string]string),
		USHoldings: make(map[string]*USAggregate),
		NonEquity:  make(map[string]float64),
	}
}

// StockInvested returns the total amount invested in Indian equity.
func (s *Snapshot) StockInvested() float64 {
	var total float64
	for _, agg := range s.Stocks {
		total += agg.TotalInvested
	}
	return Round2(total)
}

// StockClosingValue returns the latest statement-reported equity value.
func (s *Snapshot) StockClosingValue() float64 {
	var total float64
	for _, agg := range s.Stocks {
		total += agg.TotalClosingValue
	}
	return Round2(total)
}

// FundInvested returns the total invested across mutual funds.
func (s *Snapshot) FundInvested() float64 {
	var total float64
	for _, f := range s.MutualFunds {
		total += f.Invested
	}
	return Round2(total)
}

// FundCurrent returns the current mutual fund value.
func (s *Snapshot) FundCurrent() float64 {
	var total float64
	for _, f := range s.MutualFunds {
		total += f.Current
	}
	return Round2(total)
}

// USValue returns the total US holdings value in USD.
func (s *Snapshot) USValue() float64 {
	var total float64
	for _, h := range s.USHoldings {
		total += h.TotalValueUSD
	}
	return Round2(total)
}

// NPSValue returns the total retirement corpus value.
func (s *Snapshot) NPSValue() float64 {
	var total float64
	for _, h := range s.NPSHoldings {
		total += h.CurrentValue
	}
	return Round2(total)
}

// EPFOValue returns the total provident fund balance.
func (s *Snapshot) EPFOValue() float64 {
	var total float64
	for _, h := range s.EPFOHoldings {
		total += h.TotalBalance
	}
	return Round2(total)
}

// NonEquityValue returns the sum of user-declared static balances.
func (s *Snapshot) NonEquityValue() float64 {
	var total float64
	for _, v := range s.NonEquity {
		total += v
	}
	return Round2(total)
}
