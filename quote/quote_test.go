package quote

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chartJSON(price, prev float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"regularMarketPrice":%g,"chartPreviousClose":%g}}],"error":null}}`, price, prev)
}

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	srv := httptest.NewServer(handler)
	svc := &Service{client: srv.Client(), endpoint: srv.URL + "/v8/finance/chart/"}
	return svc, srv
}

func TestLatest(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON(2850.5, 2800))
	}))
	defer srv.Close()

	price, prev, err := svc.Latest("RELIANCE.NS")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if price != 2850.5 {
		t.Errorf("price = %v, want 2850.5", price)
	}
	if prev != 2800 {
		t.Errorf("prevClose = %v, want 2800", prev)
	}
}

func TestLatestMissingPrevClose(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":101.25}}],"error":null}}`)
	}))
	defer srv.Close()

	price, prev, err := svc.Latest("GC=F")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if prev != price {
		t.Errorf("prevClose = %v, want price %v when the payload has no previous close", prev, price)
	}
}

func TestLatestBadPayload(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":"Not Found"}}`)
	}))
	defer srv.Close()

	if _, _, err := svc.Latest("BOGUS"); err == nil {
		t.Fatal("Latest on an empty result should fail")
	}
}

func TestQuotes(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v8/finance/chart/RELIANCE.NS":
			fmt.Fprint(w, chartJSON(2850.456, 2800))
		case "/v8/finance/chart/TCS.BO":
			fmt.Fprint(w, chartJSON(4100, 4000))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	prices := svc.Quotes([]string{"RELIANCE", "TCS", "DELISTED"}, map[string]string{"TCS": "TCS.BO"})

	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2 (the unquotable symbol must be skipped): %v", len(prices), prices)
	}
	if prices["RELIANCE"] != 2850.46 {
		t.Errorf("RELIANCE = %v, want 2850.46", prices["RELIANCE"])
	}
	if prices["TCS"] != 4100 {
		t.Errorf("TCS = %v, want 4100 (ticker map must win over the NSE fallback)", prices["TCS"])
	}
}

func TestIndices(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON(103, 100))
	}))
	defer srv.Close()

	quotes := svc.Indices()
	if len(quotes) != len(indexTickers) {
		t.Fatalf("got %d index quotes, want %d", len(quotes), len(indexTickers))
	}
	if quotes[0].Name != "NIFTY 50" {
		t.Errorf("first index = %q, want NIFTY 50 (display order)", quotes[0].Name)
	}
	if quotes[0].Change != 3 || quotes[0].ChangePct != 3 {
		t.Errorf("change = %v (%v%%), want 3 (3%%)", quotes[0].Change, quotes[0].ChangePct)
	}
}

func TestSplitMovers(t *testing.T) {
	movers := []Mover{
		{Symbol: "A", ChangePct: 2.5},
		{Symbol: "B", ChangePct: -1.0},
		{Symbol: "C", ChangePct: 0.5},
		{Symbol: "D", ChangePct: -3.2},
		{Symbol: "E", ChangePct: 0},
	}

	gainers, losers := SplitMovers(movers, 5)
	if len(gainers) != 2 || gainers[0].Symbol != "A" || gainers[1].Symbol != "C" {
		t.Errorf("gainers = %v, want A then C", gainers)
	}
	if len(losers) != 2 || losers[0].Symbol != "D" || losers[1].Symbol != "B" {
		t.Errorf("losers = %v, want D then B", losers)
	}

	gainers, losers = SplitMovers(movers, 1)
	if len(gainers) != 1 || gainers[0].Symbol != "A" {
		t.Errorf("top gainer = %v, want A", gainers)
	}
	if len(losers) != 1 || losers[0].Symbol != "D" {
		t.Errorf("top loser = %v, want D", losers)
	}

	// Flat symbols count as neither.
	gainers, losers = SplitMovers([]Mover{{Symbol: "E", ChangePct: 0}}, 5)
	if len(gainers) != 0 || len(losers) != 0 {
		t.Errorf("flat mover classified: gainers=%v losers=%v", gainers, losers)
	}
}
