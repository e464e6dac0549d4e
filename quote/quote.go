// Package quote fetches live prices, index levels, and market headlines
// used to enrich the dashboard and the daily brief. Prices come from the
// public Yahoo Finance chart endpoint, headlines from RSS feeds. Every
// fetch is best-effort: a symbol that cannot be quoted is skipped, never
// an error for the caller.
package quote

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/wealthpulse/wealthpulse"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Service fetches quotes through a disk-cached HTTP client so that a
// dashboard run followed by an email run does not hit the provider twice.
type Service struct {
	client   *http.Client
	endpoint string
}

// NewService returns a Service backed by the daily-expiring cache.
func NewService() *Service {
	return &Service{client: daily(), endpoint: chartURL}
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key embeds today's date, so cached entries expire daily.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client whose cache expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// pickFloat extracts a single float from a decoded JSON document.
func pickFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}

// Latest returns the current price and the previous close for one provider
// ticker.
func (s *Service) Latest(ticker string) (price, prevClose float64, err error) {
	addr := s.endpoint + url.PathEscape(ticker) + "?range=1d&interval=1d"
	var jobj any
	if err := jwget(s.client, addr, &jobj); err != nil {
		return 0, 0, fmt.Errorf("fetching %q: %w", ticker, err)
	}
	price, err = pickFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return 0, 0, fmt.Errorf("quote for %q: %w", ticker, err)
	}
	prevClose, err = pickFloat(jobj, "$.chart.result[0].meta.chartPreviousClose")
	if err != nil {
		// Some instruments omit the previous close; use a flat day.
		prevClose = price
	}
	return price, prevClose, nil
}

// Quotes returns the latest price per portfolio symbol. tickerMap maps a
// symbol to its provider ticker; symbols missing from the map fall back to
// the NSE convention. Symbols that cannot be quoted are skipped with a log
// line so that a single delisted stock never fails the whole run.
func (s *Service) Quotes(symbols []string, tickerMap map[string]string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		ticker, ok := tickerMap[sym]
		if !ok {
			ticker = wealthpulse.ProviderTicker(sym)
		}
		price, _, err := s.Latest(ticker)
		if err != nil {
			log.Printf("quote: %v", err)
			continue
		}
		if price > 0 {
			prices[sym] = wealthpulse.Round2(price)
		}
	}
	return prices
}

// An IndexQuote is one benchmark's level and day change.
type IndexQuote struct {
	Name      string
	Price     float64
	Change    float64
	ChangePct float64
}

// indexTickers lists the benchmarks, commodities, and currency pairs shown
// on the dashboard, in display order.
var indexTickers = []struct{ Name, Ticker string }{
	{"NIFTY 50", "^NSEI"},
	{"SENSEX", "^BSESN"},
	{"NIFTY Bank", "^NSEBANK"},
	{"NIFTY IT", "^CNXIT"},
	{"NIFTY Midcap", "NIFTY_MIDCAP_100.NS"},
	{"India VIX", "^INDIAVIX"},
	{"Gold (INR/10g)", "GC=F"},
	{"Silver (USD)", "SI=F"},
	{"Crude Oil", "CL=F"},
	{"USD/INR", "USDINR=X"},
	{"US 10Y Yield", "^TNX"},
	{"S&P 500", "^GSPC"},
	{"NASDAQ", "^IXIC"},
	{"Nifty Smallcap", "^CNXSMALLCAP"},
}

// Indices returns the benchmark levels in display order. Benchmarks that
// cannot be quoted are omitted.
func (s *Service) Indices() []IndexQuote {
	quotes := make([]IndexQuote, 0, len(indexTickers))
	for _, it := range indexTickers {
		price, prev, err := s.Latest(it.Ticker)
		if err != nil {
			log.Printf("index: %v", err)
			continue
		}
		q := IndexQuote{Name: it.Name, Price: wealthpulse.Round2(price)}
		if prev > 0 {
			q.Change = wealthpulse.Round2(price - prev)
			q.ChangePct = wealthpulse.Round2((price - prev) / prev * 100)
		}
		quotes = append(quotes, q)
	}
	return quotes
}

// A Mover is one constituent's day move.
type Mover struct {
	Symbol    string
	Price     float64
	Change    float64
	ChangePct float64
}

// nifty50 holds the NIFTY 50 constituents scanned for market movers.
var nifty50 = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"HINDUNILVR.NS", "ITC.NS", "SBIN.NS", "BHARTIARTL.NS", "KOTAKBANK.NS",
	"LT.NS", "AXISBANK.NS", "BAJFINANCE.NS", "HCLTECH.NS", "ASIANPAINT.NS",
	"MARUTI.NS", "SUNPHARMA.NS", "TITAN.NS", "WIPRO.NS", "ULTRACEMCO.NS",
	"BAJAJFINSV.NS", "NESTLEIND.NS", "TATAMOTORS.NS", "NTPC.NS", "POWERGRID.NS",
	"M&M.NS", "TATASTEEL.NS", "TECHM.NS", "ONGC.NS", "HDFCLIFE.NS",
	"COALINDIA.NS", "ADANIENT.NS", "ADANIPORTS.NS", "DRREDDY.NS", "CIPLA.NS",
	"DIVISLAB.NS", "BRITANNIA.NS", "JSWSTEEL.NS", "SBILIFE.NS", "TATACONSUM.NS",
	"GRASIM.NS", "INDUSINDBK.NS", "BAJAJ-AUTO.NS", "EICHERMOT.NS", "APOLLOHOSP.NS",
	"HEROMOTOCO.NS", "BPCL.NS", "SHRIRAMFIN.NS", "HINDALCO.NS", "TRENT.NS",
}

// TopMovers scans the NIFTY 50 constituents and returns the day's biggest
// gainers (percent change descending) and losers (percent change
// ascending), at most n of each.
func (s *Service) TopMovers(n int) (gainers, losers []Mover) {
	movers := make([]Mover, 0, len(nifty50))
	for _, ticker := range nifty50 {
		price, prev, err := s.Latest(ticker)
		if err != nil || prev <= 0 {
			continue
		}
		movers = append(movers, Mover{
			Symbol:    ticker[:len(ticker)-len(".NS")],
			Price:     wealthpulse.Round2(price),
			Change:    wealthpulse.Round2(price - prev),
			ChangePct: wealthpulse.Round2((price - prev) / prev * 100),
		})
	}
	return SplitMovers(movers, n)
}

// SplitMovers partitions movers into the n biggest gainers and the n
// biggest losers.
func SplitMovers(movers []Mover, n int) (gainers, losers []Mover) {
	sorted := make([]Mover, len(movers))
	copy(sorted, movers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ChangePct > sorted[j].ChangePct })

	for _, m := range sorted {
		if m.ChangePct > 0 && len(gainers) < n {
			gainers = append(gainers, m)
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		m := sorted[i]
		if m.ChangePct < 0 && len(losers) < n {
			losers = append(losers, m)
		}
	}
	return gainers, losers
}
