package wealthpulse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all user-supplied settings: which brokers to parse,
// static non-equity balances, per-symbol verdict overrides, and the
// dashboard/email/news knobs used downstream.
type Config struct {
	Profile   Profile                 `yaml:"profile"`
	Fire      FireTarget              `yaml:"fire"`
	Brokers   map[string]BrokerConfig `yaml:"brokers"`
	NonEquity map[string]float64      `yaml:"non_equity"`
	Verdicts  map[string]Verdict      `yaml:"verdicts"`
	Email     EmailConfig             `yaml:"email"`
	Dashboard DashboardConfig         `yaml:"dashboard"`
	NewsFeeds map[string]string       `yaml:"news_feeds"`
}

// Profile identifies the investor and the display currency context.
type Profile struct {
	Name     string  `yaml:"name"`
	Age      int     `yaml:"age"`
	Currency string  `yaml:"currency"`
	USDToINR float64 `yaml:"usd_to_inr"`
}

// FireTarget parameterizes the financial-independence projection.
type FireTarget struct {
	TargetAmount      float64 `yaml:"target_amount"`
	TargetAge         int     `yaml:"target_age"`
	MonthlyExpenses   float64 `yaml:"monthly_expenses"`
	ExpectedReturnPct float64 `yaml:"expected_return_pct"`
	InflationPct      float64 `yaml:"inflation_pct"`
}

// BrokerConfig toggles one statement adapter.
type BrokerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EmailConfig configures the morning brief delivery.
type EmailConfig struct {
	Enabled        bool   `yaml:"enabled"`
	SMTPServer     string `yaml:"smtp_server"`
	SMTPPort       int    `yaml:"smtp_port"`
	SenderEmail    string `yaml:"sender_email"`
	AppPassword    string `yaml:"app_password"`
	RecipientEmail string `yaml:"recipient_email"`
}

// DashboardConfig configures the HTML dashboard sections.
type DashboardConfig struct {
	Theme            string `yaml:"theme"`
	ShowFireProgress bool   `yaml:"show_fire_progress"`
	ShowSectorChart  bool   `yaml:"show_sector_chart"`
	ShowMarketMovers bool   `yaml:"show_market_movers"`
	ShowNews         bool   `yaml:"show_news"`
	TopNMovers       int    `yaml:"top_n_movers"`
}

// DefaultConfig returns the configuration used when no config file
// exists. The Indian brokers most users start with are enabled; the US
// custodians are opt-in.
func DefaultConfig() *Config {
	return &Config{
		Profile: Profile{Name: "Investor", Age: 30, Currency: "INR", USDToINR: 87.50},
		Fire: FireTarget{
			TargetAmount:      100000000,
			TargetAge:         45,
			MonthlyExpenses:   100000,
			ExpectedReturnPct: 12,
			InflationPct:      6,
		},
		Brokers: map[string]BrokerConfig{
			"groww":          {Enabled: true},
			"zerodha":        {Enabled: true},
			"mutual_funds":   {Enabled: true},
			"fidelity":       {Enabled: false},
			"morgan_stanley": {Enabled: false},
		},
		NonEquity: map[string]float64{
			"nps": 0, "epf": 0, "ppf": 0, "fd": 0,
			"bonds": 0, "gold": 0, "real_estate": 0, "cash": 0, "crypto": 0,
		},
		Email: EmailConfig{
			SMTPServer: "smtp.gmail.com",
			SMTPPort:   465,
		},
		Dashboard: DashboardConfig{
			Theme:            "dark",
			ShowFireProgress: true,
			ShowSectorChart:  true,
			ShowMarketMovers: true,
			ShowNews:         true,
			TopNMovers:       5,
		},
		NewsFeeds: map[string]string{
			"NIFTY 50": "https://news.google.com/rss/search?q=nifty+50+stock+market&hl=en-IN",
			"Market":   "https://news.google.com/rss/search?q=indian+stock+market+today&hl=en-IN",
		},
	}
}

// LoadConfig reads path and merges it over the defaults. A missing file
// yields the defaults unchanged; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config back to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// BrokerEnabled reports whether the named adapter should run.
func (c *Config) BrokerEnabled(name string) bool {
	return c.Brokers[name].Enabled
}
