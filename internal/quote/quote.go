package quote

import (
	"context"
	"time"
)

// Quote is the normalized shape returned for a single ticker.
// Constructed fresh per call from upstream data; never mutated after that.
type Quote struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	// Timestamp is when this response was produced, not when the market
	// last traded; see MarketTime for the upstream-reported trade time.
	Timestamp  time.Time `json:"timestamp"`
	MarketTime time.Time `json:"market_time,omitempty"`
	Source     string    `json:"source"`
}

// Bar is one daily close from a price history.
type Bar struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// Profile is background information about a listed company.
type Profile struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Sector    string `json:"sector,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Website   string `json:"website,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	MarketCap int64  `json:"market_cap,omitempty"`
}

// StatementPeriod is one quarterly income-statement column.
type StatementPeriod struct {
	EndDate         time.Time `json:"end_date"`
	Revenue         float64   `json:"revenue"`
	GrossProfit     float64   `json:"gross_profit"`
	OperatingIncome float64   `json:"operating_income"`
	NetIncome       float64   `json:"net_income"`
}

// Statement is a quarterly income statement, newest period first.
type Statement struct {
	Symbol   string            `json:"symbol"`
	Currency string            `json:"currency"`
	Periods  []StatementPeriod `json:"periods"`
}

// Source is an upstream market-data provider keyed by ticker symbol.
//
//go:generate mockgen -package=service_test -destination=../service/mock_source_test.go -source=quote.go Source
type Source interface {
	Name() string
	Quote(ctx context.Context, symbol string) (Quote, error)
	History(ctx context.Context, symbol string, days int) ([]Bar, error)
	Profile(ctx context.Context, symbol string) (Profile, error)
	IncomeStatement(ctx context.Context, symbol string) (Statement, error)
}
