// Package service implements the tool-serving contract: validate the
// request, delegate to the upstream source under a bounded timeout, and
// return a normalized result or a typed error.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stockmcp/internal/history"
	"stockmcp/internal/quote"
	"stockmcp/internal/tickers"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	Source  quote.Source
	Tickers *tickers.Index
	// Timeout bounds each upstream call. Defaults to 5s.
	Timeout time.Duration
	// HistoryDays is the window for PriceHistory. Defaults to 30.
	HistoryDays int
	Logger      *slog.Logger
}

type Service struct {
	src         quote.Source
	idx         *tickers.Index
	timeout     time.Duration
	historyDays int
	log         *slog.Logger
}

func New(cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 30
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		src:         cfg.Source,
		idx:         cfg.Tickers,
		timeout:     cfg.Timeout,
		historyDays: cfg.HistoryDays,
		log:         cfg.Logger,
	}
}

// GetQuote returns the latest quote for a ticker. Symbols failing the
// ticker pattern are rejected before any upstream contact.
func (s *Service) GetQuote(ctx context.Context, rawSymbol string) (quote.Quote, error) {
	sym, err := quote.NormalizeSymbol(rawSymbol)
	if err != nil {
		return quote.Quote{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.Info("fetching quote", "symbol", sym, "source", s.src.Name())
	q, err := s.src.Quote(ctx, sym)
	if err != nil {
		err = normalizeErr(err)
		s.log.Error("quote failed", "symbol", sym, "err", err)
		return quote.Quote{}, err
	}
	q.Timestamp = time.Now().UTC()
	return q, nil
}

// PriceHistory returns the recent daily closes for a ticker together with
// a computed summary.
func (s *Service) PriceHistory(ctx context.Context, rawSymbol string) (history.Summary, []quote.Bar, error) {
	sym, err := quote.NormalizeSymbol(rawSymbol)
	if err != nil {
		return history.Summary{}, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.Info("fetching history", "symbol", sym, "days", s.historyDays)
	bars, err := s.src.History(ctx, sym, s.historyDays)
	if err != nil {
		err = normalizeErr(err)
		s.log.Error("history failed", "symbol", sym, "err", err)
		return history.Summary{}, nil, err
	}
	return history.Summarize(sym, bars), bars, nil
}

// StockInfo returns background company information for a ticker.
func (s *Service) StockInfo(ctx context.Context, rawSymbol string) (quote.Profile, error) {
	sym, err := quote.NormalizeSymbol(rawSymbol)
	if err != nil {
		return quote.Profile{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.Info("fetching profile", "symbol", sym)
	p, err := s.src.Profile(ctx, sym)
	if err != nil {
		err = normalizeErr(err)
		s.log.Error("profile failed", "symbol", sym, "err", err)
		return quote.Profile{}, err
	}
	return p, nil
}

// IncomeStatement returns the quarterly income statement for a ticker.
func (s *Service) IncomeStatement(ctx context.Context, rawSymbol string) (quote.Statement, error) {
	sym, err := quote.NormalizeSymbol(rawSymbol)
	if err != nil {
		return quote.Statement{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.Info("fetching income statement", "symbol", sym)
	st, err := s.src.IncomeStatement(ctx, sym)
	if err != nil {
		err = normalizeErr(err)
		s.log.Error("income statement failed", "symbol", sym, "err", err)
		return quote.Statement{}, err
	}
	return st, nil
}

// SearchTickers looks up candidate tickers by company name. Purely local,
// never contacts the upstream source.
func (s *Service) SearchTickers(query string, limit int) []tickers.Match {
	if s.idx == nil {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}
	return s.idx.Search(query, limit)
}

// normalizeErr maps any non-typed failure onto the error taxonomy.
// Timeouts and cancellations count as the upstream being unavailable.
func normalizeErr(err error) error {
	if quote.KindOf(err) != "" {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return quote.Unavailablef("upstream timed out")
	}
	if errors.Is(err, context.Canceled) {
		return quote.Unavailablef("request canceled")
	}
	return quote.Unavailablef("upstream: %v", err)
}
