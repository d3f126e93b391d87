package yahoo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"stockmcp/internal/quote"
)

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency           string   `json:"currency"`
		Symbol             string   `json:"symbol"`
		ExchangeName       string   `json:"exchangeName"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		RegularMarketTime  int64    `json:"regularMarketTime"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *Client) chart(ctx context.Context, symbol string, days int) (chartResult, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", rangeParam(days))
	u := c.endpoint("/v8/finance/chart/"+url.PathEscape(symbol), q)

	req, err := newGet(ctx, u, c.header)
	if err != nil {
		return chartResult{}, requestErr(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chartResult{}, requestErr(err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return chartResult{}, err
	}

	var api chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return chartResult{}, decodeErr(err)
	}
	if api.Chart.Error != nil {
		return chartResult{}, quote.Malformedf("upstream error: %s: %s", api.Chart.Error.Code, api.Chart.Error.Description)
	}
	if len(api.Chart.Result) == 0 {
		return chartResult{}, quote.Malformedf("no data for symbol %q", symbol)
	}
	return api.Chart.Result[0], nil
}

// Quote returns the latest regular-market price for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	res, err := c.chart(ctx, symbol, 1)
	if err != nil {
		return quote.Quote{}, err
	}
	if res.Meta.RegularMarketPrice == nil {
		return quote.Quote{}, quote.Malformedf("quote for %q is missing price", symbol)
	}
	if res.Meta.Currency == "" {
		return quote.Quote{}, quote.Malformedf("quote for %q is missing currency", symbol)
	}
	q := quote.Quote{
		Symbol:    symbol,
		Price:     *res.Meta.RegularMarketPrice,
		Currency:  res.Meta.Currency,
		Timestamp: time.Now().UTC(),
		Source:    c.name,
	}
	if res.Meta.RegularMarketTime > 0 {
		q.MarketTime = time.Unix(res.Meta.RegularMarketTime, 0).UTC()
	}
	return q, nil
}

// History returns the daily closes for symbol over roughly the last days days.
// Null closes (market holidays, partial sessions) are skipped.
func (c *Client) History(ctx context.Context, symbol string, days int) ([]quote.Bar, error) {
	res, err := c.chart(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	if len(res.Indicators.Quote) == 0 {
		return nil, quote.Malformedf("history for %q has no price series", symbol)
	}
	closes := res.Indicators.Quote[0].Close
	if len(closes) != len(res.Timestamp) {
		return nil, quote.Malformedf("history for %q has %d closes for %d timestamps", symbol, len(closes), len(res.Timestamp))
	}
	bars := make([]quote.Bar, 0, len(closes))
	for i, cl := range closes {
		if cl == nil {
			continue
		}
		bars = append(bars, quote.Bar{Date: time.Unix(res.Timestamp[i], 0).UTC(), Close: *cl})
	}
	if len(bars) == 0 {
		return nil, quote.Malformedf("history for %q is empty", symbol)
	}
	return bars, nil
}

// rangeParam maps a day count onto the nearest supported chart range.
func rangeParam(days int) string {
	switch {
	case days <= 1:
		return "1d"
	case days <= 5:
		return "5d"
	case days <= 31:
		return "1mo"
	case days <= 93:
		return "3mo"
	case days <= 186:
		return "6mo"
	case days <= 366:
		return "1y"
	default:
		return strconv.Itoa((days+364)/365) + "y"
	}
}
