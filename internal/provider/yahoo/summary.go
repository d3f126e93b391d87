package yahoo

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"stockmcp/internal/quote"
)

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
		Website  string `json:"website"`
		Country  string `json:"country"`
		City     string `json:"city"`
	} `json:"assetProfile"`
	Price *struct {
		ShortName    string    `json:"shortName"`
		LongName     string    `json:"longName"`
		Currency     string    `json:"currency"`
		ExchangeName string    `json:"exchangeName"`
		MarketCap    *rawValue `json:"marketCap"`
	} `json:"price"`
	IncomeStatementHistoryQuarterly *struct {
		IncomeStatementHistory []incomeRow `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistoryQuarterly"`
}

type incomeRow struct {
	EndDate         *rawValue `json:"endDate"`
	TotalRevenue    *rawValue `json:"totalRevenue"`
	GrossProfit     *rawValue `json:"grossProfit"`
	OperatingIncome *rawValue `json:"operatingIncome"`
	NetIncome       *rawValue `json:"netIncome"`
}

// rawValue is Yahoo's {"raw": n, "fmt": "..."} number wrapper.
type rawValue struct {
	Raw float64 `json:"raw"`
}

func (c *Client) summary(ctx context.Context, symbol, modules string) (summaryResult, error) {
	q := url.Values{}
	q.Set("modules", modules)
	u := c.endpoint("/v10/finance/quoteSummary/"+url.PathEscape(symbol), q)

	req, err := newGet(ctx, u, c.header)
	if err != nil {
		return summaryResult{}, requestErr(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return summaryResult{}, requestErr(err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return summaryResult{}, err
	}

	var api summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return summaryResult{}, decodeErr(err)
	}
	if api.QuoteSummary.Error != nil {
		return summaryResult{}, quote.Malformedf("upstream error: %s: %s", api.QuoteSummary.Error.Code, api.QuoteSummary.Error.Description)
	}
	if len(api.QuoteSummary.Result) == 0 {
		return summaryResult{}, quote.Malformedf("no data for symbol %q", symbol)
	}
	return api.QuoteSummary.Result[0], nil
}

// Profile returns background company information for symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (quote.Profile, error) {
	res, err := c.summary(ctx, symbol, "assetProfile,price")
	if err != nil {
		return quote.Profile{}, err
	}
	if res.Price == nil {
		return quote.Profile{}, quote.Malformedf("profile for %q is missing price module", symbol)
	}
	p := quote.Profile{
		Symbol:   symbol,
		Name:     res.Price.LongName,
		Exchange: res.Price.ExchangeName,
	}
	if p.Name == "" {
		p.Name = res.Price.ShortName
	}
	if p.Name == "" {
		return quote.Profile{}, quote.Malformedf("profile for %q is missing company name", symbol)
	}
	if res.Price.MarketCap != nil {
		p.MarketCap = int64(res.Price.MarketCap.Raw)
	}
	if ap := res.AssetProfile; ap != nil {
		p.Sector = ap.Sector
		p.Industry = ap.Industry
		p.Website = ap.Website
		p.Country = ap.Country
		p.City = ap.City
	}
	return p, nil
}

// IncomeStatement returns the quarterly income statement for symbol,
// newest period first. Rows without an end date are skipped.
func (c *Client) IncomeStatement(ctx context.Context, symbol string) (quote.Statement, error) {
	res, err := c.summary(ctx, symbol, "incomeStatementHistoryQuarterly,price")
	if err != nil {
		return quote.Statement{}, err
	}
	if res.IncomeStatementHistoryQuarterly == nil {
		return quote.Statement{}, quote.Malformedf("no income statement for symbol %q", symbol)
	}
	st := quote.Statement{Symbol: symbol}
	if res.Price != nil {
		st.Currency = res.Price.Currency
	}
	for _, row := range res.IncomeStatementHistoryQuarterly.IncomeStatementHistory {
		if row.EndDate == nil {
			continue
		}
		p := quote.StatementPeriod{EndDate: time.Unix(int64(row.EndDate.Raw), 0).UTC()}
		if row.TotalRevenue != nil {
			p.Revenue = row.TotalRevenue.Raw
		}
		if row.GrossProfit != nil {
			p.GrossProfit = row.GrossProfit.Raw
		}
		if row.OperatingIncome != nil {
			p.OperatingIncome = row.OperatingIncome.Raw
		}
		if row.NetIncome != nil {
			p.NetIncome = row.NetIncome.Raw
		}
		st.Periods = append(st.Periods, p)
	}
	if len(st.Periods) == 0 {
		return quote.Statement{}, quote.Malformedf("income statement for %q has no periods", symbol)
	}
	return st, nil
}
