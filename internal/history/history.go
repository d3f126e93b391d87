package history

import (
	"sort"
	"time"

	"stockmcp/internal/quote"
)

// Summary condenses a series of daily closes into the numbers a caller
// actually reads: the endpoints, the range, and the percent change.
type Summary struct {
	Symbol     string    `json:"symbol"`
	Days       int       `json:"days"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	FirstClose float64   `json:"first_close"`
	LastClose  float64   `json:"last_close"`
	Low        float64   `json:"low"`
	High       float64   `json:"high"`
	ChangePct  float64   `json:"change_pct"`
}

// Summarize computes a Summary over bars. Bars are sorted by date before
// computing; for equal dates, later input wins. An empty series yields a
// zero Summary with Days == 0.
func Summarize(symbol string, bars []quote.Bar) Summary {
	if len(bars) == 0 {
		return Summary{Symbol: symbol}
	}

	sorted := make([]quote.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	s := Summary{
		Symbol:     symbol,
		Days:       len(sorted),
		Start:      sorted[0].Date,
		End:        sorted[len(sorted)-1].Date,
		FirstClose: sorted[0].Close,
		LastClose:  sorted[len(sorted)-1].Close,
		Low:        sorted[0].Close,
		High:       sorted[0].Close,
	}
	for _, b := range sorted[1:] {
		if b.Close < s.Low {
			s.Low = b.Close
		}
		if b.Close > s.High {
			s.High = b.Close
		}
	}
	if s.FirstClose != 0 {
		s.ChangePct = (s.LastClose - s.FirstClose) / s.FirstClose * 100
	}
	return s
}
