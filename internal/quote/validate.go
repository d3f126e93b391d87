package quote

import (
	"regexp"
	"strings"
)

// tickerPattern accepts exchange tickers: letters and digits with an
// optional dot-separated suffix (e.g. BRK.B, RDS.A), up to 10 characters.
var tickerPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(\.[A-Z0-9]+)?$`)

const maxSymbolLen = 10

// NormalizeSymbol trims and upper-cases a raw ticker, then validates it
// against the ticker pattern. Violations fail with KindInvalidSymbol and
// must never reach the upstream source.
func NormalizeSymbol(raw string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(raw))
	if sym == "" {
		return "", Invalidf("symbol is required")
	}
	if len(sym) > maxSymbolLen {
		return "", Invalidf("symbol %q exceeds %d characters", sym, maxSymbolLen)
	}
	if !tickerPattern.MatchString(sym) {
		return "", Invalidf("symbol %q is not a valid ticker", sym)
	}
	return sym, nil
}
