package tickers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Entry is one row of the ticker lookup table.
type Entry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Match is a search hit with its relevance score.
type Match struct {
	Entry
	Score int `json:"score"`
}

//go:embed tickers.json
var tableJSON []byte

// Index answers "what is the ticker for <company>" over an in-memory table.
type Index struct {
	entries []Entry
}

// NewIndex loads the embedded ticker table.
func NewIndex() (*Index, error) {
	var entries []Entry
	if err := json.Unmarshal(tableJSON, &entries); err != nil {
		return nil, fmt.Errorf("load ticker table: %w", err)
	}
	return &Index{entries: entries}, nil
}

// Search returns the best-scoring entries for a company name or partial
// ticker, at most limit rows, best first. An empty query matches nothing.
func (ix *Index) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []Match
	for _, e := range ix.entries {
		if s := score(q, e); s > 0 {
			out = append(out, Match{Entry: e, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Symbol < out[j].Symbol
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func score(q string, e Entry) int {
	name := strings.ToLower(e.Name)
	sym := strings.ToLower(e.Symbol)
	switch {
	case q == sym || q == name:
		return 100
	case strings.HasPrefix(name, q):
		return 80
	case wordPrefix(name, q):
		return 60
	case strings.Contains(name, q):
		return 40
	case strings.HasPrefix(sym, q):
		return 30
	}
	return 0
}

func wordPrefix(name, q string) bool {
	for _, w := range strings.Fields(name) {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}
