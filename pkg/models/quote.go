package models

import (
    "encoding/json"
    "fmt"
    "strconv"
    "strings"

    "github.com/alim08/cmc_top/pkg/validation"
)

// CoinQuote is one entry of a scraped listing snapshot: a coin's display
// name, its market capitalization in USD, and its share of the summed
// capitalization across the snapshot. Rank is the 1-based position in the
// page's listing order.
type CoinQuote struct {
    Name        string  `json:"name" validate:"required,coinname"`
    MarketCap   float64 `json:"market_cap" validate:"required,marketcap"`
    MarketShare float64 `json:"market_share" validate:"percent"`
    Rank        int     `json:"rank" validate:"min=1"`
    Timestamp   int64   `json:"timestamp" validate:"required,timestamp"` // ms since epoch (UTC)
}

// ParseMarketCap converts a scraped capitalization string such as
// "$1,234,567.89" to its numeric value by stripping the currency symbol and
// thousands separators.
func ParseMarketCap(s string) (float64, error) {
    cleaned := strings.TrimSpace(s)
    cleaned = strings.ReplaceAll(cleaned, "$", "")
    cleaned = strings.ReplaceAll(cleaned, ",", "")
    if cleaned == "" {
        return 0, fmt.Errorf("empty market cap string %q", s)
    }
    v, err := strconv.ParseFloat(cleaned, 64)
    if err != nil {
        return 0, fmt.Errorf("market cap parse error for %q: %w", s, err)
    }
    return v, nil
}

// FormatAmount renders a float the way the snapshot CSV wants it: shortest
// exact decimal representation, no thousands separators.
func FormatAmount(v float64) string {
    return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate validates the CoinQuote struct
func (q CoinQuote) Validate() error {
    if errors := validation.ValidateStruct(q); len(errors) > 0 {
        return errors
    }
    return nil
}

// Sanitize cleans the CoinQuote data in place
func (q *CoinQuote) Sanitize() {
    q.Name = validation.SanitizeString(q.Name)
    q.MarketShare = validation.SanitizeShare(q.MarketShare)
    q.Timestamp = validation.SanitizeTimestamp(q.Timestamp)
}

// ToMap converts CoinQuote to a map for Redis stream/hash storage
func (q CoinQuote) ToMap() map[string]interface{} {
    return map[string]interface{}{
        "name":         q.Name,
        "market_cap":   fmt.Sprintf("%.2f", q.MarketCap),
        "market_share": fmt.Sprintf("%.6f", q.MarketShare),
        "rank":         q.Rank,
        "ts_ms":        q.Timestamp,
    }
}

// ToJSON converts to JSON string for pub/sub
func (q CoinQuote) ToJSON() (string, error) {
    data, err := json.Marshal(q)
    if err != nil {
        return "", fmt.Errorf("json marshal error: %w", err)
    }
    return string(data), nil
}

// CoinQuoteFromJSON creates a CoinQuote from a JSON string
func CoinQuoteFromJSON(data string) (CoinQuote, error) {
    var q CoinQuote
    if err := json.Unmarshal([]byte(data), &q); err != nil {
        return q, fmt.Errorf("json unmarshal error: %w", err)
    }

    q.Sanitize()
    if err := q.Validate(); err != nil {
        return q, fmt.Errorf("validation failed: %w", err)
    }

    return q, nil
}

// Snapshot is the full result of one scrape run, in source listing order.
type Snapshot struct {
    CapturedAt int64       `json:"captured_at" validate:"required,timestamp"` // ms since epoch (UTC)
    Quotes     []CoinQuote `json:"quotes" validate:"required,min=1,dive"`
}

// TotalMarketCap sums the capitalization of every quote in the snapshot.
func (s Snapshot) TotalMarketCap() float64 {
    var total float64
    for _, q := range s.Quotes {
        total += q.MarketCap
    }
    return total
}

// Validate validates the Snapshot struct and every quote in it
func (s Snapshot) Validate() error {
    if errors := validation.ValidateStruct(s); len(errors) > 0 {
        return errors
    }
    return nil
}

// ToJSON converts the snapshot to a JSON string for pub/sub
func (s Snapshot) ToJSON() (string, error) {
    data, err := json.Marshal(s)
    if err != nil {
        return "", fmt.Errorf("json marshal error: %w", err)
    }
    return string(data), nil
}
