package extract

import (
    "fmt"
    "strings"
    "time"

    "github.com/PuerkitoBio/goquery"
    "github.com/alim08/cmc_top/pkg/config"
    "github.com/alim08/cmc_top/pkg/models"
)

// Listing parses rendered markup and returns one CoinQuote per listed coin,
// in document order, with each quote's share of the summed capitalization
// already computed.
//
// The name and capitalization node lists must pair up one-to-one: a length
// mismatch means the page layout drifted under the selectors, and is
// reported as an error instead of silently zipping the shorter prefix.
func Listing(html string, sel config.Selectors, capturedAt time.Time) ([]models.CoinQuote, error) {
    doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
    if err != nil {
        return nil, fmt.Errorf("markup parse error: %w", err)
    }

    table := doc.Find(sel.Table).First()
    if table.Length() == 0 {
        return nil, fmt.Errorf("listing table %q not found", sel.Table)
    }

    names := table.Find(sel.Name)
    caps := table.Find(sel.MarketCap)
    if names.Length() != caps.Length() {
        return nil, fmt.Errorf("selector mismatch: %d name nodes vs %d market cap nodes",
            names.Length(), caps.Length())
    }
    if names.Length() == 0 {
        return nil, fmt.Errorf("no listing entries matched %q / %q", sel.Name, sel.MarketCap)
    }

    ts := capturedAt.UnixMilli()
    quotes := make([]models.CoinQuote, 0, caps.Length())
    var total float64
    var capErr error
    caps.EachWithBreak(func(i int, s *goquery.Selection) bool {
        v, err := models.ParseMarketCap(s.Text())
        if err != nil {
            capErr = fmt.Errorf("listing entry %d: %w", i+1, err)
            return false
        }
        total += v
        quotes = append(quotes, models.CoinQuote{
            MarketCap: v,
            Rank:      i + 1,
            Timestamp: ts,
        })
        return true
    })
    if capErr != nil {
        return nil, capErr
    }
    if total <= 0 {
        return nil, fmt.Errorf("summed market cap is %v, cannot compute shares", total)
    }

    names.Each(func(i int, s *goquery.Selection) {
        quotes[i].Name = s.Text()
    })

    for i := range quotes {
        quotes[i].MarketShare = quotes[i].MarketCap / total * 100
        quotes[i].Sanitize()
        if err := quotes[i].Validate(); err != nil {
            return nil, fmt.Errorf("listing entry %d (%q): %w", i+1, quotes[i].Name, err)
        }
    }

    return quotes, nil
}
