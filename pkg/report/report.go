package report

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"
    "time"

    "github.com/alim08/cmc_top/pkg/models"
)

// FilenameTimeLayout renders as "HH.MM DD.MM.YYYY" in local time.
const FilenameTimeLayout = "15.04 02.01.2006"

// header is the fixed three-column snapshot header.
var header = []string{"Name", "MC", "MP"}

// Filename returns the snapshot file name for a run captured at now.
func Filename(now time.Time) string {
    return fmt.Sprintf("Top100 %s.csv", now.Format(FilenameTimeLayout))
}

// Write persists the snapshot as a semicolon-delimited UTF-8 CSV in dir:
// the header row followed by one row per quote in listing order, market cap
// and share as plain decimals. Returns the path of the written file.
func Write(dir string, now time.Time, quotes []models.CoinQuote) (string, error) {
    path := filepath.Join(dir, Filename(now))
    f, err := os.Create(path)
    if err != nil {
        return "", fmt.Errorf("create snapshot file: %w", err)
    }

    w := csv.NewWriter(f)
    w.Comma = ';'

    if err := w.Write(header); err != nil {
        f.Close()
        return "", fmt.Errorf("write header: %w", err)
    }
    for _, q := range quotes {
        row := []string{q.Name, models.FormatAmount(q.MarketCap), models.FormatAmount(q.MarketShare)}
        if err := w.Write(row); err != nil {
            f.Close()
            return "", fmt.Errorf("write row for %q: %w", q.Name, err)
        }
    }

    w.Flush()
    if err := w.Error(); err != nil {
        f.Close()
        return "", fmt.Errorf("flush snapshot: %w", err)
    }
    if err := f.Close(); err != nil {
        return "", fmt.Errorf("close snapshot file: %w", err)
    }
    return path, nil
}
