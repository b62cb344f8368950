package report

import (
    "encoding/csv"
    "os"
    "path/filepath"
    "regexp"
    "testing"
    "time"

    "github.com/alim08/cmc_top/pkg/models"
)

func testQuotes(ts int64) []models.CoinQuote {
    return []models.CoinQuote{
        {Name: "Bitcoin", MarketCap: 1234567.89, MarketShare: 51.5, Rank: 1, Timestamp: ts},
        {Name: "Ethereum", MarketCap: 420000, MarketShare: 17.5, Rank: 2, Timestamp: ts},
        {Name: "Tether", MarketCap: 110000, MarketShare: 31, Rank: 3, Timestamp: ts},
    }
}

func TestFilename(t *testing.T) {
    now := time.Date(2026, 8, 26, 9, 5, 0, 0, time.Local)
    got := Filename(now)
    if got != "Top100 09.05 26.08.2026.csv" {
        t.Errorf("Filename = %q; want %q", got, "Top100 09.05 26.08.2026.csv")
    }

    // Pattern holds for arbitrary run times: "Top100 HH.MM DD.MM.YYYY.csv"
    pattern := regexp.MustCompile(`^Top100 \d{2}\.\d{2} \d{2}\.\d{2}\.\d{4}\.csv$`)
    if !pattern.MatchString(Filename(time.Now())) {
        t.Errorf("Filename(now) = %q; does not match pattern", Filename(time.Now()))
    }
}

func TestWrite(t *testing.T) {
    dir := t.TempDir()
    now := time.Now()
    quotes := testQuotes(now.UnixMilli())

    path, err := Write(dir, now, quotes)
    if err != nil {
        t.Fatalf("Write: %v", err)
    }
    if filepath.Dir(path) != dir {
        t.Errorf("path = %q; want file inside %q", path, dir)
    }
    if filepath.Base(path) != Filename(now) {
        t.Errorf("file name = %q; want %q", filepath.Base(path), Filename(now))
    }

    f, err := os.Open(path)
    if err != nil {
        t.Fatalf("open written file: %v", err)
    }
    defer f.Close()

    r := csv.NewReader(f)
    r.Comma = ';'
    rows, err := r.ReadAll()
    if err != nil {
        t.Fatalf("read back: %v", err)
    }

    if len(rows) != len(quotes)+1 {
        t.Fatalf("row count = %d; want %d", len(rows), len(quotes)+1)
    }
    if rows[0][0] != "Name" || rows[0][1] != "MC" || rows[0][2] != "MP" {
        t.Errorf("header = %v; want [Name MC MP]", rows[0])
    }
    if rows[1][0] != "Bitcoin" || rows[1][1] != "1234567.89" || rows[1][2] != "51.5" {
        t.Errorf("first row = %v; want [Bitcoin 1234567.89 51.5]", rows[1])
    }
    if rows[3][0] != "Tether" || rows[3][1] != "110000" || rows[3][2] != "31" {
        t.Errorf("last row = %v; want [Tether 110000 31]", rows[3])
    }
}

func TestWrite_RawHeaderLine(t *testing.T) {
    dir := t.TempDir()
    now := time.Now()

    path, err := Write(dir, now, testQuotes(now.UnixMilli()))
    if err != nil {
        t.Fatalf("Write: %v", err)
    }
    data, err := os.ReadFile(path)
    if err != nil {
        t.Fatalf("read back: %v", err)
    }
    // First physical line is exactly the fixed header.
    want := "Name;MC;MP\n"
    if len(data) < len(want) || string(data[:len(want)]) != want {
        t.Errorf("file starts with %q; want %q", string(data[:min(len(data), len(want))]), want)
    }
}

func TestWrite_BadDir(t *testing.T) {
    _, err := Write(filepath.Join(t.TempDir(), "does", "not", "exist"), time.Now(), testQuotes(time.Now().UnixMilli()))
    if err == nil {
        t.Fatal("expected error for missing directory, got nil")
    }
}

func min(a, b int) int {
    if a < b {
        return a
    }
    return b
}
