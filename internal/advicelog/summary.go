package advicelog

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type summaryRow struct {
	Symbol    string
	Buy       int
	Sell      int
	Hold      int
	LastScore float64
}

func summaryCSVPath(t time.Time) string {
	return filepath.Join(logDir(), "summary", t.Format("2006-01-02")+".csv")
}

// SummarizeDay aggregates a day's advice per symbol into a CSV. A day with no
// advice file yields an empty path and no error.
func SummarizeDay(t time.Time) (string, error) {
	inPath := dailyFilepath(t)
	if _, err := os.Stat(inPath); err != nil {
		return "", nil
	}
	f, err := os.Open(inPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rows := map[string]*summaryRow{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		row := rows[e.Symbol]
		if row == nil {
			row = &summaryRow{Symbol: e.Symbol}
			rows[e.Symbol] = row
		}
		switch e.Action {
		case "BUY":
			row.Buy++
		case "SELL":
			row.Sell++
		default:
			row.Hold++
		}
		row.LastScore = e.Score
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	outPath := summaryCSVPath(t)
	if err := writeSummaryCSV(outPath, rows); err != nil {
		return "", err
	}
	return outPath, nil
}

// SummarizeToday summarizes the current IST day.
func SummarizeToday() (string, error) {
	return SummarizeDay(istNow())
}

func writeSummaryCSV(path string, rows map[string]*summaryRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	symbols := make([]string, 0, len(rows))
	for s := range rows {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	w := csv.NewWriter(f)
	if err := w.Write([]string{"symbol", "buy", "sell", "hold", "last_score"}); err != nil {
		return err
	}
	for _, s := range symbols {
		r := rows[s]
		rec := []string{
			r.Symbol,
			strconv.Itoa(r.Buy),
			strconv.Itoa(r.Sell),
			strconv.Itoa(r.Hold),
			fmt.Sprintf("%.2f", r.LastScore),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
