// Package report renders an analysis result as plain text, the CLI stand-in
// for the original dashboard view.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"trade-advisor/internal/types"
)

// Render writes the suggestion, its reasons and the last tailRows rows of
// indicator values. Undefined values print as "-".
func Render(w io.Writer, res *types.AnalysisResult, tailRows int) {
	fmt.Fprintf(w, "%s — Last Close: %.2f (source: %s, %s)\n",
		res.Symbol, res.Price, res.Provider, time.Unix(res.Time, 0).Format("2006-01-02"))
	fmt.Fprintf(w, "Suggestion: %s (score %.1f)\n", res.Advice.Action, res.Advice.Score)
	fmt.Fprintln(w, "Reasons:")
	for _, r := range res.Advice.Reasons {
		fmt.Fprintf(w, "  - %s\n", r)
	}

	if res.Frame != nil && res.Frame.Len() > 0 && tailRows > 0 {
		fmt.Fprintln(w, "\nRecent indicator values:")
		writeTail(w, res.Frame, tailRows)
	}

	if len(res.Headlines) > 0 {
		fmt.Fprintln(w, "\nRecent headlines:")
		for _, h := range res.Headlines {
			fmt.Fprintf(w, "  - [%s] %s\n", h.Source, h.Title)
		}
	}
}

func writeTail(w io.Writer, frame *types.Frame, tailRows int) {
	start := frame.Len() - tailRows
	if start < 0 {
		start = 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	names := frame.Names()
	fmt.Fprintf(tw, "date\t%s\n", strings.Join(names, "\t"))
	for i := start; i < frame.Len(); i++ {
		cells := make([]string, 0, len(names))
		for _, name := range names {
			cells = append(cells, formatValue(frame.Value(name, i)))
		}
		fmt.Fprintf(tw, "%s\t%s\n",
			time.Unix(frame.Ts[i], 0).Format("2006-01-02"), strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
