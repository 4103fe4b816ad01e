// Package report renders ranked movers lists as fixed-width text, in the
// layout the tool has always printed.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
	"github.com/prlinder/altcoin-trend-rank/internal/usecase"
)

const header = "Symbol  %_Up     24h_USD$        Name          Price_in_BTC Price_in_USD$   1h_rise 1d_rise 7d_rise 30d_rise"

// Section banners. Part of the legacy report layout; do not reword.
const (
	PoloniexBanner = "List of POLONIEX traded coins ranked by % change in the price-per-BTC over time=>"
	BittrexBanner  = "List of BITTREX traded coins ranked by % change in the price-per-BTC over time=>"
)

// TopCoinsBanner heads the unfiltered section.
func TopCoinsBanner(n int) string {
	return fmt.Sprintf(`List of the top %d coins from "coinmarketcap.com" ranked by %% change in the price-per-BTC over time=>`, n)
}

var windowLabels = map[domain.Window]string{
	domain.WindowHour:  "Hour",
	domain.WindowDay:   "Day",
	domain.Window7Day:  "7 Days",
	domain.Window30Day: "~ 30 Days",
}

// Renderer writes report sections to a single writer; wire an
// io.MultiWriter to get the console copy and the file copy in one pass.
type Renderer struct {
	w      io.Writer
	ranker *usecase.Ranker
	topN   int
}

func NewRenderer(w io.Writer, ranker *usecase.Ranker, topN int) *Renderer {
	return &Renderer{w: w, ranker: ranker, topN: topN}
}

// RenderRunHeader prints the run timestamp.
func (r *Renderer) RenderRunHeader(now time.Time) {
	fmt.Fprintf(r.w, "\n%s\n\n", now.Format(time.ANSIC))
}

// RenderFilterReports prints the four per-window rankings for one
// membership filter, preceded by its banner.
func (r *Renderer) RenderFilterReports(banner string, table *usecase.SummaryTable, filter map[string]bool) {
	fmt.Fprintf(r.w, "%s\n\n", banner)
	for i, w := range domain.Windows {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "List of coins ranked by %% change in price-per-BTC in the last %s:\n", windowLabels[w])
		r.renderRanking(table, w, filter)
	}
}

// RenderSeparator prints the banner between filter sections.
func (r *Renderer) RenderSeparator() {
	fmt.Fprint(r.w, "\n\n==========================================================\n\n")
}

func (r *Renderer) renderRanking(table *usecase.SummaryTable, window domain.Window, filter map[string]bool) {
	ids := r.ranker.Rank(table, window, filter, r.topN)
	fmt.Fprintln(r.w, header)
	for _, id := range ids {
		s, ok := table.Get(id)
		if !ok {
			continue
		}
		r.renderRow(s, window)
	}
}

func (r *Renderer) renderRow(s *domain.AssetSummary, window domain.Window) {
	ratio, _ := s.Change(window)
	percent := (ratio - 1) * 100

	fmt.Fprintf(r.w, "%-5s %7.2f%%   $%11d   %-15s %8.6f    $%12.6f   %s   %s    %s   %s\n",
		s.Symbol,
		percent,
		int64(s.Volume24hUSD), // truncated, not rounded
		truncateName(s.Name, 14),
		s.PriceBTC,
		s.PriceUSD,
		ratioColumn(s, domain.WindowHour),
		ratioColumn(s, domain.WindowDay),
		ratioColumn(s, domain.Window7Day),
		ratioColumn(s, domain.Window30Day),
	)
}

// ratioColumn formats one window's change ratio, or a placeholder when
// the window's history was out of the fetched range.
func ratioColumn(s *domain.AssetSummary, w domain.Window) string {
	ratio, ok := s.Change(w)
	if !ok {
		return "  n/a"
	}
	return fmt.Sprintf("%5.2f", ratio)
}

// truncateName cuts to max display characters. By runes: a byte slice
// could split a multibyte character in half.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) > max {
		return string(runes[:max])
	}
	return name
}
