package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
	"github.com/prlinder/altcoin-trend-rank/internal/usecase"
)

func fullSummary(id, symbol, name string, priceBTC, priceUSD, volume float64, changes map[domain.Window]float64) *domain.AssetSummary {
	s := &domain.AssetSummary{
		ID:           id,
		Name:         name,
		Symbol:       symbol,
		PriceBTC:     priceBTC,
		PriceUSD:     priceUSD,
		Volume24hUSD: volume,
	}
	for w, ratio := range changes {
		s.Stats[w] = domain.WindowStats{Available: true, HistPriceBTC: 1, HistPriceUSD: 1, ChangeBTC: ratio, ChangeUSD: ratio}
	}
	return s
}

func TestRenderFilterReports(t *testing.T) {
	table := usecase.NewSummaryTable()
	table.Add(fullSummary("ethereum", "ETH", "Ethereum", 0.093700, 1050.25, 4100000000.9,
		map[domain.Window]float64{
			domain.WindowHour: 1.02, domain.WindowDay: 1.10,
			domain.Window7Day: 1.25, domain.Window30Day: 1.50,
		}))
	table.Add(fullSummary("basicattention", "BAT", "Basic Attention Token", 0.000030, 0.35, 52000000.2,
		map[domain.Window]float64{
			domain.WindowHour: 1.05, domain.WindowDay: 1.20,
		}))

	var buf strings.Builder
	r := NewRenderer(&buf, usecase.NewRanker("bitcoin"), 30)
	r.RenderFilterReports("List of TEST traded coins=>", table, usecase.FilterSet([]string{"ETH", "BAT"}))
	out := buf.String()

	assert.Contains(t, out, "List of TEST traded coins=>")
	assert.Contains(t, out, "List of coins ranked by % change in price-per-BTC in the last Hour:")
	assert.Contains(t, out, "List of coins ranked by % change in price-per-BTC in the last ~ 30 Days:")
	assert.Contains(t, out, "Symbol  %_Up     24h_USD$")

	// Name truncated to 14 characters.
	assert.Contains(t, out, "Basic Attentio ")
	assert.NotContains(t, out, "Basic Attention Token")

	// Volume truncated toward zero, not rounded.
	assert.Contains(t, out, "$ 4100000000")
	assert.NotContains(t, out, "4100000001")

	// Percent column is (ratio-1)*100 of the section's metric.
	assert.Contains(t, out, "ETH      2.00%")
	assert.Contains(t, out, "BAT      5.00%")

	// BAT has no 7d/30d history: placeholder columns in its row, and no
	// BAT row at all in the 7-day and 30-day sections.
	hourSection := section(t, out, "last Hour:")
	assert.Contains(t, hourSection, "  n/a")
	day7Section := section(t, out, "last 7 Days:")
	assert.NotContains(t, day7Section, "BAT")
	assert.Contains(t, day7Section, "ETH")
}

// section cuts the report text from the given section marker to the next
// blank-line separated section.
func section(t *testing.T, out, marker string) string {
	t.Helper()
	i := strings.Index(out, marker)
	require.GreaterOrEqual(t, i, 0, "section %q not found", marker)
	rest := out[i:]
	if j := strings.Index(rest, "\n\n"); j >= 0 {
		return rest[:j]
	}
	return rest
}

func TestTruncateName_MultibyteRunes(t *testing.T) {
	// 16 two-byte runes: a byte slice at 14 would cut mid-rune.
	name := "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠ"
	got := truncateName(name, 14)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞ", got)
	assert.Len(t, []rune(got), 14)

	// Short names pass through untouched.
	assert.Equal(t, "Ethereum", truncateName("Ethereum", 14))
}

func TestBanners(t *testing.T) {
	assert.Equal(t,
		`List of the top 30 coins from "coinmarketcap.com" ranked by % change in the price-per-BTC over time=>`,
		TopCoinsBanner(30))
	assert.Contains(t, PoloniexBanner, "POLONIEX")
	assert.Contains(t, BittrexBanner, "BITTREX")
}

func TestRenderRunHeader(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, usecase.NewRanker("bitcoin"), 30)
	r.RenderRunHeader(time.Date(2018, 2, 3, 15, 4, 5, 0, time.UTC))
	assert.Contains(t, buf.String(), "Sat Feb  3 15:04:05 2018")
}

func TestRatioColumnWidth(t *testing.T) {
	s := fullSummary("x", "X", "X", 1, 1, 0, map[domain.Window]float64{domain.WindowHour: 1.02})
	assert.Len(t, ratioColumn(s, domain.WindowHour), 5)
	assert.Len(t, ratioColumn(s, domain.WindowDay), 5)
}
