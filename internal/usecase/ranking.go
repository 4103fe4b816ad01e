package usecase

import (
	"sort"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// SummaryTable is the per-run collection of asset summaries, keyed by
// asset identifier. Append-only during the build phase, read-only during
// ranking.
type SummaryTable struct {
	byID  map[string]*domain.AssetSummary
	order []string
}

func NewSummaryTable() *SummaryTable {
	return &SummaryTable{byID: make(map[string]*domain.AssetSummary)}
}

// Add appends a summary. Insertion order is preserved for iteration.
func (t *SummaryTable) Add(s *domain.AssetSummary) {
	if _, ok := t.byID[s.ID]; !ok {
		t.order = append(t.order, s.ID)
	}
	t.byID[s.ID] = s
}

// Get looks a summary up by asset identifier.
func (t *SummaryTable) Get(id string) (*domain.AssetSummary, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Len returns the number of summaries in the table.
func (t *SummaryTable) Len() int { return len(t.byID) }

// Symbols returns every symbol in the table, in insertion order. Used as
// the "all assets" membership filter.
func (t *SummaryTable) Symbols() []string {
	syms := make([]string, 0, len(t.order))
	for _, id := range t.order {
		syms = append(syms, t.byID[id].Symbol)
	}
	return syms
}

// IDs returns the asset identifiers in insertion order.
func (t *SummaryTable) IDs() []string {
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	return ids
}

// Ranker produces ordered movers lists from a summary table. The
// reference asset (the coin the unit-A prices are quoted in) is excluded
// from every ranking: its change against itself is always 1.
type Ranker struct {
	ReferenceAssetID string
}

func NewRanker(referenceAssetID string) *Ranker {
	return &Ranker{ReferenceAssetID: referenceAssetID}
}

// Rank returns up to max asset identifiers whose symbol is in the filter
// set and whose BTC change ratio for the chosen window is available,
// ordered by that ratio descending. Assets with an unavailable metric are
// excluded, never sorted as zero.
func (r *Ranker) Rank(table *SummaryTable, window domain.Window, filter map[string]bool, max int) []string {
	selected := make([]string, 0, table.Len())
	for _, id := range table.IDs() {
		if id == r.ReferenceAssetID {
			continue
		}
		s, _ := table.Get(id)
		if !filter[s.Symbol] {
			continue
		}
		if _, ok := s.Change(window); !ok {
			continue
		}
		selected = append(selected, id)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, _ := table.byID[selected[i]].Change(window)
		b, _ := table.byID[selected[j]].Change(window)
		return a > b
	})

	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}

// FilterSet builds a membership set from a symbol list.
func FilterSet(symbols []string) map[string]bool {
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[s] = true
	}
	return set
}
