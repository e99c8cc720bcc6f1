package audit

import (
	"fmt"
	"sort"
	"strings"

	"n77audit/table"
)

// cardinalitySpec binds one managed-object limit to the table and
// identifier column it is counted over.
type cardinalitySpec struct {
	what        string // checker name used in error rows
	desc        string // diagnostic row text for absent tables
	missingDesc string // diagnostic row text for unresolvable id columns
	maxMetric   string
	atMetric    string
	limit       int
	idCols      []string
}

// cardinality reports the maximum observed count per identifier (with
// the worst offenders, or everything at/over the limit) and, separately,
// the identifiers sitting exactly at the limit. Empty identifiers count
// too: a blank id is still a row the node carries.
func (a *auditor) cardinality(t *table.Table, sp cardinalitySpec) []Row {
	const cat, incCat, sub = "Cardinality Audit", "Cardinality Inconsistencies", "Cardinality"
	return guard(cat, sub, sp.what, func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, sp.desc, "Table not found or empty", "")}
		}
		idCol, ok := t.Column(sp.idCols...)
		if !ok {
			return []Row{row(cat, sub, sp.missingDesc, "N/A", "")}
		}
		idx := t.Index(idCol)

		counts := map[string]int{}
		for _, r := range t.Rows {
			counts[table.Cell(r, idx)]++
		}
		maxCount := 0
		for _, c := range counts {
			if c > maxCount {
				maxCount = c
			}
		}

		idsWhere := func(pred func(int) bool) []string {
			var ids []string
			for id, c := range counts {
				if pred(c) {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)
			return ids
		}
		pairList := func(ids []string) string {
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = fmt.Sprintf("%s: %d", id, counts[id])
			}
			return strings.Join(parts, "; ")
		}

		atOrAbove := idsWhere(func(c int) bool { return c >= sp.limit })
		if len(atOrAbove) == 0 && maxCount > 0 {
			atOrAbove = idsWhere(func(c int) bool { return c == maxCount })
		}
		atLimit := idsWhere(func(c int) bool { return c == sp.limit })

		return []Row{
			row(cat, sub, sp.maxMetric, maxCount, pairList(atOrAbove)),
			row(incCat, sub, sp.atMetric, len(atLimit), pairList(atLimit)),
		}
	})
}

// checkCardinalities verifies the four managed-object limits the
// migration can push a node against.
func (a *auditor) checkCardinalities(in Inputs) []Row {
	var rows []Row
	rows = append(rows, a.cardinality(in.NRFreqRelation, cardinalitySpec{
		what:        "NRFreqRelation cardinality",
		desc:        "NRFreqRelation per cell",
		missingDesc: "NRFreqRelation per cell (required cell column missing)",
		maxMetric:   "Max NRFreqRelation per NR cell (limit 16)",
		atMetric:    "NR cells with NRFreqRelation count at limit 16",
		limit:       16,
		idCols:      []string{"NRCellCUId", "NRCellId", "CellId"},
	})...)
	rows = append(rows, a.cardinality(in.NRFrequency, cardinalitySpec{
		what:        "NRFrequency cardinality",
		desc:        "NRFrequency per node",
		missingDesc: "NRFrequency per node (NodeId missing)",
		maxMetric:   "Max NRFrequency definitions per node (limit 64)",
		atMetric:    "NR nodes with NRFrequency definitions at limit 64",
		limit:       64,
		idCols:      []string{"NodeId"},
	})...)
	rows = append(rows, a.cardinality(in.GUtranFreqRelation, cardinalitySpec{
		what:        "GUtranFreqRelation cardinality",
		desc:        "GUtranFreqRelation per LTE cell",
		missingDesc: "GUtranFreqRelation per LTE cell (required cell column missing)",
		maxMetric:   "Max GUtranFreqRelation per LTE cell (limit 16)",
		atMetric:    "LTE cells with GUtranFreqRelation count at limit 16",
		limit:       16,
		idCols:      []string{"EUtranCellFDDId", "EUtranCellId", "CellId", "GUCellId"},
	})...)
	rows = append(rows, a.cardinality(in.GUtranSyncSignalFrequency, cardinalitySpec{
		what:        "GUtranSyncSignalFrequency cardinality",
		desc:        "GUtranSyncSignalFrequency per node",
		missingDesc: "GUtranSyncSignalFrequency per node (NodeId missing)",
		maxMetric:   "Max GUtranSyncSignalFrequency definitions per node (limit 24)",
		atMetric:    "LTE nodes with GUtranSyncSignalFrequency definitions at limit 24",
		limit:       24,
		idCols:      []string{"NodeId"},
	})...)
	return rows
}
