package audit

import (
	"fmt"
	"strconv"

	"n77audit/freq"
	"n77audit/table"
)

// checkEndcDistrProfile classifies each node's gUtranFreqRef by the
// frequency tokens embedded in it. A profile is consistent when it pairs
// the old or new carrier with the N77B anchor; everything else is
// flagged. Token comparison is textual on purpose: the configured values
// must appear in the reference exactly as written.
func (a *auditor) checkEndcDistrProfile(t *table.Table) []Row {
	const cat, incCat, sub = "EndcDistrProfile Audit", "EndcDistrProfile Inconsistencies", "EndcDistrProfile"
	return guard(cat, sub, "EndcDistrProfile gUtranFreqRef", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "EndcDistrProfile table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		refCol, okRef := t.Column("gUtranFreqRef")
		if !okNode || !okRef {
			return []Row{row(cat, sub, "EndcDistrProfile table present but NodeId/gUtranFreqRef missing", "N/A", "")}
		}
		nodeIdx, refIdx := t.Index(nodeCol), t.Index(refCol)

		oldTok := strconv.Itoa(a.cfg.OldARFCN)
		newTok := strconv.Itoa(a.cfg.NewARFCN)
		n77bTok := strconv.Itoa(a.cfg.N77BSSB)

		oldNodes, newNodes, badNodes := map[string]bool{}, map[string]bool{}, map[string]bool{}
		for _, r := range t.Rows {
			node := table.Cell(r, nodeIdx)
			toks := freq.Embedded(table.Cell(r, refIdx))
			if toks[oldTok] && toks[n77bTok] {
				oldNodes[node] = true
			}
			if toks[newTok] && toks[n77bTok] {
				newNodes[node] = true
			}
			if (!toks[oldTok] && !toks[newTok]) || !toks[n77bTok] {
				badNodes[node] = true
			}
		}

		oldIDs, newIDs, badIDs := sortedKeys(oldNodes), sortedKeys(newNodes), sortedKeys(badNodes)
		return []Row{
			row(cat, sub, fmt.Sprintf("Nodes with gUtranFreqRef containing %d and %d in EndcDistrProfile", a.cfg.OldARFCN, a.cfg.N77BSSB), len(oldIDs), join(oldIDs)),
			row(cat, sub, fmt.Sprintf("Nodes with gUtranFreqRef containing %d and %d in EndcDistrProfile", a.cfg.NewARFCN, a.cfg.N77BSSB), len(newIDs), join(newIDs)),
			row(incCat, sub, fmt.Sprintf("Nodes with gUtranFreqRef not containing (%d or %d) together with %d in EndcDistrProfile", a.cfg.OldARFCN, a.cfg.NewARFCN, a.cfg.N77BSSB), len(badIDs), join(badIDs)),
		}
	})
}
