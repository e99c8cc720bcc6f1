package audit

import (
	"fmt"
	"sort"

	"n77audit/table"
)

// checkGUtranSyncSignalFrequency audits the LTE-side NR frequency
// definitions. The whole table participates; there is no N77 pre-filter
// on the LTE side.
func (a *auditor) checkGUtranSyncSignalFrequency(t *table.Table) []Row {
	const cat, incCat, sub = "LTE Frequency Audit", "LTE Frequency Inconsistences", "GUtranSyncSignalFrequency"
	return guard(cat, sub, "GUtranSyncSignalFrequency", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "GUtranSyncSignalFrequency table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		arfcnCol, okArfcn := t.Column("arfcn", "arfcnDL")
		if !okNode || !okArfcn {
			return []Row{row(cat, sub, "GUtranSyncSignalFrequency table present but required columns missing", "N/A", "")}
		}
		nodeIdx, valIdx := t.Index(nodeCol), t.Index(arfcnCol)

		defined := sortedKeys(groupValues(t, nodeIdx, valIdx, a.hasValue))
		rows := []Row{row(cat, sub, "LTE nodes with GUtranSyncSignalFrequency defined:", len(defined), join(defined))}

		groups := groupValues(t, nodeIdx, valIdx, nil)
		rows = append(rows, a.presenceRows(cat, incCat, sub, "LTE nodes", "GUtranSyncSignalFrequency", a.presenceSets(groups))...)
		return rows
	})
}

// checkGUtranFreqRelation audits GUtranFreqRelation at node level, then
// at cell level via the exact composite relation ids the migration
// creates, and compares relation parameters between the two.
func (a *auditor) checkGUtranFreqRelation(t *table.Table) []Row {
	const cat, incCat, sub = "LTE Frequency Audit", "LTE Frequency Inconsistences", "GUtranFreqRelation"
	return guard(cat, sub, "GUtranFreqRelation", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "GUtranFreqRelation table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		relCol, okRel := t.Column("GUtranFreqRelationId", "gUtranFreqRelationId")
		if !okNode || !okRel {
			return []Row{row(cat, sub, "GUtranFreqRelation table present but ARFCN/NodeId missing", "N/A", "")}
		}
		nodeIdx, relIdx := t.Index(nodeCol), t.Index(relCol)

		groups := groupValues(t, nodeIdx, relIdx, nil)
		rows := a.presenceRows(cat, incCat, sub, "LTE nodes", "GUtranFreqRelation", a.presenceSets(groups))

		cellCol, okCell := t.Column("EUtranCellFDDId", "EUtranCellId", "CellId", "GUCellId")
		if !okCell {
			rows = append(rows, row(cat, sub, "GUtranFreqRelation cell-level check skipped (EUtranCellFDDId/EUtranCellId/CellId/GUCellId missing)", "N/A", ""))
			return rows
		}
		cellIdx := t.Index(cellCol)

		// The migration provisions relation ids in this exact shape; the
		// cell-level check matches them literally instead of parsing.
		oldRel := fmt.Sprintf("%d-30-20-0-1", a.cfg.OldARFCN)
		newRel := fmt.Sprintf("%d-30-20-0-1", a.cfg.NewARFCN)

		oldRows, newRows := map[string][][]string{}, map[string][][]string{}
		for _, r := range t.Rows {
			cell := table.Cell(r, cellIdx)
			switch table.Cell(r, relIdx) {
			case oldRel:
				oldRows[cell] = append(oldRows[cell], r)
			case newRel:
				newRows[cell] = append(newRows[cell], r)
			}
		}

		var both, withoutNew []string
		for cell := range oldRows {
			if _, ok := newRows[cell]; ok {
				both = append(both, cell)
			} else {
				withoutNew = append(withoutNew, cell)
			}
		}
		sort.Strings(both)
		sort.Strings(withoutNew)

		rows = append(rows,
			row(cat, sub, fmt.Sprintf("LTE cells with GUtranFreqRelationId %s and %s in GUtranFreqRelation", oldRel, newRel), len(both), join(both)),
			row(incCat, sub, fmt.Sprintf("LTE cells with GUtranFreqRelationId %s but without %s in GUtranFreqRelation", oldRel, newRel), len(withoutNew), join(withoutNew)),
		)

		// LTE relations reference a sync-signal frequency, not an NR
		// frequency, so the ignore list differs from the NR checker.
		ignore := ignoredColumns(t, relCol, "gutranfreqrelationid", "gutransyncsignalfrequencyref")
		var mismatched []string
		for _, cell := range both {
			if len(oldRows[cell]) == 0 || len(newRows[cell]) == 0 {
				continue
			}
			if !paramSetsEqual(t, oldRows[cell], newRows[cell], ignore) {
				mismatched = append(mismatched, cell)
			}
		}
		rows = append(rows, row(incCat, sub,
			fmt.Sprintf("LTE cells with mismatching params between GUtranFreqRelationId %s and %s in GUtranFreqRelation", oldRel, newRel),
			len(mismatched), join(mismatched)))
		return rows
	})
}
