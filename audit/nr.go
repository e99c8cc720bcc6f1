package audit

import (
	"fmt"
	"sort"
	"strings"

	"n77audit/freq"
	"n77audit/table"
)

// checkNRFrequency audits the NRFrequency table: which nodes define any
// ARFCN at all, and the old/new carrier footprint over its N77 rows.
func (a *auditor) checkNRFrequency(t *table.Table) []Row {
	const cat, sub = "NR Frequency Audit", "NRFrequency"
	return guard(cat, sub, "NRFrequency", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "NRFrequency table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		arfcnCol, okArfcn := t.Column("arfcnValueNRDl", "NRFrequencyId", "nRFrequencyId")
		if !okNode || !okArfcn {
			return []Row{row(cat, sub, "NRFrequency table present but required columns missing", "N/A", "")}
		}
		nodeIdx, valIdx := t.Index(nodeCol), t.Index(arfcnCol)

		n77 := groupValues(t, nodeIdx, valIdx, freq.IsN77)
		if len(n77) == 0 {
			return []Row{row(cat, sub, "NRFrequency table has no N77 rows", 0, "")}
		}

		defined := sortedKeys(groupValues(t, nodeIdx, valIdx, a.hasValue))
		rows := []Row{row(cat, sub, "NR nodes with ARFCN defined in NRFrequency", len(defined), join(defined))}
		rows = append(rows, a.presenceRows(cat, "NR Frequency Inconsistencies", sub, "NR nodes", "NRFrequency", a.presenceSets(n77))...)
		return rows
	})
}

// checkNRFreqRelation audits NRFreqRelation at node level, at cell level
// and compares the relation parameters between the old and new carrier
// for every cell that defines both.
func (a *auditor) checkNRFreqRelation(t *table.Table) []Row {
	const cat, incCat, sub = "NR Frequency Audit", "NR Frequency Inconsistencies", "NRFreqRelation"
	return guard(cat, sub, "NRFreqRelation", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "NRFreqRelation table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		relCol, okRel := t.Column("NRFreqRelationId")
		if !okNode || !okRel {
			return []Row{row(cat, sub, "NRFreqRelation table present but ARFCN/NodeId missing", "N/A", "")}
		}
		nodeIdx, relIdx := t.Index(nodeCol), t.Index(relCol)

		n77 := groupValues(t, nodeIdx, relIdx, freq.IsN77)
		if len(n77) == 0 {
			return []Row{row(cat, sub, "NRFreqRelation table has no N77 rows", 0, "")}
		}
		rows := a.presenceRows(cat, incCat, sub, "NR nodes", "NRFreqRelation", a.presenceSets(n77))

		cellCol, okCell := t.Column("NRCellCUId", "NRCellId", "CellId")
		if !okCell {
			rows = append(rows, row(cat, sub, "NRFreqRelation cell-level check skipped (NRCellCUId/NRCellId/CellId missing)", "N/A", ""))
			return rows
		}
		cellIdx := t.Index(cellCol)

		oldRows, newRows := map[string][][]string{}, map[string][][]string{}
		for _, r := range t.Rows {
			v := table.Cell(r, relIdx)
			if !freq.IsN77(v) {
				continue
			}
			n, ok := freq.Parse(v)
			if !ok {
				continue
			}
			cell := table.Cell(r, cellIdx)
			if n == a.cfg.OldARFCN {
				oldRows[cell] = append(oldRows[cell], r)
			}
			if n == a.cfg.NewARFCN {
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

		o, n := a.cfg.OldARFCN, a.cfg.NewARFCN
		rows = append(rows,
			row(cat, sub, fmt.Sprintf("NR cells with the old ARFCN (%d) and the new ARFCN (%d) in NRFreqRelation", o, n), len(both), join(both)),
			row(incCat, sub, fmt.Sprintf("NR cells with the old ARFCN (%d) but without new ARFCN (%d) in NRFreqRelation", o, n), len(withoutNew), join(withoutNew)),
		)

		ignore := ignoredColumns(t, relCol, "nrfreqrelationid", "nrfrequencyref", "reservedby")
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
			fmt.Sprintf("NR cells with mismatching params between old ARFCN (%d) and the new ARFCN (%d) in NRFreqRelation", o, n),
			len(mismatched), join(mismatched)))
		return rows
	})
}

// checkNRCellDU counts the nodes broadcasting an N77 SSB.
func (a *auditor) checkNRCellDU(t *table.Table) []Row {
	const cat, sub = "NR Frequency Audit", "NRCellDU"
	return guard(cat, sub, "NRCellDU", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "NRCellDU table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		ssbCol, okSSB := t.Column("ssbFrequency")
		if !okNode || !okSSB {
			return []Row{row(cat, sub, "NRCellDU table present but required columns missing", "N/A", "")}
		}
		nodeIdx, ssbIdx := t.Index(nodeCol), t.Index(ssbCol)

		nodes := map[string]bool{}
		for _, r := range t.Rows {
			if freq.IsN77(table.Cell(r, ssbIdx)) {
				nodes[strings.TrimSpace(table.Cell(r, nodeIdx))] = true
			}
		}
		ids := sortedKeys(nodes)
		return []Row{row(cat, sub, "NR nodes with SSB in N77 band (646600-660000) in NRCellDU", len(ids), join(ids))}
	})
}

// checkNRSectorCarrier flags carriers transmitting on an N77 ARFCN
// outside the allowed list, when one is configured.
func (a *auditor) checkNRSectorCarrier(t *table.Table) []Row {
	const cat, incCat, sub = "NR Frequency Audit", "NR Frequency Inconsistencies", "NRSectorCarrier"
	return guard(cat, sub, "NRSectorCarrier", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "NRSectorCarrier table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		arfcnCol, okArfcn := t.Column("arfcnDL")
		if !okNode || !okArfcn {
			return []Row{row(cat, sub, "NRSectorCarrier table present but required columns missing", "N/A", "")}
		}
		nodeIdx, valIdx := t.Index(nodeCol), t.Index(arfcnCol)

		type pair struct{ node, arfcn string }
		n77Nodes := map[string]bool{}
		badNodes := map[string]bool{}
		badPairs := map[pair]bool{}
		for _, r := range t.Rows {
			v := table.Cell(r, valIdx)
			if !freq.IsN77(v) {
				continue
			}
			node := strings.TrimSpace(table.Cell(r, nodeIdx))
			n77Nodes[node] = true
			if len(a.allowedARFCN) > 0 && !a.isAllowedARFCN(v) {
				badNodes[node] = true
				badPairs[pair{node, strings.TrimSpace(v)}] = true
			}
		}

		ids := sortedKeys(n77Nodes)
		rows := []Row{row(cat, sub, "NR nodes with ARFCN in N77 band (646600-660000) in NRSectorCarrier", len(ids), join(ids))}

		if len(a.allowedARFCN) == 0 {
			rows = append(rows, row(incCat, sub, "NR nodes with ARFCN not in allowed list (no allowed list configured)", "N/A", ""))
			return rows
		}
		pairs := make([]string, 0, len(badPairs))
		for p := range badPairs {
			pairs = append(pairs, p.node+": "+p.arfcn)
		}
		sort.Strings(pairs)
		rows = append(rows, row(incCat, sub, "NR nodes with ARFCN not in allowed list (from NRSectorCarrier table)",
			len(badNodes), strings.Join(pairs, "; ")))
		return rows
	})
}

// checkFreqPrioNR verifies that every N77 frequency priority belongs to
// one of the two recognized roles.
func (a *auditor) checkFreqPrioNR(t *table.Table) []Row {
	const cat, incCat, sub = "NR Frequency Audit", "NR Frequency Inconsistencies", "FreqPrioNR"
	return guard(cat, sub, "FreqPrioNR", func() []Row {
		if t.Empty() {
			return []Row{row(cat, sub, "FreqPrioNR table", "Table not found or empty", "")}
		}
		nodeCol, okNode := t.Column("NodeId")
		freqCol, okFreq := t.Column("FreqPrioNRId")
		roleCol, okRole := t.Column("RATFreqPrioId")
		if !okNode || !okFreq || !okRole {
			return []Row{row(cat, sub, "FreqPrioNR table present but NodeId/FreqPrioNRId/RATFreqPrioId missing", "N/A", "")}
		}
		nodeIdx, freqIdx, roleIdx := t.Index(nodeCol), t.Index(freqCol), t.Index(roleCol)

		fwa, publicSafety, other := map[string]bool{}, map[string]bool{}, map[string]bool{}
		seenN77 := false
		for _, r := range t.Rows {
			if !freq.IsN77(table.Cell(r, freqIdx)) {
				continue
			}
			seenN77 = true
			node := strings.TrimSpace(table.Cell(r, nodeIdx))
			switch strings.ToLower(strings.TrimSpace(table.Cell(r, roleIdx))) {
			case "fwa":
				fwa[node] = true
			case "publicsafety":
				publicSafety[node] = true
			default:
				other[node] = true
			}
		}
		if !seenN77 {
			return []Row{row(cat, sub, "FreqPrioNR table has no N77 rows (based on FreqPrioNRId)", 0, "")}
		}

		fwaIDs, psIDs, otherIDs := sortedKeys(fwa), sortedKeys(publicSafety), sortedKeys(other)
		return []Row{
			row(cat, sub, "NR nodes with RATFreqPrioId = 'fwa' in N77 FreqPrioNR", len(fwaIDs), join(fwaIDs)),
			row(cat, sub, "NR nodes with RATFreqPrioId = 'publicsafety' in N77 FreqPrioNR", len(psIDs), join(psIDs)),
			row(incCat, sub, "NR nodes with RATFreqPrioId different from 'fwa'/'publicsafety' in N77 FreqPrioNR", len(otherIDs), join(otherIDs)),
		}
	})
}
