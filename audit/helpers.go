package audit

import (
	"fmt"
	"sort"
	"strings"

	"n77audit/freq"
	"n77audit/table"
)

type auditor struct {
	cfg          Config
	allowedSSB   map[int]bool
	allowedARFCN map[int]bool
}

func newAuditor(cfg Config) *auditor {
	a := &auditor{cfg: cfg, allowedSSB: map[int]bool{}, allowedARFCN: map[int]bool{}}
	for _, v := range cfg.AllowedN77SSB {
		a.allowedSSB[v] = true
	}
	for _, v := range cfg.AllowedN77ARFCN {
		a.allowedARFCN[v] = true
	}
	return a
}

func (a *auditor) isOld(v string) bool {
	n, ok := freq.Parse(v)
	return ok && n == a.cfg.OldARFCN
}

func (a *auditor) isNew(v string) bool {
	n, ok := freq.Parse(v)
	return ok && n == a.cfg.NewARFCN
}

func (a *auditor) hasValue(v string) bool {
	_, ok := freq.Parse(v)
	return ok
}

// notOldNotNew is true for unparsable values too: a row whose frequency
// cannot be read is deliberately neither old nor new.
func (a *auditor) notOldNotNew(v string) bool {
	n, ok := freq.Parse(v)
	return !ok || (n != a.cfg.OldARFCN && n != a.cfg.NewARFCN)
}

func (a *auditor) isAllowedARFCN(v string) bool {
	n, ok := freq.Parse(v)
	return ok && a.allowedARFCN[n]
}

// guard converts any panic inside a checker into a single error row so
// one broken table can never abort the whole report.
func guard(cat, sub, what string, fn func() []Row) []Row {
	run := func() (out []Row) {
		defer func() {
			if r := recover(); r != nil {
				out = []Row{row(cat, sub, "Error while checking "+what, fmt.Sprintf("ERROR: %v", r), "")}
			}
		}()
		return fn()
	}
	return run()
}

// groupValues groups one value column by an identifier column, keeping
// only values accepted by the filter (nil keeps everything).
func groupValues(t *table.Table, idIdx, valIdx int, filter func(string) bool) map[string][]string {
	groups := map[string][]string{}
	for _, r := range t.Rows {
		v := table.Cell(r, valIdx)
		if filter != nil && !filter(v) {
			continue
		}
		id := table.Cell(r, idIdx)
		groups[id] = append(groups[id], v)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func join(ids []string) string { return strings.Join(ids, ", ") }

// presence captures the old/new carrier footprint of grouped
// identifiers.
type presence struct {
	withOld, withNew, both, oldWithoutNew, neither []string
}

func (a *auditor) presenceSets(groups map[string][]string) presence {
	oldSet, newSet := map[string]bool{}, map[string]bool{}
	neither := map[string]bool{}
	for id, vals := range groups {
		onlyNeither := true
		for _, v := range vals {
			if a.isOld(v) {
				oldSet[id] = true
			}
			if a.isNew(v) {
				newSet[id] = true
			}
			if !a.notOldNotNew(v) {
				onlyNeither = false
			}
		}
		if onlyNeither {
			neither[id] = true
		}
	}

	both, without := map[string]bool{}, map[string]bool{}
	for id := range oldSet {
		if newSet[id] {
			both[id] = true
		} else {
			without[id] = true
		}
	}
	return presence{
		withOld:       sortedKeys(oldSet),
		withNew:       sortedKeys(newSet),
		both:          sortedKeys(both),
		oldWithoutNew: sortedKeys(without),
		neither:       sortedKeys(neither),
	}
}

// presenceRows renders the shared old/new/both/without/neither block
// every frequency table gets, parameterized by category pair, subject
// noun and table name.
func (a *auditor) presenceRows(audCat, incCat, sub, noun, tbl string, p presence) []Row {
	o, n := a.cfg.OldARFCN, a.cfg.NewARFCN
	return []Row{
		row(audCat, sub, fmt.Sprintf("%s with the old ARFCN (%d) in %s", noun, o, tbl), len(p.withOld), join(p.withOld)),
		row(audCat, sub, fmt.Sprintf("%s with the new ARFCN (%d) in %s", noun, n, tbl), len(p.withNew), join(p.withNew)),
		row(audCat, sub, fmt.Sprintf("%s with both, the old ARFCN (%d) and the new ARFCN (%d) in %s", noun, o, n, tbl), len(p.both), join(p.both)),
		row(incCat, sub, fmt.Sprintf("%s with the old ARFCN (%d) but without the new ARFCN (%d) in %s", noun, o, n, tbl), len(p.oldWithoutNew), join(p.oldWithoutNew)),
		row(incCat, sub, fmt.Sprintf("%s with the ARFCN not in (%d, %d) in %s", noun, o, n, tbl), len(p.neither), join(p.neither)),
	}
}

// ignoredColumns marks the identifier/reference columns a parameter
// comparison must skip: the resolved relation-id column plus any column
// whose lowered name is in names.
func ignoredColumns(t *table.Table, relCol string, names ...string) map[int]bool {
	skip := map[string]bool{}
	for _, n := range names {
		skip[n] = true
	}
	out := map[int]bool{}
	for i, col := range t.Columns {
		if col == relCol || skip[strings.ToLower(col)] {
			out[i] = true
		}
	}
	return out
}

// paramSetsEqual reports whether two row subsets carry the same
// attribute tuples once ignored columns are dropped, duplicates removed
// and columns put in alphabetical order. Row and column order in the
// source table never influence the verdict.
func paramSetsEqual(t *table.Table, oldRows, newRows [][]string, ignore map[int]bool) bool {
	type column struct {
		name string
		idx  int
	}
	keep := []column{}
	for i, name := range t.Columns {
		if !ignore[i] {
			keep = append(keep, column{name, i})
		}
	}
	sort.Slice(keep, func(i, j int) bool {
		if keep[i].name != keep[j].name {
			return keep[i].name < keep[j].name
		}
		return keep[i].idx < keep[j].idx
	})

	serialize := func(rows [][]string) map[string]bool {
		set := map[string]bool{}
		for _, r := range rows {
			parts := make([]string, len(keep))
			for k, c := range keep {
				parts[k] = table.Cell(r, c.idx)
			}
			set[strings.Join(parts, "\x1f")] = true
		}
		return set
	}

	oldSet, newSet := serialize(oldRows), serialize(newRows)
	if len(oldSet) != len(newSet) {
		return false
	}
	for k := range oldSet {
		if !newSet[k] {
			return false
		}
	}
	return true
}
