// Package audit implements the consistency checks run against NR and
// LTE configuration export tables during an N77 frequency migration,
// and assembles their findings into one ordered report.
package audit

import (
	"sort"

	"n77audit/table"
)

// Config carries the migration scenario: the carrier being vacated, the
// one being introduced, the N77B anchor SSB and the optional whitelists.
type Config struct {
	OldARFCN        int
	NewARFCN        int
	N77BSSB         int
	AllowedN77SSB   []int
	AllowedN77ARFCN []int
}

// Inputs holds the source tables. Any of them may be nil or empty; the
// checkers degrade to diagnostic rows instead of failing.
type Inputs struct {
	NRCellDU                  *table.Table
	NRFrequency               *table.Table
	NRFreqRelation            *table.Table
	FreqPrioNR                *table.Table
	GUtranSyncSignalFrequency *table.Table
	GUtranFreqRelation        *table.Table
	NRSectorCarrier           *table.Table
	EndcDistrProfile          *table.Table
}

// Row is one audit finding. Value is a count for result rows and a
// descriptive string for diagnostic rows; ExtraInfo lists the
// identifiers behind the count, alphabetically sorted.
type Row struct {
	Category    string
	SubCategory string
	Metric      string
	Value       any
	ExtraInfo   string
}

// Report is the ordered sequence of findings of one audit run.
type Report []Row

func row(cat, sub, metric string, value any, extra string) Row {
	return Row{Category: cat, SubCategory: sub, Metric: metric, Value: value, ExtraInfo: extra}
}

type bucket struct{ cat, sub string }

// Display order of the recognized (Category, SubCategory) buckets; it
// also drives the downstream slide ordering. Rows in unrecognized
// buckets sort after all of these.
var bucketOrder = []bucket{
	{"NR Frequency Audit", "NRFrequency"},
	{"NR Frequency Audit", "NRFreqRelation"},
	{"NR Frequency Audit", "NRSectorCarrier"},
	{"NR Frequency Audit", "NRCellDU"},
	{"NR Frequency Audit", "FreqPrioNR"},
	{"NR Frequency Inconsistencies", "NRFrequency"},
	{"NR Frequency Inconsistencies", "NRFreqRelation"},
	{"NR Frequency Inconsistencies", "NRSectorCarrier"},
	{"NR Frequency Inconsistencies", "FreqPrioNR"},
	{"LTE Frequency Audit", "GUtranSyncSignalFrequency"},
	{"LTE Frequency Audit", "GUtranFreqRelation"},
	{"LTE Frequency Inconsistences", "GUtranSyncSignalFrequency"},
	{"LTE Frequency Inconsistences", "GUtranFreqRelation"},
	{"EndcDistrProfile Audit", "EndcDistrProfile"},
	{"EndcDistrProfile Inconsistencies", "EndcDistrProfile"},
	{"Cardinality Audit", "Cardinality"},
	{"Cardinality Inconsistencies", "Cardinality"},
}

var bucketRank = func() map[bucket]int {
	m := make(map[bucket]int, len(bucketOrder))
	for i, b := range bucketOrder {
		m[b] = i
	}
	return m
}()

func rank(r Row) int {
	if i, ok := bucketRank[bucket{r.Category, r.SubCategory}]; ok {
		return i
	}
	return len(bucketOrder) + 100
}

// Build runs every checker once, in a fixed sequence, and returns the
// assembled report. Each checker contributes its own ordered row batch;
// the final stable sort groups rows by bucket while keeping each
// checker's emission order inside a bucket. Build never fails: data
// problems become rows.
func Build(in Inputs, cfg Config) Report {
	a := newAuditor(cfg)

	var rows []Row
	for _, batch := range [][]Row{
		a.checkNRFrequency(in.NRFrequency),
		a.checkNRFreqRelation(in.NRFreqRelation),
		a.checkNRCellDU(in.NRCellDU),
		a.checkNRSectorCarrier(in.NRSectorCarrier),
		a.checkFreqPrioNR(in.FreqPrioNR),
		a.checkGUtranSyncSignalFrequency(in.GUtranSyncSignalFrequency),
		a.checkGUtranFreqRelation(in.GUtranFreqRelation),
		a.checkEndcDistrProfile(in.EndcDistrProfile),
		a.checkCardinalities(in),
	} {
		rows = append(rows, batch...)
	}

	if len(rows) == 0 {
		rows = append(rows, row("Info", "Info", "SummaryAudit", "No data available", ""))
	}

	sort.SliceStable(rows, func(i, j int) bool { return rank(rows[i]) < rank(rows[j]) })
	return rows
}
