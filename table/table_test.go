package table

import "testing"

func sample() *Table {
	return FromRows("NRSectorCarrier", [][]string{
		{"NodeId", "arfcnDL", "Notes"},
		{" N1 ", "652000", "nan"},
		{"N2", "NULL", "ok"},
		{"N3", "655000"},
	})
}

func TestColumnResolution(t *testing.T) {
	tbl := sample()

	tests := []struct {
		name       string
		candidates []string
		want       string
		ok         bool
	}{
		{"exact", []string{"NodeId"}, "NodeId", true},
		{"case insensitive", []string{"ARFCNDL"}, "arfcnDL", true},
		{"first candidate wins", []string{"arfcnValueNRDl", "ArfcnDL"}, "arfcnDL", true},
		{"no match", []string{"ssbFrequency"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.Column(tt.candidates...)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Column(%v) = %q, %v; want %q, %v", tt.candidates, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	tbl := sample()
	if got := tbl.Rows[0][0]; got != "N1" {
		t.Errorf("cells must be trimmed, got %q", got)
	}
	if got := tbl.Rows[0][2]; got != "" {
		t.Errorf("nan must collapse to empty, got %q", got)
	}
	if got := tbl.Rows[1][1]; got != "" {
		t.Errorf("NULL must collapse to empty, got %q", got)
	}
}

func TestValuesRaggedRows(t *testing.T) {
	tbl := sample()
	vals := tbl.Values("Notes")
	if len(vals) != 3 || vals[2] != "" {
		t.Errorf("ragged row must yield empty cell, got %v", vals)
	}
}

func TestEmpty(t *testing.T) {
	var nilTable *Table
	if !nilTable.Empty() {
		t.Error("nil table must be empty")
	}
	if !FromRows("x", [][]string{{"NodeId"}}).Empty() {
		t.Error("header-only table must be empty")
	}
	if sample().Empty() {
		t.Error("populated table must not be empty")
	}
}

func TestFind(t *testing.T) {
	tables := map[string]*Table{"nrfreqrelation": sample()}
	if Find(tables, "NRFreqRelation") == nil {
		t.Error("Find must match sheet names case-insensitively")
	}
	if Find(tables, "NRCellDU") != nil {
		t.Error("Find must return nil for unknown sheets")
	}
}
