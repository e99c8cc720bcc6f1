package freq

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"plain integer", "646600", 646600, true},
		{"padded", "  653952 ", 653952, true},
		{"float rendering", "646600.0", 646600, true},
		{"composite relation id", "652000-30-20-0-1", 652000, true},
		{"empty", "", 0, false},
		{"letters", "abc", 0, false},
		{"letters before digits", "arfcn=652000", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Parse(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsN77(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"646600", true},  // lower bound
		{"660000", true},  // upper bound
		{"646599", false}, // just below
		{"660001", false}, // just above
		{"653952", true},
		{"648672-30-20-0-1", true},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsN77(tt.in); got != tt.want {
			t.Errorf("IsN77(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEmbedded(t *testing.T) {
	got := Embedded("GNBCUCPFunction=1,EUtranFreq=648672-30-20-0-1,GUtranSyncSignalFrequency=660001")
	for _, want := range []string{"648672", "660001"} {
		if !got[want] {
			t.Errorf("Embedded missing token %q, got %v", want, got)
		}
	}
	if len(got) != 2 {
		t.Errorf("Embedded returned %d tokens, want 2 (%v)", len(got), got)
	}
	if len(Embedded("no frequencies here 30-20-0-1")) != 0 {
		t.Error("short digit runs must not be treated as frequencies")
	}
}
