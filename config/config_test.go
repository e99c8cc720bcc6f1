package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.OldARFCN != 652000 || cfg.NewARFCN != 648672 || cfg.N77BSSB != 660001 {
		t.Errorf("unexpected ARFCN defaults: %+v", cfg)
	}
	if cfg.AllowedN77ARFCN != nil {
		t.Errorf("AllowedN77ARFCN should default to nil, got %v", cfg.AllowedN77ARFCN)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OLD_ARFCN", "653952")
	t.Setenv("ALLOWED_N77_ARFCN", "646668, 650000,bogus,653952")

	cfg := Load()
	if cfg.OldARFCN != 653952 {
		t.Errorf("OLD_ARFCN override not applied: %d", cfg.OldARFCN)
	}
	want := []int{646668, 650000, 653952}
	if len(cfg.AllowedN77ARFCN) != len(want) {
		t.Fatalf("AllowedN77ARFCN = %v, want %v", cfg.AllowedN77ARFCN, want)
	}
	for i, v := range want {
		if cfg.AllowedN77ARFCN[i] != v {
			t.Errorf("AllowedN77ARFCN[%d] = %d, want %d", i, cfg.AllowedN77ARFCN[i], v)
		}
	}
}
