// Package handlers exposes the audit over HTTP: one upload endpoint
// that takes a configuration export workbook and returns the path of
// the generated report.
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"n77audit/audit"
	"n77audit/config"
	"n77audit/export"
	"n77audit/inventory"
	"n77audit/table"
)

// Handler runs one audit per uploaded workbook.
type Handler struct {
	Cfg *config.Config
	Log *zap.Logger
	Inv *inventory.DB // optional site inventory
}

// Upload accepts a multipart POST with a `file` workbook and optional
// form overrides (old_arfcn, new_arfcn, n77b_ssb), writes the audit
// report workbook to the output dir and responds with its download
// path.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST allowed", http.StatusMethodNotAllowed)
		return
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	for _, d := range []string{h.Cfg.UploadDir, h.Cfg.OutputDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	src := filepath.Join(h.Cfg.UploadDir, filepath.Base(hdr.Filename))
	if err := saveUploaded(file, src); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tables, err := table.LoadWorkbook(src)
	if err != nil {
		http.Error(w, "workbook load failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := h.auditConfig(r)
	runID := uuid.NewString()
	h.Log.Info("running audit",
		zap.String("run_id", runID),
		zap.String("workbook", hdr.Filename),
		zap.Int("old_arfcn", cfg.OldARFCN),
		zap.Int("new_arfcn", cfg.NewARFCN))

	rep := audit.Build(inputsFrom(tables), cfg)

	out := filepath.Join(h.Cfg.OutputDir, "audit_"+runID+".xlsx")
	if err := export.Write(out, rep, h.nodeDetails(rep)); err != nil {
		h.Log.Error("report write failed", zap.String("run_id", runID), zap.Error(err))
		http.Error(w, "report write failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.Log.Info("audit complete", zap.String("run_id", runID), zap.Int("rows", len(rep)))
	fmt.Fprintf(w, "/download/%s\n", filepath.Base(out))
}

func saveUploaded(src io.Reader, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, src)
	return err
}

// auditConfig merges per-request form overrides over the configured
// defaults.
func (h *Handler) auditConfig(r *http.Request) audit.Config {
	return audit.Config{
		OldARFCN:        formInt(r, "old_arfcn", h.Cfg.OldARFCN),
		NewARFCN:        formInt(r, "new_arfcn", h.Cfg.NewARFCN),
		N77BSSB:         formInt(r, "n77b_ssb", h.Cfg.N77BSSB),
		AllowedN77SSB:   h.Cfg.AllowedN77SSB,
		AllowedN77ARFCN: h.Cfg.AllowedN77ARFCN,
	}
}

func formInt(r *http.Request, key string, fallback int) int {
	if v := strings.TrimSpace(r.FormValue(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// inputsFrom maps workbook sheets onto the audit inputs, tolerating the
// sheet-name variants the export tools produce.
func inputsFrom(tables map[string]*table.Table) audit.Inputs {
	return audit.Inputs{
		NRCellDU:                  table.Find(tables, "NRCellDU", "NR_Cell_DU"),
		NRFrequency:               table.Find(tables, "NRFrequency", "NR_Frequency"),
		NRFreqRelation:            table.Find(tables, "NRFreqRelation", "NR_Freq_Relation"),
		FreqPrioNR:                table.Find(tables, "FreqPrioNR", "Freq_Prio_NR"),
		GUtranSyncSignalFrequency: table.Find(tables, "GUtranSyncSignalFrequency", "GUtranSyncSignalFreq"),
		GUtranFreqRelation:        table.Find(tables, "GUtranFreqRelation", "GUtran_Freq_Relation"),
		NRSectorCarrier:           table.Find(tables, "NRSectorCarrier", "NR_Sector_Carrier"),
		EndcDistrProfile:          table.Find(tables, "EndcDistrProfile", "Endc_Distr_Profile"),
	}
}

// flaggedNodes extracts every identifier named by an inconsistency row.
// ExtraInfo is either a ", "-joined id list or a "; "-joined "id: value"
// pair list; both forms reduce to their leading identifier.
func flaggedNodes(rep audit.Report) []string {
	set := map[string]bool{}
	for _, r := range rep {
		if !strings.Contains(r.Category, "Inconsisten") || r.ExtraInfo == "" {
			continue
		}
		for _, part := range strings.FieldsFunc(r.ExtraInfo, func(c rune) bool { return c == ',' || c == ';' }) {
			id := strings.TrimSpace(part)
			if i := strings.Index(id, ":"); i >= 0 {
				id = strings.TrimSpace(id[:i])
			}
			if id != "" {
				set[id] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// nodeDetails builds the Nodes sheet rows for flagged nodes present in
// the inventory.
func (h *Handler) nodeDetails(rep audit.Report) [][]string {
	if h.Inv == nil {
		return nil
	}
	rows := [][]string{{"NodeId", "Site", "Region", "Vendor"}}
	for _, id := range flaggedNodes(rep) {
		if n, ok := h.Inv.Lookup(id); ok {
			rows = append(rows, []string{n.NodeID, n.Site, n.Region, n.Vendor})
		}
	}
	if len(rows) == 1 {
		return nil
	}
	return rows
}
