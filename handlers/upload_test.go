package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"n77audit/audit"
	"n77audit/config"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	dir := t.TempDir()
	return &Handler{
		Cfg: &config.Config{
			OldARFCN:  652000,
			NewARFCN:  655000,
			N77BSSB:   660001,
			UploadDir: filepath.Join(dir, "uploads"),
			OutputDir: filepath.Join(dir, "filtered"),
		},
		Log: zap.NewNop(),
	}
}

func exportWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	x := excelize.NewFile()
	defer x.Close()

	_, err := x.NewSheet("NRFreqRelation")
	require.NoError(t, err)
	rows := [][]string{
		{"NodeId", "NRCellCUId", "NRFreqRelationId"},
		{"N1", "C1", "652000"},
		{"N1", "C1", "655000"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, x.SetCellStr("NRFreqRelation", cell, v))
		}
	}
	require.NoError(t, x.DeleteSheet("Sheet1"))

	buf, err := x.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestUploadRejectsGet(t *testing.T) {
	h := testHandler(t)
	rec := httptest.NewRecorder()
	h.Upload(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUploadRunsAuditAndWritesReport(t *testing.T) {
	h := testHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "export.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(exportWorkbook(t).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := strings.TrimSpace(rec.Body.String())
	require.True(t, strings.HasPrefix(resp, "/download/audit_"), resp)

	out := filepath.Join(h.Cfg.OutputDir, strings.TrimPrefix(resp, "/download/"))
	_, err = os.Stat(out)
	require.NoError(t, err)

	x, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows("SummaryAudit")
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		if len(row) > 2 && row[2] == "NR nodes with both, the old ARFCN (652000) and the new ARFCN (655000) in NRFreqRelation" {
			found = true
			require.Equal(t, "1", row[3])
			require.Equal(t, "N1", row[4])
		}
	}
	require.True(t, found, "expected audit row missing from report sheet")
}

func TestFlaggedNodes(t *testing.T) {
	rep := audit.Report{
		{Category: "NR Frequency Audit", SubCategory: "NRFrequency", ExtraInfo: "IGNORED"},
		{Category: "NR Frequency Inconsistencies", SubCategory: "NRFrequency", ExtraInfo: "N2, N1"},
		{Category: "NR Frequency Inconsistencies", SubCategory: "NRSectorCarrier", ExtraInfo: "N3: 652000; N1: 650000"},
	}
	require.Equal(t, []string{"N1", "N2", "N3"}, flaggedNodes(rep))
}
