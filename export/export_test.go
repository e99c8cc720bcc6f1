package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"n77audit/audit"
)

func TestWriteRoundTrip(t *testing.T) {
	rep := audit.Report{
		{Category: "NR Frequency Audit", SubCategory: "NRCellDU", Metric: "NRCellDU table", Value: "Table not found or empty"},
		{Category: "Cardinality Audit", SubCategory: "Cardinality", Metric: "Max NRFrequency definitions per node (limit 64)", Value: 3, ExtraInfo: "N1: 3"},
	}
	details := [][]string{
		{"NodeId", "Site", "Region", "Vendor"},
		{"N1", "SITE-001", "west", "acme"},
	}

	path := filepath.Join(t.TempDir(), "audit.xlsx")
	require.NoError(t, Write(path, rep, details))

	x, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer x.Close()

	require.ElementsMatch(t, []string{"SummaryAudit", "Nodes"}, x.GetSheetList())

	rows, err := x.GetRows("SummaryAudit")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Category", "SubCategory", "Metric", "Value", "ExtraInfo"}, rows[0])
	require.Equal(t, "Table not found or empty", rows[1][3])
	require.Equal(t, "3", rows[2][3])

	nodes, err := x.GetRows("Nodes")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, "SITE-001", nodes[1][1])
}

func TestWriteNoDetailsSkipsNodesSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.xlsx")
	require.NoError(t, Write(path, audit.Report{{Category: "Info", SubCategory: "Info", Metric: "SummaryAudit", Value: "No data available"}}, nil))

	x, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer x.Close()
	require.Equal(t, []string{"SummaryAudit"}, x.GetSheetList())
}
