package inventory

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE nodes (node_id TEXT PRIMARY KEY, site TEXT, region TEXT, vendor TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO nodes VALUES ('N1', 'SITE-001', 'west', 'acme')`)
	require.NoError(t, err)
	return path
}

func TestLookup(t *testing.T) {
	inv, err := Open(seedDB(t))
	require.NoError(t, err)
	defer inv.Close()

	n, ok := inv.Lookup("N1")
	require.True(t, ok)
	require.Equal(t, Node{NodeID: "N1", Site: "SITE-001", Region: "west", Vendor: "acme"}, n)

	_, ok = inv.Lookup("unknown")
	require.False(t, ok)
}
