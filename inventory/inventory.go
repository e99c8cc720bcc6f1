// Package inventory resolves node identifiers against a read-only
// sqlite site inventory, so flagged nodes can be reported with their
// site metadata.
package inventory

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Node is one inventory record.
type Node struct {
	NodeID string
	Site   string
	Region string
	Vendor string
}

// DB wraps the inventory database.
type DB struct {
	db *sql.DB
}

// Open opens the inventory read-only. The schema is a single table:
// nodes(node_id, site, region, vendor).
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open inventory %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Lookup returns the inventory record for a node, if any.
func (d *DB) Lookup(nodeID string) (Node, bool) {
	const q = `SELECT node_id, site, region, vendor FROM nodes WHERE node_id=? LIMIT 1`
	var n Node
	err := d.db.QueryRow(q, nodeID).Scan(&n.NodeID, &n.Site, &n.Region, &n.Vendor)
	return n, err == nil
}

// Close releases the database handle.
func (d *DB) Close() error { return d.db.Close() }
