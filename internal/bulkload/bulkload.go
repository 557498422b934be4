// Package bulkload implements the core's only I/O: the optional one-shot
// read of the external triples(subject, predicate, object) table named by
// CLOUD_DB_URL (spec §6). It never writes back and is never fatal on
// failure (spec §7): a bulk-load error is logged and the store keeps
// whatever rows were inserted before it (none, if the query itself failed).
//
// Grounded on the teacher's graph/sql postgres.go (lib/pq driver
// registration, database/sql query shape) and internal/load.go (batched,
// logged row consumption via clog).
package bulkload

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/reasoncore/core/clog"
	"github.com/reasoncore/core/store"
)

// MaxRows bounds how many rows are ever read from the external source
// (spec §6: "Read at most 10,000 rows").
const MaxRows = 10000

// Load connects to connStr (a postgres:// URL) and copies up to MaxRows
// rows from triples(subject, predicate, object) into g. A connection or
// query failure is logged through clog and returns a non-fatal summary
// count of zero; the caller proceeds with an empty or partially loaded
// store either way.
func Load(g *store.Graph, connStr string) (int, error) {
	if connStr == "" {
		return 0, nil
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		clog.Errorf("bulkload: could not open %s: %v", safeURL(connStr), err)
		return 0, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT subject, predicate, object FROM triples LIMIT $1`, MaxRows)
	if err != nil {
		clog.Errorf("bulkload: query failed: %v", err)
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var s, p, o string
		if err := rows.Scan(&s, &p, &o); err != nil {
			clog.Errorf("bulkload: scan failed at row %d: %v", n, err)
			break
		}
		if g.Insert(store.New(s, p, o, "")) {
			n++
		}
		if clog.V(2) {
			clog.Infof("bulkload: loaded %d rows", n)
		}
	}
	if err := rows.Err(); err != nil {
		clog.Errorf("bulkload: row iteration failed: %v", err)
		return n, err
	}
	clog.Infof("bulkload: loaded %d triples from external source", n)
	return n, nil
}

// safeURL replaces the whole connection string with its length, so
// credentials never reach the log.
func safeURL(connStr string) string {
	return fmt.Sprintf("<%d byte connection string>", len(connStr))
}
