// Package sqlite implements a catalog store on SQLite.
// Each record is one row; the row keeps the record's position in the catalog
// and its single-record JSON document from the codec.
package sqlite

// Schema DDL for the records table.
const (
	createRecords = `CREATE TABLE IF NOT EXISTS records (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    kind TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    document TEXT NOT NULL
);`

	createRecordsKindIndex = `CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind);`
)

// schemaStatements lists the DDL statements executed on open, in order.
var schemaStatements = []string{
	createRecords,
	createRecordsKindIndex,
}
