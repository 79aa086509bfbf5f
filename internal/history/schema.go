package history

// Schema DDL for the conversion log. Applied on every Open; the table
// is created only if absent.
const createConversions = `CREATE TABLE IF NOT EXISTS conversions (
    conversion_id TEXT PRIMARY KEY,
    recorded_at TEXT NOT NULL,
    magnitude REAL NOT NULL,
    from_unit TEXT NOT NULL,
    to_unit TEXT NOT NULL,
    result REAL NOT NULL
);`
