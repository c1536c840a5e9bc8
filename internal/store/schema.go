package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS trips (
    source               TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    payload              BLOB NOT NULL,
    parsed_at            TEXT NOT NULL
);
`
