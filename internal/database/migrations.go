package database

// migrationsSQL holds every schema migration keyed by version. Versions are
// applied in order and recorded in schema_migrations.
var migrationsSQL = map[int]string{
	1: migrationV1Events,
	2: migrationV2EventsUpdatedIndex,
}

// migrationV1Events creates the planner event table.
//
// Dates are stored as YYYY-MM-DD text so that range queries compare
// lexically in calendar order. Holiday names are never stored; they are
// computed per request.
const migrationV1Events = `
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Calendar day of the event, YYYY-MM-DD
    date TEXT NOT NULL CHECK (length(date) = 10),

    title TEXT NOT NULL CHECK (length(title) > 0),
    notes TEXT,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

-- Week and range views look events up by day
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
`

const migrationV2EventsUpdatedIndex = `
CREATE INDEX IF NOT EXISTS idx_events_updated ON events(updated_at);
`
