package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests
// use it via GetSchemaSQL(): if repository code references a column that
// doesn't exist here, tests fail immediately with "no such column" instead
// of drifting against production.
const SchemaSQL = `
-- Inbox (raw notes awaiting classification)
CREATE TABLE IF NOT EXISTS inbox (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	raw_text TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('unprocessed', 'processed', 'needs_review')) DEFAULT 'unprocessed',
	category TEXT,
	confidence REAL,
	model TEXT,
	error TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- People (relationships worth maintaining)
CREATE TABLE IF NOT EXISTS people (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	context TEXT,
	follow_up TEXT,
	last_contact TEXT,
	updated_at DATETIME
);

-- Projects (multi-step outcomes)
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('active', 'waiting', 'blocked', 'someday', 'done')) DEFAULT 'active',
	next_action TEXT,
	notes TEXT,
	updated_at DATETIME
);

-- Ideas (sparks, not yet commitments)
CREATE TABLE IF NOT EXISTS ideas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	one_liner TEXT,
	notes TEXT
);

-- Admin (single-step chores)
CREATE TABLE IF NOT EXISTS admin (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task TEXT NOT NULL,
	due_date TEXT,
	status TEXT NOT NULL CHECK(status IN ('open', 'done')) DEFAULT 'open',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Log events (append-only audit trail, one row per terminal decision)
CREATE TABLE IF NOT EXISTS log_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event TEXT NOT NULL,
	inbox_id INTEGER,
	details TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
