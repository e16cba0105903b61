// Package sqlite implements the embedded storage engine for okrboard:
// schema and migrations, the query layer over the four OKR entities,
// snapshot persistence, bulk operations, and the JSON interchange format.
package sqlite

// Schema DDL at the current version. Fresh databases are created from these
// statements directly; older databases reach the same shape through the
// migration steps in migrate.go.
const (
	createObjectives = `CREATE TABLE IF NOT EXISTS objectives (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL CHECK(length(title) <= 200),
    description TEXT,
    driver TEXT NOT NULL DEFAULT '',
    created_date TEXT NOT NULL,
    modified_date TEXT NOT NULL
);`

	createKeyResults = `CREATE TABLE IF NOT EXISTS key_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    objective_id INTEGER NOT NULL,
    title TEXT NOT NULL CHECK(length(title) <= 200),
    metric TEXT NOT NULL CHECK(length(metric) <= 100),
    unit TEXT,
    inverse_metric INTEGER NOT NULL DEFAULT 0 CHECK(inverse_metric IN (0, 1)),
    created_date TEXT NOT NULL,
    modified_date TEXT NOT NULL,
    FOREIGN KEY (objective_id) REFERENCES objectives(id) ON DELETE CASCADE
);`

	createMonthlyData = `CREATE TABLE IF NOT EXISTS monthly_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    key_result_id INTEGER NOT NULL,
    month TEXT NOT NULL CHECK(length(month) = 7),
    target REAL NOT NULL DEFAULT 0 CHECK(target >= 0),
    actual REAL NOT NULL DEFAULT 0 CHECK(actual >= 0),
    last_updated TEXT NOT NULL,
    FOREIGN KEY (key_result_id) REFERENCES key_results(id) ON DELETE CASCADE,
    UNIQUE(key_result_id, month)
);`

	createObjectiveComments = `CREATE TABLE IF NOT EXISTS objective_comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    objective_id INTEGER NOT NULL,
    month TEXT NOT NULL CHECK(length(month) = 7),
    comment TEXT CHECK(length(comment) <= 2000),
    last_updated TEXT NOT NULL,
    FOREIGN KEY (objective_id) REFERENCES objectives(id) ON DELETE CASCADE,
    UNIQUE(objective_id, month)
);`

	createSchemaVersion = `CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);`
)

// Index DDL for the foreign-key lookups the composite reads use.
const (
	idxKeyResultsObjective = `CREATE INDEX IF NOT EXISTS idx_key_results_objective ON key_results(objective_id);`
	idxMonthlyDataMonth    = `CREATE INDEX IF NOT EXISTS idx_monthly_data_month ON monthly_data(month);`
	idxCommentsObjective   = `CREATE INDEX IF NOT EXISTS idx_comments_objective ON objective_comments(objective_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createObjectives,
	createKeyResults,
	createMonthlyData,
	createObjectiveComments,
	createSchemaVersion,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxKeyResultsObjective,
	idxMonthlyDataMonth,
	idxCommentsObjective,
}

// coreTables are the tables an imported database file must contain to be
// accepted as an okrboard snapshot.
var coreTables = []string{"objectives", "key_results", "monthly_data"}
