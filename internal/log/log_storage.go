// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns: log.go provides
// the fluent API for building entries, this file handles persistence.
// Errors during logging are reported on stderr but never propagated -
// a validation check must succeed or fail on its own merits even when
// the audit log is unwritable.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, source, operation, subject, expected, success, reason, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, e.Source, e.Operation,
		nilIfEmpty(e.Subject), nilIfEmpty(e.Expected),
		success, nilIfEmpty(e.Reason), detail,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapname: audit log write failed: %v\n", err)
	}
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory so logging still works in
		// unusual environments (containers etc).
		return filepath.Join(".snapname", "log", "snapname-log.db")
	}
	return filepath.Join(home, ".snapname", "log", "snapname-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash fingerprints an untrusted identifier for storage. 64 bits is
// plenty to correlate repeat offenders without keeping the input.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		// Cannot happen with a nil key.
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			start     INTEGER NOT NULL,
			end       INTEGER NOT NULL,
			source    TEXT NOT NULL,
			operation TEXT NOT NULL,
			subject   TEXT,
			expected  TEXT,
			success   INTEGER NOT NULL,
			reason    TEXT,
			detail    TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_operation ON log(operation);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
