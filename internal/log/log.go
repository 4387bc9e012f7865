// Package log provides best-effort audit logging of validation
// decisions. Entries are stored in ~/.snapname/log/snapname-log.db and
// record which identifiers were checked, by what operation, and
// whether they were accepted.
//
// Raw identifiers are untrusted input; they are hashed before they are
// written so rejected garbage never lands verbatim in the log. The
// reason strings, by contrast, come from the validators' fixed message
// set and are stored as-is.
//
// # Fluent API
//
//	log.Event("cli:check", "validate-name").
//		Subject(name).
//		Write(err)
//
//	log.Event("cli:tag", "verify-tag").
//		Subject(tag).
//		Expected(snapName).
//		Detail("hook", isHook).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source    string // e.g. "cli:check", "mcp:snap_verify_tag"
	Operation string // validate-name, verify-tag, split-instance, suggest

	// Hashes of the untrusted inputs, never the raw strings.
	Subject  string
	Expected string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the identifier was accepted
	Reason  string         // validator message on rejection
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API. Create with
// [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for a validation operation.
func Event(source, operation string) *Builder {
	return &Builder{
		entry: Entry{
			Source:    source,
			Operation: operation,
			Start:     time.Now().Unix(),
		},
	}
}

// Subject records the identifier being checked. Only a hash of it is
// stored.
func (b *Builder) Subject(raw string) *Builder {
	b.entry.Subject = hash(raw)
	return b
}

// Expected records the snap name the caller expected, for operations
// that compare against one. Only a hash of it is stored.
func (b *Builder) Expected(raw string) *Builder {
	b.entry.Expected = hash(raw)
	return b
}

// Detail adds a key-value pair to the entry's detail map. Callers must
// only pass values derived from the validators' fixed vocabulary, not
// raw input.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write completes the entry, deriving acceptance from err: nil means
// the identifier was accepted, non-nil records the rejection reason.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Reason = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
