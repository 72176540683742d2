package usage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lexafrica/lexsearch/internal/research"
)

const schema = `
CREATE TABLE IF NOT EXISTS usage_events (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id        TEXT NOT NULL,
	fingerprint       TEXT NOT NULL,
	duration_ms       INTEGER NOT NULL,
	document_count    INTEGER NOT NULL,
	prompt_tokens     INTEGER NOT NULL,
	completion_tokens INTEGER NOT NULL,
	cache_hit         INTEGER NOT NULL,
	occurred_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_usage_events_fingerprint ON usage_events(fingerprint);
`

// SQLiteRecorder persists usage events to a local SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

var _ research.UsageRecorder = (*SQLiteRecorder)(nil)

// NewSQLiteRecorder opens (creating if needed) the usage database at
// path. Use ":memory:" for an ephemeral store.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init usage schema: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// Record implements research.UsageRecorder.
func (r *SQLiteRecorder) Record(ctx context.Context, event research.UsageEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usage_events
			(request_id, fingerprint, duration_ms, document_count,
			 prompt_tokens, completion_tokens, cache_hit, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.RequestID,
		event.Fingerprint,
		event.Duration.Milliseconds(),
		event.DocumentCount,
		event.PromptTokens,
		event.CompletionTokens,
		boolToInt(event.CacheHit),
		event.OccurredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert usage event: %w", err)
	}
	return nil
}

// Count returns the number of recorded events. Used by tests and the
// stats output.
func (r *SQLiteRecorder) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM usage_events").Scan(&n)
	return n, err
}

// Close releases the underlying database handle.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
