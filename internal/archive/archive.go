// Package archive provides SQLite-backed cold storage for memory entries
// retired from the short-term ledger. Compaction is a separate pass over
// the state document; the core ledgers never shrink on their own.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/mindforge/mindforge/internal/model"
)

// Archive stores retired memory entries.
type Archive struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Entry is one archived memory row.
type Entry struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Importance string    `json:"importance"`
	CreatedAt  time.Time `json:"created_at"`
	ArchivedAt time.Time `json:"archived_at"`
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	a := &Archive{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS archived_memories (
		id          TEXT PRIMARY KEY,
		content     TEXT NOT NULL,
		importance  TEXT NOT NULL DEFAULT 'normal',
		created_at  TEXT NOT NULL,
		archived_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_archived_created ON archived_memories(created_at DESC);
	`
	_, err := a.db.Exec(schema)
	return err
}

func (a *Archive) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), a.entropy).String()
}

// Add stores the given entries, returning how many were written.
func (a *Archive) Add(ctx context.Context, entries []model.MemoryEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	stored := 0
	for _, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO archived_memories (id, content, importance, created_at, archived_at)
			 VALUES (?, ?, ?, ?, ?)`,
			a.newID(), e.Content, e.Importance, e.Timestamp.UTC().Format(time.RFC3339), now)
		if err != nil {
			return stored, fmt.Errorf("insert archived memory: %w", err)
		}
		stored++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit archive tx: %w", err)
	}
	return stored, nil
}

// MemorySource hands out stale short-term entries and drops them once
// they are safely archived. *mind.Mind satisfies it.
type MemorySource interface {
	StaleShortTerm(cutoff time.Time) []model.MemoryEntry
	CompactShortTerm(cutoff time.Time) ([]model.MemoryEntry, error)
}

// Compact moves stale short-term entries from src into the archive. The
// insert commits before the document is compacted: a failed insert leaves
// the document untouched, and a failed compact leaves the entries in both
// stores rather than in neither.
func (a *Archive) Compact(ctx context.Context, src MemorySource, cutoff time.Time) (int, error) {
	entries := src.StaleShortTerm(cutoff)
	stored, err := a.Add(ctx, entries)
	if err != nil {
		return stored, err
	}
	if _, err := src.CompactShortTerm(cutoff); err != nil {
		return stored, fmt.Errorf("compact after archive: %w", err)
	}
	return stored, nil
}

// Count returns the number of archived entries.
func (a *Archive) Count(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archived_memories`).Scan(&n)
	return n, err
}

// Recent returns the newest archived entries, most recently created first.
func (a *Archive) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, content, importance, created_at, archived_at
		 FROM archived_memories ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created, archived string
		if err := rows.Scan(&e.ID, &e.Content, &e.Importance, &created, &archived); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		e.ArchivedAt, _ = time.Parse(time.RFC3339, archived)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the archive database.
func (a *Archive) Close() error { return a.db.Close() }
