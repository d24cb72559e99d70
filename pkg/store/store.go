// Package store is the replication substrate: a WAL-mode SQLite database
// holding one encoded slice blob per actor, plus an optional cached copy
// of the materialized view.
//
// SQLite serves as the exchange medium between devices and processes on
// one machine: the database IS the replication channel. Writes are
// last-write-wins per actor, which is safe because slices only grow and
// are always published in full — a newer snapshot strictly contains every
// older one, and republishing identical content is a no-op. The store
// never interprets payloads; encoding and merge semantics live above it.
//
// The substrate guarantees at most one concurrent writer per actor row
// (SQLite transaction semantics) while readers may observe any consistent,
// possibly stale snapshot at any time.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoCache reports that no materialized view has been cached yet.
// Callers fall back to a full rebuild; the cache is never authoritative.
var ErrNoCache = errors.New("no cached view")

// ActorSlice is one actor's published slice snapshot, still encoded.
type ActorSlice struct {
	ActorID string
	Payload []byte
}

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slices (
		actor_id   TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		digest     TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS view_cache (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		payload    BLOB NOT NULL,
		digest     TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// digest is the content address of a payload. Publishing a payload whose
// digest is already on record is skipped entirely, making retried and
// duplicate publishes free.
func digest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// ---------------------------------------------------------------------------
// Slices
// ---------------------------------------------------------------------------

// WriteSlice publishes an actor's full slice snapshot, last-write-wins.
// Republishing byte-identical content leaves the row untouched.
func (s *Store) WriteSlice(actorID string, payload []byte) error {
	d := digest(payload)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return withRetry(func() error {
		_, err := s.db.Exec(
			`INSERT INTO slices (actor_id, payload, digest, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(actor_id) DO UPDATE SET
			   payload    = excluded.payload,
			   digest     = excluded.digest,
			   updated_at = excluded.updated_at
			 WHERE slices.digest != excluded.digest`,
			actorID, payload, d, now,
		)
		if err != nil {
			return fmt.Errorf("write slice for actor %s: %w", actorID, err)
		}
		return nil
	})
}

// ReadSlice returns an actor's published snapshot, or (nil, nil) if the
// actor has never published — an absent slice is bottom, not an error.
func (s *Store) ReadSlice(actorID string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM slices WHERE actor_id = ?`, actorID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slice for actor %s: %w", actorID, err)
	}
	return payload, nil
}

// ReadAll returns every published actor's snapshot, ordered by actor ID.
func (s *Store) ReadAll() ([]ActorSlice, error) {
	rows, err := s.db.Query(
		`SELECT actor_id, payload FROM slices ORDER BY actor_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("read slices: %w", err)
	}
	defer rows.Close()

	var all []ActorSlice
	for rows.Next() {
		var as ActorSlice
		if err := rows.Scan(&as.ActorID, &as.Payload); err != nil {
			return nil, fmt.Errorf("scan slice row: %w", err)
		}
		all = append(all, as)
	}
	return all, rows.Err()
}

// ListActors returns the IDs of every actor with a published slice.
func (s *Store) ListActors() ([]string, error) {
	rows, err := s.db.Query(`SELECT actor_id FROM slices ORDER BY actor_id`)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()

	var actors []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, id)
	}
	return actors, rows.Err()
}

// SliceDigest returns the stored digest for an actor's snapshot, or the
// empty string if the actor has never published.
func (s *Store) SliceDigest(actorID string) (string, error) {
	var d string
	err := s.db.QueryRow(
		`SELECT digest FROM slices WHERE actor_id = ?`, actorID,
	).Scan(&d)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read digest for actor %s: %w", actorID, err)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// View cache
// ---------------------------------------------------------------------------

// WriteCache stores an encoded materialized view. Purely a performance
// shortcut; losing or corrupting it costs a rebuild, nothing more.
func (s *Store) WriteCache(payload []byte) error {
	d := digest(payload)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return withRetry(func() error {
		_, err := s.db.Exec(
			`INSERT INTO view_cache (id, payload, digest, updated_at)
			 VALUES (1, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   payload    = excluded.payload,
			   digest     = excluded.digest,
			   updated_at = excluded.updated_at`,
			payload, d, now,
		)
		if err != nil {
			return fmt.Errorf("write view cache: %w", err)
		}
		return nil
	})
}

// ReadCache returns the cached view payload, or ErrNoCache.
func (s *Store) ReadCache() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM view_cache WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("read view cache: %w", err)
	}
	return payload, nil
}
