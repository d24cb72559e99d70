// retry.go provides automatic retry for transient SQLite errors.
//
// With several devices publishing through one WAL-mode database, SQLite
// can surface transient errors like SQLITE_BUSY, SQLITE_LOCKED and
// IOERR_SHORT_READ (error 522). The busy_timeout pragma absorbs most
// SQLITE_BUSY at the connection level; the rest get application-level
// retries with exponential backoff and jitter. Retrying a slice publish
// is always safe: slices are full snapshots and merging is idempotent.
package store

import (
	"math/rand"
	"strings"
	"time"
)

const (
	retryMax       = 3
	retryBaseDelay = 50 * time.Millisecond
	retryMaxDelay  = 500 * time.Millisecond
)

// isTransientSQLiteErr reports whether the error is a transient SQLite
// error that a retry can resolve:
//   - SQLITE_BUSY (5) — another connection holds a lock
//   - SQLITE_LOCKED (6) — table-level lock conflict
//   - SQLITE_IOERR_SHORT_READ (522) — WAL contention read failure
//   - "database is locked" — text-level busy_timeout fallthrough
func isTransientSQLiteErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// Error codes appear embedded in modernc.org/sqlite error text.
	for _, pattern := range []string{
		"SQLITE_BUSY",
		"SQLITE_LOCKED",
		"IOERR_SHORT_READ",
		"database is locked",
		"database table is locked",
		"(5)",
		"(6)",
		"(522)",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// withRetry executes fn, retrying transient errors with exponential
// backoff plus jitter. Non-transient errors return immediately.
func withRetry(fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= retryMax; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransientSQLiteErr(lastErr) {
			return lastErr
		}
		if attempt < retryMax {
			time.Sleep(backoffDelay(attempt))
		}
	}
	return lastErr
}

// backoffDelay is baseDelay * 2^attempt capped at maxDelay, plus a random
// jitter in [0, baseDelay).
func backoffDelay(attempt int) time.Duration {
	delay := retryBaseDelay << uint(attempt)
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(retryBaseDelay)))
	return delay + jitter
}
