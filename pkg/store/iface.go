// iface.go defines the Substrate interface for dependency injection and
// testing.
//
// The concrete *Store type satisfies it. Code that consumes the substrate
// (the cmd layer, the view loader) accepts Substrate instead of *Store,
// enabling mock injection in tests. The contract is deliberately narrow:
// opaque payloads in, opaque payloads out — encoding and merge semantics
// are not the substrate's business.
package store

// Substrate is the replication substrate contract.
type Substrate interface {
	// Close closes the substrate.
	Close() error

	// --- Slices ---

	// WriteSlice publishes an actor's full encoded slice, last-write-wins.
	// Callers must publish complete snapshots, never diffs. Retrying a
	// failed publish is always safe.
	WriteSlice(actorID string, payload []byte) error

	// ReadSlice returns an actor's snapshot, or (nil, nil) if the actor
	// has never published (bottom, not an error).
	ReadSlice(actorID string) ([]byte, error)

	// ReadAll returns every currently published actor's snapshot.
	ReadAll() ([]ActorSlice, error)

	// ListActors returns the IDs of every actor with a published slice.
	ListActors() ([]string, error)

	// SliceDigest returns the content digest of an actor's snapshot, or
	// "" if the actor has never published.
	SliceDigest(actorID string) (string, error)

	// --- View cache ---

	// WriteCache stores an encoded materialized view (never authoritative).
	WriteCache(payload []byte) error

	// ReadCache returns the cached view, or ErrNoCache.
	ReadCache() ([]byte, error)
}

// Compile-time check that *Store implements Substrate.
var _ Substrate = (*Store)(nil)
