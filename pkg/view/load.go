package view

import (
	"fmt"

	"github.com/daviddao/weft/pkg/forum"
	"github.com/daviddao/weft/pkg/lattice"
	"github.com/daviddao/weft/pkg/store"
)

// EncodeDetailed serializes a materialized view for the substrate cache.
func EncodeDetailed(d Detailed) ([]byte, error) {
	data, err := lattice.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode detailed view: %w", err)
	}
	return data, nil
}

// DecodeDetailed decodes a cached view. Hard failure on malformed bytes;
// callers decide whether a cache failure is fatal (it never is — see Load).
func DecodeDetailed(data []byte) (Detailed, error) {
	var d Detailed
	if err := lattice.Unmarshal(data, &d); err != nil {
		return Detailed{}, fmt.Errorf("decode detailed view: %w", err)
	}
	return d, nil
}

// Rebuild reconstructs the view from scratch: read every published slice,
// decode, fold. A decode failure of any slice aborts with the offending
// actor's identity — a malformed published slice means merge correctness
// is already gone, so nothing is salvaged.
func Rebuild(sub store.Substrate) (Detailed, error) {
	published, err := sub.ReadAll()
	if err != nil {
		return Detailed{}, fmt.Errorf("read published slices: %w", err)
	}

	root := forum.Root{}
	for _, as := range published {
		slice, err := forum.DecodeSlice(as.Payload)
		if err != nil {
			return Detailed{}, fmt.Errorf("actor %s: %w", as.ActorID, err)
		}
		root = root.WithSlice(forum.ActorID(as.ActorID), slice)
	}
	return Materialize(root), nil
}

// Load returns the materialized view, preferring the substrate's cache.
// The cache is a pure performance shortcut and never authoritative: on
// absence or decode failure Load silently falls back to a full Rebuild.
// Returns the view, whether it came from the cache, and any substrate
// read error.
func Load(sub store.Substrate) (Detailed, bool, error) {
	if payload, err := sub.ReadCache(); err == nil {
		if d, derr := DecodeDetailed(payload); derr == nil {
			return d, true, nil
		}
	}
	d, err := Rebuild(sub)
	return d, false, err
}
