// Package forum defines the per-actor schema for coordination-free
// threaded discussions.
//
// Every participant (an actor: a stable identity such as a public key)
// authors content only into its own Slice — a private, append-only
// semilattice. Slices merge without coordination: concurrent devices,
// offline edits and arbitrary replication orders all converge, because
// every field of every entity is a join-semilattice and the whole Slice
// joins fieldwise (see pkg/lattice and cmd/latticegen).
//
// Two rules make multi-writer safety structural rather than enforced:
//
//   - Owned state (titles, reply edges, content) lives under the authoring
//     actor's own keys; nobody else ever writes there.
//   - Opinions about other actors' messages (tags, reactions) are private
//     monotonic counters in the opining actor's own Shared map, attributed
//     to their author only at materialization time (pkg/view).
package forum

//go:generate go run github.com/daviddao/weft/cmd/latticegen -type Owned,Shared,Slice,Root -output zz_generated_join.go

import "github.com/daviddao/weft/pkg/lattice"

// ActorID is an opaque stable identity, e.g. a public key fingerprint.
type ActorID string

// LocalID identifies one of an actor's own items. The low 16 bits carry
// the allocating device, the high bits a per-actor sequence, so devices of
// one actor allocate disjoint IDs with no coordination.
type LocalID uint64

// DeviceID distinguishes concurrent devices of one actor. At most 2^16
// devices per actor.
type DeviceID uint16

// Device returns the device that allocated this ID.
func (id LocalID) Device() DeviceID { return DeviceID(id & 0xffff) }

// Seq returns the per-actor allocation sequence number.
func (id LocalID) Seq() uint64 { return uint64(id) >> 16 }

// MessageID is globally unique forever once issued: the authoring actor
// plus one of its LocalIDs.
type MessageID struct {
	Actor ActorID `cbor:"0,keyasint"`
	Local LocalID `cbor:"1,keyasint"`
}

// Tag is a thread categorization label.
type Tag string

// Reaction is a per-message reaction label, e.g. "like".
type Reaction string

// Owned is the state only the authoring actor may write for one of its
// own messages.
//
// Content maps version numbers to redactable bodies. Edits append new
// versions rather than overwriting, so concurrent edits from two devices
// of the same actor both survive a merge; choosing a canonical version is
// reader policy.
type Owned struct {
	Titles  lattice.GuardedPair[lattice.Max[uint64], lattice.GSet[string]] `cbor:"0,keyasint,omitempty"`
	ReplyTo lattice.GSet[MessageID]                                        `cbor:"1,keyasint,omitempty"`
	Content lattice.GMap[uint64, lattice.Redactable[string]]               `cbor:"2,keyasint,omitempty"`
}

// Shared is one actor's private opinion counters about a message, possibly
// someone else's. Counters only grow; their residues encode the current
// opinion (see Session.React and Session.AdjustTags).
type Shared struct {
	Tags      lattice.GMap[Tag, lattice.Max[uint64]]      `cbor:"0,keyasint,omitempty"`
	Reactions lattice.GMap[Reaction, lattice.Max[uint64]] `cbor:"1,keyasint,omitempty"`
}

// Slice is one actor's entire private, append-only state: everything it
// has authored and every opinion it holds. A Slice is the unit an actor
// publishes to the replication substrate, always in full — it only ever
// grows, so republishing is a join no-op.
type Slice struct {
	Owned  lattice.GMap[LocalID, Owned]    `cbor:"0,keyasint,omitempty"`
	Shared lattice.GMap[MessageID, Shared] `cbor:"1,keyasint,omitempty"`
}

// Root is the join of all known actors' Slices — the unit of replication
// reads. A Root is never authored directly; it is reconstructed from
// whatever slice snapshots the substrate currently holds, and an actor
// missing from the map simply contributes bottom.
type Root struct {
	Inner lattice.GMap[ActorID, Slice] `cbor:"0,keyasint,omitempty"`
}

// WithSlice returns the root with the actor's slice joined in.
func (r Root) WithSlice(actor ActorID, s Slice) Root {
	return Root{Inner: r.Inner.Upsert(actor, s)}
}
