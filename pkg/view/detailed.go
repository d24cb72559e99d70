// Package view materializes the global threaded view from every actor's
// private slice.
//
// The fold is the one place the system crosses from per-actor truth to a
// shared picture: forward reply edges become back-references, and each
// actor's private opinion counters become votes attributed to that actor.
// The result is derived state only — always reproducible from the Root,
// never merged against another Detailed as a peer, and never a source of
// truth.
//
// Correctness rests on the fold commuting with join: materializing actors
// in any order, or incrementally one slice at a time, yields the same
// Detailed. The fold itself is pure and total — no I/O, no failure modes
// over well-formed input — which also makes it trivially parallelizable
// per actor with a join-reduce, though the sizes involved here never
// warrant it.
package view

//go:generate go run github.com/daviddao/weft/cmd/latticegen -type Thread,Comment,Detailed -output zz_generated_join.go

import (
	"github.com/daviddao/weft/pkg/forum"
	"github.com/daviddao/weft/pkg/lattice"
)

// Vote moduli: a tag opinion is a mod-4 residue (neutral/positive/
// negative/reserved), a reaction a mod-2 residue (off/on). Merge never
// consults these; only Aggregate does.
const (
	TagVoteStates      = 4
	ReactionVoteStates = 2
)

// Tag histogram slots produced by Vote.Aggregate(TagVoteStates).
const (
	TagNeutral = iota
	TagPositive
	TagNegative
	TagReserved
)

// Thread is the derived per-thread state: accumulated titles plus
// per-actor attributed tag votes.
type Thread struct {
	Titles lattice.GuardedPair[lattice.Max[uint64], lattice.GSet[string]] `cbor:"0,keyasint,omitempty"`
	Tags   lattice.GMap[forum.Tag, lattice.Vote[forum.ActorID]]           `cbor:"1,keyasint,omitempty"`
}

// Comment is the derived per-message state. Backrefs is the materialized
// inverse of the forward reply_to edges and is populated only by the
// fold — it has no authored source of truth.
type Comment struct {
	ReplyTo   lattice.GSet[forum.MessageID]                              `cbor:"0,keyasint,omitempty"`
	Content   lattice.GMap[uint64, lattice.Redactable[string]]           `cbor:"1,keyasint,omitempty"`
	Reactions lattice.GMap[forum.Reaction, lattice.Vote[forum.ActorID]]  `cbor:"2,keyasint,omitempty"`
	Backrefs  lattice.GSet[forum.MessageID]                              `cbor:"3,keyasint,omitempty"`
}

// Detailed is the whole materialized view, keyed like the slices that
// produced it: threads and messages by (author, local id).
type Detailed struct {
	Threads  lattice.GMap[forum.ActorID, lattice.GMap[forum.LocalID, Thread]]  `cbor:"0,keyasint,omitempty"`
	Messages lattice.GMap[forum.ActorID, lattice.GMap[forum.LocalID, Comment]] `cbor:"1,keyasint,omitempty"`
}

// Materialize folds every actor's slice in the root into a Detailed.
func Materialize(root forum.Root) Detailed {
	var d Detailed
	for actor, slice := range root.Inner {
		d = d.Absorb(actor, slice)
	}
	return d
}

// Absorb folds one actor's slice into the view. Absorbing the same slice
// twice, or slices in any order, converges to the same result: every step
// is a join against accumulated state. The receiver's maps may be mutated;
// callers must use the returned value.
func (d Detailed) Absorb(actor forum.ActorID, slice forum.Slice) Detailed {
	for id, owned := range slice.Owned {
		// A non-empty title set marks the message as a thread head.
		if len(owned.Titles.Value) > 0 {
			titles := owned.Titles
			titles.Value = titles.Value.Clone()
			d.Threads = joinNested(d.Threads, actor, id, Thread{Titles: titles})
		}

		// The only place backrefs are written: the materialized inverse
		// of the forward reply edge.
		self := forum.MessageID{Actor: actor, Local: id}
		for parent := range owned.ReplyTo {
			d.Messages = joinNested(d.Messages, parent.Actor, parent.Local,
				Comment{Backrefs: lattice.SetOf(self)})
		}

		// Bottom reactions/backrefs are join identities, so this never
		// disturbs state already accumulated on the slot. Containers are
		// cloned at this boundary: the slice stays live in the caller's
		// hands, and a later session mutation must not reach into an
		// already-derived view.
		d.Messages = joinNested(d.Messages, actor, id, Comment{
			ReplyTo: owned.ReplyTo.Clone(),
			Content: owned.Content.Clone(),
		})
	}

	for target, shared := range slice.Shared {
		// Promote the actor's private scalar counters into one-entry
		// attributed votes. Every replica replaying the same root
		// attributes identically, so replays join losslessly instead of
		// double-counting.
		if len(shared.Reactions) > 0 {
			reactions := make(lattice.GMap[forum.Reaction, lattice.Vote[forum.ActorID]], len(shared.Reactions))
			for r, counter := range shared.Reactions {
				reactions[r] = lattice.Ballot(actor, counter.Value)
			}
			d.Messages = joinNested(d.Messages, target.Actor, target.Local,
				Comment{Reactions: reactions})
		}

		if len(shared.Tags) > 0 {
			tags := make(lattice.GMap[forum.Tag, lattice.Vote[forum.ActorID]], len(shared.Tags))
			for tag, counter := range shared.Tags {
				tags[tag] = lattice.Ballot(actor, counter.Value)
			}
			d.Threads = joinNested(d.Threads, target.Actor, target.Local,
				Thread{Tags: tags})
		}
	}

	return d
}

// joinNested join-assigns v into outer[actor][id].
func joinNested[V lattice.Value[V]](
	outer lattice.GMap[forum.ActorID, lattice.GMap[forum.LocalID, V]],
	actor forum.ActorID, id forum.LocalID, v V,
) lattice.GMap[forum.ActorID, lattice.GMap[forum.LocalID, V]] {
	return outer.Upsert(actor, lattice.MapOf(id, v))
}
