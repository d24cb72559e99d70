package forum

import "github.com/daviddao/weft/pkg/lattice"

// Session is the mutation interface over one actor's Slice from one
// device. It owns identifier allocation: a new item's LocalID is the
// count of existing owned items shifted left 16 bits, or'd with the
// device, so sequential allocations on one device never repeat and two
// devices of the same actor never collide.
//
// A Session must have exclusive access to its Slice — at most one live
// session per (actor, device), mirroring each device owning its local
// state exclusively. Different actors, and different devices of one
// actor, share no mutable state and need no synchronization; concurrent
// sessions on the same device racing on allocation are undefined.
//
// Every operation only grows the Slice, so the Slice stays a valid
// semilattice value at every step and can be published at any time.
type Session struct {
	actor  ActorID
	device DeviceID
	slice  *Slice
}

// NewSession binds a session to the actor's slice for one device.
func NewSession(slice *Slice, actor ActorID, device DeviceID) *Session {
	return &Session{actor: actor, device: device, slice: slice}
}

// Actor returns the session's actor identity.
func (s *Session) Actor() ActorID { return s.actor }

// Slice returns the slice the session mutates. Publish the full encoded
// slice, never a diff.
func (s *Session) Slice() *Slice { return s.slice }

func (s *Session) nextLocalID() LocalID {
	return LocalID(uint64(len(s.slice.Owned))<<16 | uint64(s.device))
}

func (s *Session) joinOwned(id LocalID, o Owned) {
	s.slice.Owned = s.slice.Owned.Upsert(id, o)
}

// NewThread creates a thread: an owned message carrying a title under
// guard 0, no reply edge, and body as content version 0. The author's own
// tags are recorded as positive votes in its Shared entry for the new
// message, like any other actor's opinion would be.
func (s *Session) NewThread(title, body string, tags []Tag) MessageID {
	id := s.nextLocalID()
	s.joinOwned(id, Owned{
		Titles: lattice.GuardedPair[lattice.Max[uint64], lattice.GSet[string]]{
			Value: lattice.SetOf(title),
		},
		Content: lattice.MapOf(uint64(0), lattice.Live(body)),
	})

	mid := MessageID{Actor: s.actor, Local: id}
	if len(tags) > 0 {
		sh := s.slice.Shared[mid]
		for _, t := range tags {
			sh.Tags = sh.Tags.Upsert(t, lattice.MaxOf[uint64](1))
		}
		s.slice.Shared = s.slice.Shared.Upsert(mid, sh)
	}
	return mid
}

// Reply creates an owned message answering parent: no title, a forward
// reply edge, body as content version 0. The inverse edge (backref) is
// derived at materialization time, never authored.
func (s *Session) Reply(parent MessageID, body string) MessageID {
	id := s.nextLocalID()
	s.joinOwned(id, Owned{
		ReplyTo: lattice.SetOf(parent),
		Content: lattice.MapOf(uint64(0), lattice.Live(body)),
	})
	return MessageID{Actor: s.actor, Local: id}
}

// Edit appends a new content version to an owned message and returns the
// version number: one sequence step past the highest version this device
// has observed, device-partitioned like LocalIDs. Earlier versions are
// untouched, so concurrent edits from sibling devices all survive.
func (s *Session) Edit(id LocalID, body string) uint64 {
	o := s.slice.Owned[id]

	var hi uint64
	if len(o.Content) > 0 {
		var maxv uint64
		for v := range o.Content {
			if v > maxv {
				maxv = v
			}
		}
		hi = (maxv >> 16) + 1
	}
	version := hi<<16 | uint64(s.device)

	o.Content = o.Content.Upsert(version, lattice.Live(body))
	s.joinOwned(id, o)
	return version
}

// Redact tombstones one content version of an owned message. Redacting a
// version that was never written still succeeds and plants a tombstone at
// that key — after the fact, "never written" and "written then redacted"
// are indistinguishable. Redacting another actor's message is structurally
// impossible: the session only reaches its own Slice.
//
// The id must have come from NewThread or Reply. Redacting an invented id
// plants an Owned entry under it, which inflates the count-based allocator
// and can make a future allocation land on the planted key.
func (s *Session) Redact(id LocalID, version uint64) {
	o := s.slice.Owned[id]
	o.Content = o.Content.Upsert(version, lattice.Tombstone[string]())
	s.joinOwned(id, o)
}

// React sets this actor's reaction on a message to want. The stored
// counter's parity is the current opinion; the counter increments only
// when the desired state differs, so repeated calls are no-ops and the
// counter never decreases.
func (s *Session) React(target MessageID, r Reaction, want bool) {
	sh := s.slice.Shared[target]
	cur := sh.Reactions[r]

	var wantBit uint64
	if want {
		wantBit = 1
	}
	if cur.Value%2 != wantBit {
		cur.Value++
	}

	sh.Reactions = sh.Reactions.Upsert(r, cur)
	s.slice.Shared = s.slice.Shared.Upsert(target, sh)
}

// AdjustTags moves this actor's per-tag opinion counters. The residue
// modulo 4 encodes the opinion: 0 neutral, 1 positive, 2 negative,
// 3 reserved. Transitions only ever increment (wrapping through the
// modulus where needed) so counters stay Max-joinable:
//
//	state   add      remove
//	0       +1 (→1)  +2 (→2)
//	1       no-op    +1 (→2)
//	2       +3 (→1)  no-op
//	3       +2 (→1)  +3 (→2)
func (s *Session) AdjustTags(target MessageID, add, remove []Tag) {
	sh := s.slice.Shared[target]

	for _, t := range add {
		v := sh.Tags[t]
		switch v.Value % 4 {
		case 0:
			v.Value += 1
		case 1:
			// already positive
		case 2:
			v.Value += 3
		default:
			v.Value += 2
		}
		sh.Tags = sh.Tags.Upsert(t, v)
	}

	for _, t := range remove {
		v := sh.Tags[t]
		switch v.Value % 4 {
		case 0:
			v.Value += 2
		case 1:
			v.Value += 1
		case 2:
			// already negative
		default:
			v.Value += 3
		}
		sh.Tags = sh.Tags.Upsert(t, v)
	}

	s.slice.Shared = s.slice.Shared.Upsert(target, sh)
}
