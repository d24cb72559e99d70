package view

import (
	"bytes"
	"testing"

	"github.com/daviddao/weft/pkg/forum"
	"github.com/daviddao/weft/pkg/lattice"
)

// scenario builds the three-actor fixture from the package examples:
// alice opens a thread, bob replies, carol reacts.
func scenario(t *testing.T) (root forum.Root, threadID, replyID forum.MessageID) {
	t.Helper()

	var alice, bob, carol forum.Slice
	threadID = forum.NewSession(&alice, "alice", 0).NewThread("Hello", "Hi all", []forum.Tag{"intro"})
	replyID = forum.NewSession(&bob, "bob", 2).Reply(threadID, "Welcome!")
	forum.NewSession(&carol, "carol", 0).React(threadID, "like", true)

	root = forum.Root{}.
		WithSlice("alice", alice).
		WithSlice("bob", bob).
		WithSlice("carol", carol)
	return root, threadID, replyID
}

func mustEqualViews(t *testing.T, a, b Detailed, context string) {
	t.Helper()
	if a.PartialCompare(b) != lattice.Equal {
		t.Fatalf("%s: views differ (order %v)", context, a.PartialCompare(b))
	}
	ab, err := EncodeDetailed(a)
	if err != nil {
		t.Fatalf("%s: encode: %v", context, err)
	}
	bb, err := EncodeDetailed(b)
	if err != nil {
		t.Fatalf("%s: encode: %v", context, err)
	}
	if !bytes.Equal(ab, bb) {
		t.Fatalf("%s: views encode to different bytes", context)
	}
}

func TestMaterializeScenario(t *testing.T) {
	root, threadID, replyID := scenario(t)
	d := Materialize(root)

	th := d.Threads["alice"][threadID.Local]
	if !th.Titles.Value.Has("Hello") || len(th.Titles.Value) != 1 {
		t.Fatalf("thread titles = %v, want {Hello}", th.Titles.Value)
	}

	msg := d.Messages["alice"][threadID.Local]
	if !msg.Backrefs.Has(replyID) || len(msg.Backrefs) != 1 {
		t.Fatalf("backrefs = %v, want {%v}", msg.Backrefs, replyID)
	}

	likes := msg.Reactions["like"].Aggregate(ReactionVoteStates)
	if likes[0] != 0 || likes[1] != 1 {
		t.Fatalf("like aggregate = %v, want [0 1]", likes)
	}

	// The author's own tag became an attributed positive vote.
	tags := th.Tags["intro"].Aggregate(TagVoteStates)
	if tags[TagPositive] != 1 {
		t.Fatalf("intro aggregate = %v, want one positive", tags)
	}

	// The reply is a comment with a forward edge and no backrefs of its own.
	reply := d.Messages["bob"][replyID.Local]
	if !reply.ReplyTo.Has(threadID) {
		t.Fatalf("reply.ReplyTo = %v", reply.ReplyTo)
	}
	if len(reply.Backrefs) != 0 {
		t.Fatalf("leaf reply has backrefs: %v", reply.Backrefs)
	}
	// A reply with no title is not a thread.
	if _, ok := d.Threads["bob"]; ok {
		t.Fatal("bob's reply must not appear as a thread")
	}
}

func TestMaterializeOrderIndependent(t *testing.T) {
	root, _, _ := scenario(t)

	actors := []forum.ActorID{"alice", "bob", "carol"}
	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	reference := Materialize(root)
	for _, p := range perms {
		var d Detailed
		for _, i := range p {
			d = d.Absorb(actors[i], root.Inner[actors[i]])
		}
		mustEqualViews(t, d, reference, "permutation fold")
	}
}

func TestMaterializeIncrementalMatchesSinglePass(t *testing.T) {
	root, _, _ := scenario(t)

	var incremental Detailed
	for actor, slice := range root.Inner {
		incremental = incremental.Absorb(actor, slice)
	}
	mustEqualViews(t, incremental, Materialize(root), "incremental fold")
}

func TestAbsorbIdempotent(t *testing.T) {
	root, _, _ := scenario(t)
	once := Materialize(root)

	twice := Materialize(root)
	for actor, slice := range root.Inner {
		twice = twice.Absorb(actor, slice)
	}
	mustEqualViews(t, twice, once, "re-absorbing every slice")
}

func TestAbsorbDoesNotAliasLiveSlice(t *testing.T) {
	// The slice stays live after materialization: later session mutations
	// must not reach into the already-derived view.
	var slice forum.Slice
	sess := forum.NewSession(&slice, "alice", 0)
	mid := sess.NewThread("Hello", "original", []forum.Tag{"intro"})

	d := Materialize(forum.Root{}.WithSlice("alice", slice))

	sess.Redact(mid.Local, 0)
	v1 := sess.Edit(mid.Local, "rewritten")

	content := d.Messages["alice"][mid.Local].Content
	if content[0].Redacted {
		t.Fatal("post-fold Redact tombstoned the derived view")
	}
	if content[0].Value != "original" {
		t.Fatalf("content[0] = %q, want %q", content[0].Value, "original")
	}
	if _, ok := content[v1]; ok {
		t.Fatal("post-fold Edit leaked a new version into the derived view")
	}
	if len(d.Messages["alice"][mid.Local].ReplyTo) != 0 {
		t.Fatalf("reply edges appeared from nowhere: %v", d.Messages["alice"][mid.Local].ReplyTo)
	}
}

func TestConcurrentEditsBothVisibleAfterFold(t *testing.T) {
	var base forum.Slice
	mid := forum.NewSession(&base, "alice", 1).NewThread("T", "orig", nil)

	replicaA := cloneSlice(t, base)
	replicaB := cloneSlice(t, base)
	vA := forum.NewSession(&replicaA, "alice", 1).Edit(mid.Local, "from device A")
	vB := forum.NewSession(&replicaB, "alice", 2).Edit(mid.Local, "from device B")

	root := forum.Root{}.WithSlice("alice", replicaA).WithSlice("alice", replicaB)
	d := Materialize(root)

	content := d.Messages["alice"][mid.Local].Content
	if content[vA].Value != "from device A" || content[vB].Value != "from device B" {
		t.Fatalf("fold lost a concurrent edit: %v", content)
	}
}

func TestRedactionSurvivesFoldAndReplay(t *testing.T) {
	var slice forum.Slice
	sess := forum.NewSession(&slice, "alice", 1)
	mid := sess.NewThread("T", "v0", nil)
	v1 := sess.Edit(mid.Local, "v1")
	v2 := sess.Edit(mid.Local, "v2")
	sess.Redact(mid.Local, v1)

	d := Materialize(forum.Root{}.WithSlice("alice", slice))
	content := d.Messages["alice"][mid.Local].Content
	if !content[v1].Redacted {
		t.Fatal("redacted version live after fold")
	}
	if content[v2].Redacted || content[v2].Value != "v2" {
		t.Fatalf("unredacted version damaged: %+v", content[v2])
	}
}

func TestBackrefCompleteness(t *testing.T) {
	// Several repliers across actors; every forward edge must appear as a
	// backref on its parent.
	var alice, bob, carol forum.Slice
	tid := forum.NewSession(&alice, "alice", 0).NewThread("T", "b", nil)

	bobSess := forum.NewSession(&bob, "bob", 1)
	carolSess := forum.NewSession(&carol, "carol", 1)
	r1 := bobSess.Reply(tid, "r1")
	r2 := carolSess.Reply(tid, "r2")
	r3 := carolSess.Reply(r2, "self-reply")

	root := forum.Root{}.
		WithSlice("alice", alice).
		WithSlice("bob", bob).
		WithSlice("carol", carol)
	d := Materialize(root)

	top := d.Messages[tid.Actor][tid.Local].Backrefs
	if !top.Has(r1) || !top.Has(r2) || len(top) != 2 {
		t.Fatalf("thread backrefs = %v, want {r1, r2}", top)
	}
	if !d.Messages[r2.Actor][r2.Local].Backrefs.Has(r3) {
		t.Fatal("nested reply missing from parent backrefs")
	}
}

func TestReplyToUnknownParentCreatesBackrefSlot(t *testing.T) {
	// The parent was never replicated; its message slot still accumulates
	// the backref, ready to join with the real content when it arrives.
	var bob forum.Slice
	ghost := forum.MessageID{Actor: "alice", Local: 0}
	r := forum.NewSession(&bob, "bob", 1).Reply(ghost, "into the void")

	d := Materialize(forum.Root{}.WithSlice("bob", bob))
	if !d.Messages["alice"][ghost.Local].Backrefs.Has(r) {
		t.Fatal("backref to unreplicated parent lost")
	}
}

func TestVoteRekeyingDoesNotDoubleCountAcrossReplicas(t *testing.T) {
	// Two replicas fold the same root independently; a reader joining
	// their encoded views must see each actor's vote once.
	root, threadID, _ := scenario(t)

	a := Materialize(root)
	b := Materialize(root)
	joined := a.Join(b)

	likes := joined.Messages["alice"][threadID.Local].Reactions["like"].Aggregate(ReactionVoteStates)
	if likes[1] != 1 {
		t.Fatalf("like aggregate after replica join = %v, want exactly one active vote", likes)
	}
}

func TestTagVoteAggregateAcrossActors(t *testing.T) {
	var alice, bob, carol forum.Slice
	tid := forum.NewSession(&alice, "alice", 0).NewThread("T", "b", []forum.Tag{"news"})
	forum.NewSession(&bob, "bob", 0).AdjustTags(tid, []forum.Tag{"news"}, nil)
	forum.NewSession(&carol, "carol", 0).AdjustTags(tid, nil, []forum.Tag{"news"})

	root := forum.Root{}.
		WithSlice("alice", alice).
		WithSlice("bob", bob).
		WithSlice("carol", carol)
	d := Materialize(root)

	hist := d.Threads["alice"][tid.Local].Tags["news"].Aggregate(TagVoteStates)
	if hist[TagPositive] != 2 || hist[TagNegative] != 1 {
		t.Fatalf("news aggregate = %v, want 2 positive / 1 negative", hist)
	}
}

func TestDetailedRoundTrip(t *testing.T) {
	root, _, _ := scenario(t)
	d := Materialize(root)

	data, err := EncodeDetailed(d)
	if err != nil {
		t.Fatalf("EncodeDetailed: %v", err)
	}
	got, err := DecodeDetailed(data)
	if err != nil {
		t.Fatalf("DecodeDetailed: %v", err)
	}
	mustEqualViews(t, got, d, "cache round trip")
}

func cloneSlice(t *testing.T, s forum.Slice) forum.Slice {
	t.Helper()
	data, err := forum.EncodeSlice(s)
	if err != nil {
		t.Fatal(err)
	}
	clone, err := forum.DecodeSlice(data)
	if err != nil {
		t.Fatal(err)
	}
	return clone
}
