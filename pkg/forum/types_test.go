package forum

import (
	"bytes"
	"testing"

	"github.com/daviddao/weft/pkg/lattice"
)

// buildSlice constructs a populated slice through the session interface.
func buildSlice(actor ActorID, device DeviceID, posts int) Slice {
	var s Slice
	sess := NewSession(&s, actor, device)
	for i := 0; i < posts; i++ {
		mid := sess.NewThread("title", "body", []Tag{"t"})
		sess.React(MessageID{Actor: "other", Local: 0}, "like", true)
		sess.Edit(mid.Local, "edited")
	}
	return s
}

func TestSliceJoinLaws(t *testing.T) {
	samples := []Slice{
		{},
		buildSlice("alice", 1, 1),
		buildSlice("alice", 2, 2),
		buildSlice("bob", 1, 1),
	}
	eq := func(a, b Slice) bool { return a.PartialCompare(b) == lattice.Equal }

	for i, x := range samples {
		if !eq(x.Join(x), x) {
			t.Fatalf("sample %d: join(x,x) != x", i)
		}
		for j, y := range samples {
			if !eq(x.Join(y), y.Join(x)) {
				t.Fatalf("samples %d,%d: join not commutative", i, j)
			}
			for k, z := range samples {
				if !eq(x.Join(y).Join(z), x.Join(y.Join(z))) {
					t.Fatalf("samples %d,%d,%d: join not associative", i, j, k)
				}
			}
		}
	}
}

func TestSliceOrderAgreesWithJoin(t *testing.T) {
	small := buildSlice("alice", 1, 1)
	big := small.Join(buildSlice("alice", 2, 2))

	if small.PartialCompare(big) != lattice.Less {
		t.Fatalf("subset slice should be Less, got %v", small.PartialCompare(big))
	}
	if big.Join(small).PartialCompare(big) != lattice.Equal {
		t.Fatal("joining a dominated slice should be absorbed")
	}
}

func TestRootWithSliceJoins(t *testing.T) {
	a := buildSlice("alice", 1, 1)
	b := buildSlice("alice", 2, 1)

	r := Root{}.WithSlice("alice", a).WithSlice("alice", b)
	want := a.Join(b)
	if r.Inner["alice"].PartialCompare(want) != lattice.Equal {
		t.Fatal("WithSlice should join slices under the same actor")
	}
}

func TestSliceEncodingDeterministic(t *testing.T) {
	s := buildSlice("alice", 1, 3)

	first, err := EncodeSlice(s)
	if err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	// Round-trip then re-encode: same semantic value, same bytes.
	decoded, err := DecodeSlice(first)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	second, err := EncodeSlice(decoded)
	if err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("re-encoding a decoded slice changed the bytes")
	}
}

func TestSliceRoundTripPreservesValue(t *testing.T) {
	s := buildSlice("alice", 1, 2)
	got, err := reencode(s)
	if err != nil {
		t.Fatal(err)
	}
	if got.PartialCompare(s) != lattice.Equal {
		t.Fatal("round trip changed the slice")
	}
}

func TestDecodeSliceMalformedFails(t *testing.T) {
	if _, err := DecodeSlice([]byte{0x9f}); err == nil {
		t.Fatal("malformed slice decoded without error")
	}
	if _, err := DecodeSlice([]byte("garbage bytes")); err == nil {
		t.Fatal("garbage decoded without error")
	}
}

func TestMessageIDIdentity(t *testing.T) {
	a := MessageID{Actor: "alice", Local: LocalID(1<<16 | 3)}
	b := MessageID{Actor: "alice", Local: LocalID(1<<16 | 3)}
	if a != b {
		t.Fatal("identical MessageIDs should compare equal")
	}
	if a.Local.Seq() != 1 || a.Local.Device() != 3 {
		t.Fatalf("Seq/Device = %d/%d, want 1/3", a.Local.Seq(), a.Local.Device())
	}
}
