package main

import (
	"testing"

	"github.com/daviddao/weft/pkg/forum"
)

func TestParseMessageID(t *testing.T) {
	tests := []struct {
		in      string
		want    forum.MessageID
		wantErr bool
	}{
		{in: "alice/0", want: forum.MessageID{Actor: "alice", Local: 0}},
		{in: "alice/65537", want: forum.MessageID{Actor: "alice", Local: 65537}},
		{in: "team/alice/7", want: forum.MessageID{Actor: "team/alice", Local: 7}},
		{in: "alice", wantErr: true},
		{in: "/7", wantErr: true},
		{in: "alice/", wantErr: true},
		{in: "alice/seven", wantErr: true},
		{in: "alice/-1", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseMessageID(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMessageID(%q) accepted, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMessageID(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMessageID(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestMessageIDRoundTrip(t *testing.T) {
	id := forum.MessageID{Actor: "carol", Local: 131074}
	got, err := parseMessageID(formatMessageID(id))
	if err != nil {
		t.Fatalf("parse(format): %v", err)
	}
	if got != id {
		t.Fatalf("round trip = %+v, want %+v", got, id)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []forum.Tag
	}{
		{in: "", want: nil},
		{in: "a", want: []forum.Tag{"a"}},
		{in: "a,b,c", want: []forum.Tag{"a", "b", "c"}},
		{in: " a , b ", want: []forum.Tag{"a", "b"}},
		{in: ",,a,", want: []forum.Tag{"a"}},
	}
	for _, tt := range tests {
		got := splitTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitTags(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestResolveActor(t *testing.T) {
	a := &app{cfg: config{Actor: "from-env"}}

	if got, err := a.resolveActor("from-flag"); err != nil || got != "from-flag" {
		t.Errorf("flag override = (%q, %v)", got, err)
	}
	if got, err := a.resolveActor(""); err != nil || got != "from-env" {
		t.Errorf("env fallback = (%q, %v)", got, err)
	}

	bare := &app{}
	if _, err := bare.resolveActor(""); err == nil {
		t.Error("no actor anywhere should be an error")
	}
}

func TestResolveDevice(t *testing.T) {
	a := &app{cfg: config{Device: 3}}

	if got, err := a.resolveDevice(-1); err != nil || got != 3 {
		t.Errorf("sentinel = (%d, %v), want env value 3", got, err)
	}
	if got, err := a.resolveDevice(7); err != nil || got != 7 {
		t.Errorf("flag override = (%d, %v)", got, err)
	}
	if got, err := a.resolveDevice(65535); err != nil || got != 65535 {
		t.Errorf("max device = (%d, %v)", got, err)
	}
	if _, err := a.resolveDevice(65536); err == nil {
		t.Error("device beyond uint16 accepted")
	}
}
