package room

import (
	"errors"
	"sync"
	"testing"
)

func drain(s *ChannelSession) []Event {
	var out []Event
	for {
		select {
		case evt := <-s.Events():
			out = append(out, evt)
		default:
			return out
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"", DefaultRoom},
		{"  ", DefaultRoom},
		{"ABC", "abc"},
		{" Room-1 ", "room-1"},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.expected {
			t.Errorf("NormalizeCode(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestJoinNotifiesPeers(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	b := NewChannelSession("b", 8)

	hub.Join("ROOM", "alice", a)
	code := hub.Join("room", "bob", b)

	if code != "room" {
		t.Errorf("Join() = %q, expected %q", code, "room")
	}
	evts := drain(a)
	if len(evts) != 1 {
		t.Fatalf("alice got %d events, expected 1", len(evts))
	}
	joined, ok := evts[0].(MemberJoinedEvent)
	if !ok || joined.Member.Player != "bob" {
		t.Errorf("event = %#v, expected bob joined", evts[0])
	}
	if len(drain(b)) != 0 {
		t.Error("joiner should not be notified about itself")
	}
	if got := hub.Members("room"); len(got) != 2 || got[0].Player != "alice" {
		t.Errorf("Members() = %v, expected alice and bob", got)
	}
}

func TestPublishExcludesSender(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	b := NewChannelSession("b", 8)
	c := NewChannelSession("c", 8)
	hub.Join("x", "alice", a)
	hub.Join("x", "bob", b)
	hub.Join("y", "carol", c)
	drain(a)

	if err := hub.Publish("b", 42, true); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	evts := drain(a)
	if len(evts) != 1 {
		t.Fatalf("alice got %d events, expected 1", len(evts))
	}
	score := evts[0].(ScoreEvent)
	if score.Player != "bob" || score.Score != 42 || !score.Final {
		t.Errorf("event = %+v, expected bob final 42", score)
	}
	if len(drain(b)) != 0 {
		t.Error("sender received its own score")
	}
	if len(drain(c)) != 0 {
		t.Error("other room received the score")
	}
}

func TestPublishNotJoined(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Publish("ghost", 1, false); !errors.Is(err, ErrNotJoined) {
		t.Errorf("Publish() error = %v, expected ErrNotJoined", err)
	}
}

func TestLeave(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	b := NewChannelSession("b", 8)
	hub.Join("x", "alice", a)
	hub.Join("x", "bob", b)
	drain(a)

	hub.Leave("b")
	hub.Leave("b")

	evts := drain(a)
	if len(evts) != 1 {
		t.Fatalf("alice got %d events, expected 1", len(evts))
	}
	if _, ok := evts[0].(MemberLeftEvent); !ok {
		t.Errorf("event = %#v, expected MemberLeftEvent", evts[0])
	}

	hub.Leave("a")
	if hub.RoomCount() != 0 {
		t.Errorf("RoomCount() = %d, expected 0", hub.RoomCount())
	}
}

func TestRejoinMovesRoom(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	hub.Join("x", "alice", a)
	hub.Join("y", "alice", a)

	if len(hub.Members("x")) != 0 || len(hub.Members("y")) != 1 {
		t.Errorf("members x=%d y=%d, expected 0 and 1", len(hub.Members("x")), len(hub.Members("y")))
	}
}

func TestRejoinNotifiesOldRoom(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	b := NewChannelSession("b", 8)
	hub.Join("x", "alice", a)
	hub.Join("x", "bob", b)
	drain(a)

	hub.Join("y", "bob", b)

	evts := drain(a)
	if len(evts) != 1 {
		t.Fatalf("alice got %d events, expected 1", len(evts))
	}
	if left, ok := evts[0].(MemberLeftEvent); !ok || left.Member.Player != "bob" {
		t.Errorf("event = %#v, expected MemberLeftEvent for bob", evts[0])
	}
}

func TestRejoinStaysJoined(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 8)
	hub.Join("x", "alice", a)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			hub.Join("x", "alice", a)
		}
	}()

	notJoined := 0
	for i := 0; i < 2000; i++ {
		if err := hub.Publish("a", i, false); errors.Is(err, ErrNotJoined) {
			notJoined++
		}
	}
	wg.Wait()

	if notJoined != 0 {
		t.Errorf("Publish() returned ErrNotJoined %d times during rejoin", notJoined)
	}
}

func TestChannelSessionDropsOldest(t *testing.T) {
	s := NewChannelSession("a", 2)
	s.Send(ScoreEvent{Score: 1})
	s.Send(ScoreEvent{Score: 2})
	s.Send(ScoreEvent{Score: 3})

	evts := drain(s)
	if len(evts) != 2 {
		t.Fatalf("got %d events, expected 2", len(evts))
	}
	if evts[0].(ScoreEvent).Score != 2 || evts[1].(ScoreEvent).Score != 3 {
		t.Errorf("events = %v, expected scores 2 and 3", evts)
	}
}

func TestChannelSessionClosed(t *testing.T) {
	s := NewChannelSession("a", 2)
	s.Close()
	s.Close()
	s.Send(ScoreEvent{Score: 1})

	if len(drain(s)) != 0 {
		t.Error("closed session accepted an event")
	}
}

func TestRelay(t *testing.T) {
	hub := NewHub(nil)
	a := NewChannelSession("a", 64)
	b := NewChannelSession("b", 64)
	hub.Join("x", "alice", a)
	hub.Join("x", "bob", b)
	drain(a)

	r := Relay{Hub: hub, Session: "b", Every: 10}
	for score := 1; score <= 25; score++ {
		r.ReportScore(score)
	}
	r.ReportTermination(25)

	evts := drain(a)
	if len(evts) != 3 {
		t.Fatalf("got %d events, expected 3", len(evts))
	}
	last := evts[2].(ScoreEvent)
	if !last.Final || last.Score != 25 {
		t.Errorf("last event = %+v, expected final 25", last)
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("NewSessionID() returned duplicates")
	}
}
