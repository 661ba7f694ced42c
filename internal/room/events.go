package room

// Event is delivered to the sessions of a room.
type Event interface {
	roomEvent()
}

// ScoreEvent carries another member's score.
type ScoreEvent struct {
	Room    string
	Session SessionID
	Player  string
	Score   int
	Final   bool // The run ended with this score
}

func (ScoreEvent) roomEvent() {}

// MemberJoinedEvent is sent to existing members when someone joins.
type MemberJoinedEvent struct {
	Room   string
	Member Member
}

func (MemberJoinedEvent) roomEvent() {}

// MemberLeftEvent is sent to the remaining members when someone leaves.
type MemberLeftEvent struct {
	Room   string
	Member Member
}

func (MemberLeftEvent) roomEvent() {}
