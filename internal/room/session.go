package room

import "sync"

// SessionHandle is the transport-neutral interface for delivering events to a session.
type SessionHandle interface {
	// ID returns the unique session identifier.
	ID() SessionID

	// Send delivers an event to the session. Must not block.
	Send(evt Event)

	// Done returns a channel that closes when the session ends.
	Done() <-chan struct{}
}

// ChannelSession is a SessionHandle backed by a buffered channel.
// Used by the TUI layer to bridge Bubble Tea programs with the hub.
type ChannelSession struct {
	id       SessionID
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSession creates a session handle buffering up to bufferSize events.
func NewChannelSession(id SessionID, bufferSize int) *ChannelSession {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelSession{
		id:     id,
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *ChannelSession) ID() SessionID {
	return s.id
}

// Send queues an event. When the buffer is full the oldest event is dropped.
func (s *ChannelSession) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (s *ChannelSession) Events() <-chan Event {
	return s.events
}

// Done returns the done channel.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as done. Safe to call multiple times.
func (s *ChannelSession) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
