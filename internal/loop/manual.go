package loop

import "sync"

// Manual is a FrameRequester pumped by its host. Each Step runs the
// callbacks that were pending when it began; callbacks requested during a
// step run on the next one.
//
// Bubble Tea ticks, Ebiten updates and tests all drive a Manual.
type Manual struct {
	mu      sync.Mutex
	nextID  FrameID
	pending []request
}

type request struct {
	id FrameID
	fn func()
}

// NewManual creates an idle requester.
func NewManual() *Manual {
	return &Manual{}
}

// RequestFrame implements FrameRequester.
func (m *Manual) RequestFrame(fn func()) FrameID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.pending = append(m.pending, request{id: m.nextID, fn: fn})
	return m.nextID
}

// CancelFrame implements FrameRequester.
func (m *Manual) CancelFrame(id FrameID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.pending {
		if r.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Step runs one frame. It reports whether any callback ran.
func (m *Manual) Step() bool {
	m.mu.Lock()
	batch := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, r := range batch {
		r.fn()
	}
	return len(batch) > 0
}

// Pending returns the number of callbacks waiting for the next Step.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
