package tui

import "sync"

// Lifetime collects the cleanups of everything a connection hosts. The SSH
// server ends it when the client goes away, which Bubble Tea never reports
// to the models. A nil Lifetime is valid and never ends.
type Lifetime struct {
	mu       sync.Mutex
	ended    bool
	next     uint64
	cleanups map[uint64]func()
}

// NewLifetime creates a running lifetime.
func NewLifetime() *Lifetime {
	return &Lifetime{cleanups: make(map[uint64]func())}
}

// OnEnd registers fn to run when the lifetime ends and returns a function
// that unregisters it. A lifetime that already ended runs fn immediately.
func (l *Lifetime) OnEnd(fn func()) (cancel func()) {
	if l == nil {
		return func() {}
	}

	l.mu.Lock()
	if l.ended {
		l.mu.Unlock()
		fn()
		return func() {}
	}
	l.next++
	id := l.next
	l.cleanups[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.cleanups, id)
		l.mu.Unlock()
	}
}

// End runs every registered cleanup once. Later calls do nothing.
func (l *Lifetime) End() {
	if l == nil {
		return
	}

	l.mu.Lock()
	if l.ended {
		l.mu.Unlock()
		return
	}
	l.ended = true
	fns := l.cleanups
	l.cleanups = nil
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Ended reports whether End was called.
func (l *Lifetime) Ended() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ended
}
