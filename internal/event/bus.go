// Package event provides a named-event bus used to deliver external
// triggers (such as a jump) to game actors.
package event

import "sync"

// Jump is dispatched when the player should jump.
const Jump = "jump"

// Listener is invoked synchronously by Dispatch.
type Listener func()

// Bus routes named events to their listeners. It is safe for concurrent use.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string]map[uint64]Listener
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[string]map[uint64]Listener)}
}

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	bus  *Bus
	name string
	id   uint64
	once sync.Once
}

// Subscribe registers fn for the named event.
func (b *Bus) Subscribe(name string, fn Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	if b.listeners[name] == nil {
		b.listeners[name] = make(map[uint64]Listener)
	}
	b.listeners[name][b.nextID] = fn
	return &Subscription{bus: b, name: name, id: b.nextID}
}

// Unsubscribe removes the listener. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		delete(s.bus.listeners[s.name], s.id)
		if len(s.bus.listeners[s.name]) == 0 {
			delete(s.bus.listeners, s.name)
		}
	})
}

// Dispatch calls every listener of the named event and returns how many ran.
// Listeners run outside the bus lock, so they may subscribe or unsubscribe.
func (b *Bus) Dispatch(name string) int {
	b.mu.RLock()
	fns := make([]Listener, 0, len(b.listeners[name]))
	for _, fn := range b.listeners[name] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Listeners returns the number of listeners registered for name.
func (b *Bus) Listeners(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[name])
}
