package event

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestDispatch(t *testing.T) {
	bus := NewBus()
	var jumps, other int
	bus.Subscribe(Jump, func() { jumps++ })
	bus.Subscribe("other", func() { other++ })

	if n := bus.Dispatch(Jump); n != 1 {
		t.Errorf("Dispatch() = %d, expected 1", n)
	}
	bus.Dispatch(Jump)

	if jumps != 2 {
		t.Errorf("jumps = %d, expected 2", jumps)
	}
	if other != 0 {
		t.Errorf("other = %d, expected 0", other)
	}
}

func TestDispatchNoListeners(t *testing.T) {
	bus := NewBus()
	if n := bus.Dispatch(Jump); n != 0 {
		t.Errorf("Dispatch() = %d, expected 0", n)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub := bus.Subscribe(Jump, func() { calls++ })
	keep := bus.Subscribe(Jump, func() {})

	sub.Unsubscribe()
	sub.Unsubscribe()
	bus.Dispatch(Jump)

	if calls != 0 {
		t.Errorf("calls after Unsubscribe = %d, expected 0", calls)
	}
	if n := bus.Listeners(Jump); n != 1 {
		t.Errorf("Listeners() = %d, expected 1", n)
	}

	keep.Unsubscribe()
	if n := bus.Listeners(Jump); n != 0 {
		t.Errorf("Listeners() = %d, expected 0", n)
	}
}

func TestUnsubscribeFromListener(t *testing.T) {
	bus := NewBus()
	var sub *Subscription
	calls := 0
	sub = bus.Subscribe(Jump, func() {
		calls++
		sub.Unsubscribe()
	})

	bus.Dispatch(Jump)
	bus.Dispatch(Jump)

	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	bus := NewBus()
	var calls atomic.Int64
	bus.Subscribe(Jump, func() { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Dispatch(Jump)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 800 {
		t.Errorf("calls = %d, expected 800", got)
	}
}
