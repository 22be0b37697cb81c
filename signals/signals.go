package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags — fully testable outside WASM.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func()
	order  []int
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func())}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers.
func (s *Signal[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) and notifies all subscribers.
// fn runs under the write lock and must not touch the signal.
func (s *Signal[T]) Update(fn func(current T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	subs := make([]func(), 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
}

// Subscribe registers a callback fired when the value changes.
// Returns an unsubscribe func — call it in OnUnmount to avoid memory leaks.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}
