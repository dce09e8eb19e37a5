// Package store holds the process-wide application state of the back-office:
// the entity collections (DataStore) and the transient interaction state
// (UIStore). Both are observable; Bind derives a slice of either and reacts
// only when that slice changes.
package store

import (
	"slices"
	"sync"
)

// Listener receives the state produced by a mutation.
type Listener[S any] func(S)

// Source is a readable, observable state holder.
type Source[S any] interface {
	Get() S
	Subscribe(fn Listener[S]) (unsubscribe func())
}

type subscription[S any] struct {
	id uint64
	fn Listener[S]
}

// Store is a subscribe/notify container over a state value. Mutations replace
// the state wholesale; listeners run synchronously on the mutating goroutine,
// in subscription order, after the lock is released so they may read or
// mutate the store themselves.
type Store[S any] struct {
	mu     sync.RWMutex
	state  S
	subs   []subscription[S]
	nextID uint64
}

func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns the current state.
func (s *Store[S]) Get() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it. The returned
// function is safe to call more than once.
func (s *Store[S]) Subscribe(fn Listener[S]) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[S]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription[S]) bool {
			return sub.id == id
		})
	}
}

// SubscriberCount returns the number of registered listeners.
func (s *Store[S]) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Mutate applies fn to the current state. When fn returns an error the state
// is left as it was and nobody is notified.
func (s *Store[S]) Mutate(fn func(S) (S, error)) error {
	s.mu.Lock()
	next, err := fn(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return nil
}
