package store

import (
	"reflect"
	"sync"
)

// Binding keeps the latest value of a selector over a Source.
type Binding[T any] struct {
	mu          sync.Mutex
	current     T
	unsubscribe func()
}

// Bind evaluates selector against src now and after every notification.
// onChange runs only when equal reports that the selected value differs from
// the previous one; it may be nil for pull-only use through Current.
func Bind[S, T any](src Source[S], selector func(S) T, equal func(a, b T) bool, onChange func(T)) *Binding[T] {
	b := &Binding[T]{}
	// Reads of src happen under b.mu so a later read never loses to an
	// earlier one.
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unsubscribe = src.Subscribe(func(S) {
		b.mu.Lock()
		next := selector(src.Get())
		if equal(b.current, next) {
			b.mu.Unlock()
			return
		}
		b.current = next
		b.mu.Unlock()

		if onChange != nil {
			onChange(next)
		}
	})
	b.current = selector(src.Get())
	return b
}

func (b *Binding[T]) Current() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Close stops watching the source.
func (b *Binding[T]) Close() {
	b.unsubscribe()
}

// Identity reports whether two slices are the same view of the same backing
// array. Copy-on-write mutations always produce a new array, so this is the
// cheap "did this collection change" check.
func Identity[E any](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

func Equal[T comparable](a, b T) bool {
	return a == b
}

func DeepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Never treats every notification as a change.
func Never[T any](T, T) bool {
	return false
}
