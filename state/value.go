// Package state provides an observable value for state that other parts of the app read and react to.
// The owner of a [Value] keeps it unexported and only hands out reads and subscriptions,
// so it stays clear who may write.
package state

import (
	"sync"
)

// Value holds a T and notifies subscribers on every Set.
// It's safe for concurrent use.
type Value[T any] struct {
	mu     sync.RWMutex
	v      T
	nextID int
	subs   map[int]func(T)
}

// NewValue with the initial value v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{
		v:    v,
		subs: map[int]func(T){},
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.v
}

// Set the value and call all subscribers with it, after the lock is released.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	v.v = x
	subs := make([]func(T), 0, len(v.subs))
	for _, f := range v.subs {
		subs = append(subs, f)
	}
	v.mu.Unlock()

	for _, f := range subs {
		f(x)
	}
}

// Subscribe f to future changes. The returned function unsubscribes and is safe to call more than once.
func (v *Value[T]) Subscribe(f func(T)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.subs[id] = f

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}
