// Package state holds the client's UI state containers. Each container is an
// explicit object handed to its consumers, with an observer list instead of
// implicit reactivity.
package state

import "sync"

// observers is a list of callbacks notified with a snapshot of type T.
type observers[T any] struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(T)
}

// add registers fn and returns a function that removes it again.
func (o *observers[T]) add(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fns == nil {
		o.fns = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.fns[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.fns, id)
	}
}

// notify calls every observer outside the lock, in registration order.
func (o *observers[T]) notify(v T) {
	o.mu.Lock()
	fns := make([]func(T), 0, len(o.fns))
	for id := 0; id < o.nextID; id++ {
		if fn, ok := o.fns[id]; ok {
			fns = append(fns, fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
