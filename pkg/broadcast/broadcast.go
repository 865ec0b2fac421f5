// Package broadcast is a hot, payload-free publish/subscribe signal.
//
// Notify wakes every subscriber registered at the time of the call exactly once, in
// subscription order, and returns after the last one returns. Nothing is replayed to
// subscribers that register later.
package broadcast

import (
	"context"
	"sync"
)

// Notifier is the producing side of a Signal.
type Notifier interface {
	Notify(ctx context.Context)
}

// Subscriber is the consuming side of a Signal.
type Subscriber interface {
	Subscribe(fn func(ctx context.Context)) (unsubscribe func())
}

type subscription struct {
	id uint64
	fn func(ctx context.Context)
}

// Signal implements Notifier and Subscriber. The zero value is ready to use.
type Signal struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
}

// New creates an empty Signal.
func New() *Signal {
	return &Signal{}
}

// Subscribe registers fn and returns a function that removes it. Calling the returned
// function more than once is harmless.
func (s *Signal) Subscribe(fn func(ctx context.Context)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Notify calls the current subscribers synchronously. The list is snapshotted first, so a
// subscriber may subscribe or unsubscribe from inside its callback.
func (s *Signal) Notify(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]subscription, len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(ctx)
	}
}

// Len returns the number of active subscribers.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Signal) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
