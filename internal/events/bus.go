// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events provides the process-wide publish/subscribe channel used to
// broadcast session transitions (login and logoff) to the rest of the client.
//
// Delivery is synchronous: [Bus.Publish] returns only after every subscriber
// registered at the time of the call has run.
package events

import (
	"sort"
	"sync"
)

// Kind identifies an event.
type Kind string

const (
	// Login is published after a session has been saved by login, register
	// or MFA submission.
	Login Kind = "login"
	// Logoff is published right before the session is cleared.
	Logoff Kind = "logoff"
)

// Event is what subscribers receive. It carries no payload beyond its kind.
type Event struct {
	Kind Kind
}

// Handler is a subscriber callback.
type Handler func(Event)

// Bus is a typed publish/subscribe channel. The zero value is not usable;
// create one with [NewBus]. A Bus is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[uint64]Handler)}
}

// Subscribe registers h and returns a function removing it. The returned
// function is idempotent and may be called from within a handler.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// SubscribeKind registers h for events of the given kind only.
func (b *Bus) SubscribeKind(kind Kind, h Handler) (unsubscribe func()) {
	return b.Subscribe(func(e Event) {
		if e.Kind == kind {
			h(e)
		}
	})
}

// Publish delivers e to every current subscriber on the caller's goroutine.
// The subscriber list is snapshotted first, so handlers may subscribe or
// unsubscribe without deadlocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	ids := make([]uint64, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	snapshot := make([]Handler, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(e)
	}
}

// Len returns the number of current subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
