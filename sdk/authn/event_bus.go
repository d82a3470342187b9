package authn

import (
	"sync"

	uuid "github.com/satori/go.uuid"
)

// EventBus is a process-wide publish/subscribe channel for the zero-payload
// "session invalidated" signal. It decouples the component that detects an
// unauthorized response from the component that reacts to it.
type EventBus struct {
	mu            sync.Mutex
	subscriptions []*subscription
}

type subscription struct {
	id      string
	handler func()
}

// NewEventBus returns a new EventBus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers the given handler and returns a function that removes
// it. Handlers are invoked synchronously, in subscription order, once per
// publish. Delivery is at-least-once: a handler may see duplicate publishes
// and must be idempotent.
func (e *EventBus) Subscribe(handler func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	sub := &subscription{
		id:      uuid.NewV4().String(),
		handler: handler,
	}
	e.subscriptions = append(e.subscriptions, sub)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subscriptions {
			if s.id == sub.id {
				e.subscriptions = append(
					e.subscriptions[:i],
					e.subscriptions[i+1:]...,
				)
				break
			}
		}
	}
}

// Publish notifies all current subscribers.
func (e *EventBus) Publish() {
	e.mu.Lock()
	handlers := make([]func(), len(e.subscriptions))
	for i, s := range e.subscriptions {
		handlers[i] = s.handler
	}
	e.mu.Unlock()
	// Invoked outside the lock so a handler may subscribe or unsubscribe
	// without deadlocking
	for _, handler := range handlers {
		handler()
	}
}
