package service

import "sync"

// Collection names used in events, errors and audit details
const (
	CollectionHospitals = "hospitals"
	CollectionPeople    = "people"
)

// EventKind describes what happened to a collection
type EventKind string

const (
	EventLoaded  EventKind = "loaded"
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is published after local state changed
type Event struct {
	Collection string    `json:"collection"`
	Kind       EventKind `json:"kind"`
	ID         string    `json:"id,omitempty"`
}

// broker fans events out to subscribers. A subscriber whose buffer is full
// misses the event rather than blocking the publisher.
type broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	closed bool
}

func newBroker() *broker {
	return &broker{subs: make(map[int]chan Event)}
}

func (b *broker) subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// closeAll closes every subscription; later subscriptions start closed
func (b *broker) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
