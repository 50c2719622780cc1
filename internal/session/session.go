package session

import (
	"sync"
	"time"
)

type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

// Event is one sign-in/out transition of an identity.
type Event struct {
	Type   EventType
	UserID string
	At     time.Time
}

// Broker fans session transitions out to subscribers. It replaces the
// ambient "current user" global of the original client: anything that
// cares about sign-in/out gets an explicit subscription instead of
// reading shared mutable state.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan Event)}
}

// Subscribe returns a receive channel and a cancel func. The channel is
// closed on cancel; events are dropped for subscribers that fall behind,
// Publish never blocks.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}

	return ch, cancel
}

func (b *Broker) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
