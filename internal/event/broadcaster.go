// Package event fans task mutation events out to connected subscribers.
package event

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/safuramariyam/greenthumb/internal/model"
)

// subscriberBuffer bounds how far a subscriber may fall behind before it is
// dropped.
const subscriberBuffer = 16

// Broadcaster delivers events to every connected subscriber on a best-effort
// basis: no retry, no per-subscriber queue beyond a small buffer. Publish
// never blocks; a subscriber that cannot keep up is evicted.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[string]chan model.Event
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[string]chan model.Event)}
}

// Subscribe registers a new subscriber and returns its id and event channel.
// The channel is closed on Unsubscribe or eviction.
func (b *Broadcaster) Subscribe() (string, <-chan model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan model.Event, subscriberBuffer)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber. Safe to call after eviction.
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers ev to all subscribers. A subscriber whose buffer is full
// is dropped without aborting delivery to the rest.
func (b *Broadcaster) Publish(ev model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("event: dropping slow subscriber %s", id)
			delete(b.subs, id)
			close(ch)
		}
	}
}

// Count reports the number of connected subscribers.
func (b *Broadcaster) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
