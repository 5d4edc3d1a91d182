package hub

import (
	"log"
	"sync"

	"chatroom/internal/directory"
	"chatroom/internal/messagelog"
	"chatroom/pkg/chat"
)

// Hub coordinates the directory and the message log. Every mutation passes
// through one write lock, and the resulting event is published to all
// subscribers before the lock is released, so global event order matches
// commit order and REST reads never observe a state between a mutation and
// its broadcast.
//
// Subscribers only receive events published after they register; catching up
// on history is the REST layer's job. A client that fetches history and then
// subscribes can miss or double-see an event committed in between; that
// boundary is the client's to handle.
type Hub struct {
	mu        sync.RWMutex
	directory *directory.Service
	log       *messagelog.Service

	submu       sync.RWMutex
	subscribers map[*Subscriber]bool
}

func New(dir *directory.Service, msglog *messagelog.Service) *Hub {
	return &Hub{
		directory:   dir,
		log:         msglog,
		subscribers: make(map[*Subscriber]bool),
	}
}

// SignIn adds the name to the directory and announces it. On validation
// failure nothing is mutated and nothing is published.
func (h *Hub) SignIn(name string) (*chat.User, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	user, err := h.directory.SignIn(name)
	if err != nil {
		return nil, err
	}

	h.publish(chat.NewSignInEvent(user.Name))
	return user, nil
}

// Send appends a message to the log and announces it, returning the
// assigned index.
func (h *Hub) Send(user, text string) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	index, err := h.log.Append(user, text)
	if err != nil {
		return 0, err
	}

	h.publish(chat.NewMessageEvent(chat.Message{Index: index, UserName: user, Body: text}))
	return index, nil
}

// Users returns the signed-in names in alphabetical order.
func (h *Hub) Users() ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.directory.List()
}

// Messages returns all messages in ascending index order.
func (h *Hub) Messages() ([]chat.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.log.List()
}

// Subscribe registers a new event sink. It receives every event published
// from this point on, in publish order, until it disconnects or falls too
// far behind.
func (h *Hub) Subscribe() *Subscriber {
	sub := newSubscriber()

	h.submu.Lock()
	h.subscribers[sub] = true
	count := len(h.subscribers)
	h.submu.Unlock()

	log.Printf("subscriber %s registered (%d active)", sub.id, count)
	return sub
}

// Unsubscribe removes the subscriber and closes its event channel. It is
// idempotent and safe to call concurrently with an in-flight publish.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.submu.Lock()
	if _, ok := h.subscribers[sub]; !ok {
		h.submu.Unlock()
		return
	}
	delete(h.subscribers, sub)
	count := len(h.subscribers)
	h.submu.Unlock()

	// The channel is closed only after the subscriber left the registry,
	// so publish can never send on a closed channel.
	close(sub.events)
	log.Printf("subscriber %s removed (%d active)", sub.id, count)
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.submu.RLock()
	defer h.submu.RUnlock()
	return len(h.subscribers)
}

// publish fans the event out to every registered subscriber. Callers hold
// the hub write lock, so publishes are totally ordered. Delivery is a
// non-blocking send into each subscriber's buffer; a subscriber whose
// buffer is full is dropped rather than allowed to stall the hub or starve
// the others.
func (h *Hub) publish(event chat.Event) {
	h.submu.RLock()
	subs := make([]*Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.submu.RUnlock()

	var stalled []*Subscriber
	for _, sub := range subs {
		if !h.trySend(sub, event) {
			stalled = append(stalled, sub)
		}
	}

	for _, sub := range stalled {
		log.Printf("subscriber %s dropped: delivery buffer full", sub.id)
		h.Unsubscribe(sub)
	}
}

func (h *Hub) trySend(sub *Subscriber, event chat.Event) bool {
	h.submu.RLock()
	defer h.submu.RUnlock()

	// A subscriber gone from the registry may already have a closed
	// channel; skip it instead of reporting a stall.
	if !h.subscribers[sub] {
		return true
	}

	select {
	case sub.events <- event:
		return true
	default:
		return false
	}
}
