package hub

import (
	"chatroom/pkg/chat"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Buffered events per subscriber. A consumer this far behind a live chat
// stream is treated as stuck and dropped.
const subscriberBuffer = 256

// Subscriber is a forward-only event sink, one per live connection. It holds
// no authority over directory or log state; it only receives a copy of every
// event published after its registration.
type Subscriber struct {
	id     string
	events chan chat.Event
}

func newSubscriber() *Subscriber {
	return &Subscriber{
		id:     nanoid.Must(8),
		events: make(chan chat.Event, subscriberBuffer),
	}
}

// ID returns the subscriber's identifier.
func (s *Subscriber) ID() string {
	return s.id
}

// Events returns the subscriber's event stream. The channel is closed when
// the subscriber is unsubscribed or dropped by the hub.
func (s *Subscriber) Events() <-chan chat.Event {
	return s.events
}
