package chat

// EventKind discriminates wire events on the subscriber stream.
type EventKind string

const (
	EventSignIn  EventKind = "signIn"
	EventMessage EventKind = "message"
)

// Event is a state-change notification delivered to subscribers in commit
// order. Every event corresponds to a directory insertion or a log append.
type Event interface {
	eventKind() EventKind
}

type SignInEvent struct {
	Kind EventKind `json:"kind"`
	User string    `json:"user"`
}

func (e SignInEvent) eventKind() EventKind { return e.Kind }

func NewSignInEvent(user string) SignInEvent {
	return SignInEvent{Kind: EventSignIn, User: user}
}

type MessageEvent struct {
	Kind    EventKind `json:"kind"`
	Index   int       `json:"index"`
	User    string    `json:"user"`
	Message string    `json:"message"`
}

func (e MessageEvent) eventKind() EventKind { return e.Kind }

func NewMessageEvent(m Message) MessageEvent {
	return MessageEvent{
		Kind:    EventMessage,
		Index:   m.Index,
		User:    m.UserName,
		Message: m.Body,
	}
}
