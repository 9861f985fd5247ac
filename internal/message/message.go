package message

import "hiebus/pkg/domain"

// Message is the envelope handed to and returned from the codec.
type Message struct {
	ID                 string
	SourceAddress      string
	SourceName         string
	DestinationAddress string
	DestinationName    string
	Body               Body
	// XML holds pre-formed wire text. When set on a templated kind it
	// replaces the skeleton and only the header is written over it.
	// Unpack fills it with the text that was decoded.
	XML string
}

// NewMessage wraps body in an envelope with a fresh message id.
func NewMessage(body Body) *Message {
	return &Message{ID: domain.NewMessageID(), Body: body}
}

// Kind returns the kind of the body, or KindUnknown for an empty envelope.
func (m *Message) Kind() Kind {
	if m == nil || m.Body == nil {
		return KindUnknown
	}
	return m.Body.Kind()
}
