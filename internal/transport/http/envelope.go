package httptransport

import (
	"hiebus/internal/message"
	"hiebus/pkg/domain"
	dErrors "hiebus/pkg/domain-errors"
)

// Envelope is the JSON form of a bus message. Exactly one payload field
// applies, chosen by Kind; an absent payload packs as an empty one.
type Envelope struct {
	Kind               message.Kind            `json:"kind"`
	ID                 string                  `json:"id,omitempty"`
	SourceAddress      string                  `json:"source_address,omitempty"`
	SourceName         string                  `json:"source_name,omitempty"`
	DestinationAddress string                  `json:"destination_address,omitempty"`
	DestinationName    string                  `json:"destination_name,omitempty"`
	XML                string                  `json:"xml,omitempty"`
	Request            *message.PersonRequest  `json:"request,omitempty"`
	Response           *message.PersonResponse `json:"response,omitempty"`
	LogEntry           *domain.LogEntry        `json:"log_entry,omitempty"`
	Work               *domain.Work            `json:"work,omitempty"`
}

type payload int

const (
	payloadRequest payload = iota
	payloadResponse
	payloadLogEntry
	payloadWork
)

func payloadOf(kind message.Kind) payload {
	switch kind {
	case message.KindFindPerson, message.KindCreatePerson, message.KindModifyPerson, message.KindNotifyPersonChanged:
		return payloadRequest
	case message.KindFindPersonResponse, message.KindCreatePersonAccepted, message.KindModifyPersonAccepted:
		return payloadResponse
	case message.KindLogEntry:
		return payloadLogEntry
	default:
		return payloadWork
	}
}

// Validate rejects an unknown kind and payloads that belong to another kind.
func (e *Envelope) Validate() error {
	if e.Kind == message.KindUnknown {
		return dErrors.New(dErrors.CodeInvalidInput, "kind is required")
	}
	if e.XML != "" && !e.Kind.Templated() {
		return dErrors.New(dErrors.CodeInvalidInput, "xml is only accepted for person kinds")
	}
	want := payloadOf(e.Kind)
	present := map[payload]bool{
		payloadRequest:  e.Request != nil,
		payloadResponse: e.Response != nil,
		payloadLogEntry: e.LogEntry != nil,
		payloadWork:     e.Work != nil,
	}
	for p, ok := range present {
		if ok && p != want {
			return dErrors.New(dErrors.CodeInvalidInput, "payload does not match kind "+e.Kind.String())
		}
	}
	return nil
}

// ToMessage builds the message to pack. A missing id gets a fresh one.
func (e *Envelope) ToMessage() *message.Message {
	m := &message.Message{
		ID:                 e.ID,
		SourceAddress:      e.SourceAddress,
		SourceName:         e.SourceName,
		DestinationAddress: e.DestinationAddress,
		DestinationName:    e.DestinationName,
		XML:                e.XML,
	}
	if m.ID == "" {
		m.ID = domain.NewMessageID()
	}

	switch payloadOf(e.Kind) {
	case payloadRequest:
		var req message.PersonRequest
		if e.Request != nil {
			req = *e.Request
		}
		m.Body, _ = message.NewPersonRequestBody(e.Kind, req)
	case payloadResponse:
		var resp message.PersonResponse
		if e.Response != nil {
			resp = *e.Response
		}
		m.Body, _ = message.NewPersonResponseBody(e.Kind, resp)
	case payloadLogEntry:
		var entry domain.LogEntry
		if e.LogEntry != nil {
			entry = *e.LogEntry
		}
		m.Body = message.Log{Entry: entry}
	case payloadWork:
		var w domain.Work
		if e.Work != nil {
			w = *e.Work
		}
		m.Body, _ = message.NewWorkBody(e.Kind, w)
	}
	return m
}

// FromMessage renders an unpacked message. The wire text is not echoed.
func FromMessage(m *message.Message) Envelope {
	e := Envelope{
		Kind:               m.Kind(),
		ID:                 m.ID,
		SourceAddress:      m.SourceAddress,
		SourceName:         m.SourceName,
		DestinationAddress: m.DestinationAddress,
		DestinationName:    m.DestinationName,
	}
	switch b := m.Body.(type) {
	case message.PersonRequestBody:
		req := b.PersonRequest()
		e.Request = &req
	case message.PersonResponseBody:
		resp := b.PersonResponse()
		e.Response = &resp
	case message.LogBody:
		entry := b.LogEntry()
		e.LogEntry = &entry
	case message.WorkBody:
		w := b.WorkItem()
		e.Work = &w
	}
	return e
}
