package message

import "hiebus/pkg/domain"

// Body is the typed payload of a message. The set of implementations is
// closed: one variant per Kind, each holding the payload that kind needs.
type Body interface {
	Kind() Kind
	isBody()
}

// PersonRequest asks another node to find, create, modify or take note of
// a person.
type PersonRequest struct {
	Person domain.Person `json:"person"`
	// ResponseRequested asks the receiver to always acknowledge.
	ResponseRequested bool `json:"response_requested,omitempty"`
}

// PersonResponse carries the persons returned for a request. A find-person
// response may hold any number of candidates; accepted responses use at
// most the first.
type PersonResponse struct {
	Persons []domain.Person `json:"persons,omitempty"`
}

// PersonRequestBody is implemented by every body carrying a PersonRequest.
type PersonRequestBody interface {
	Body
	PersonRequest() PersonRequest
}

// PersonResponseBody is implemented by every body carrying a PersonResponse.
type PersonResponseBody interface {
	Body
	PersonResponse() PersonResponse
}

// LogBody is implemented by the log-entry body.
type LogBody interface {
	Body
	LogEntry() domain.LogEntry
}

// WorkBody is implemented by every body carrying a domain.Work.
type WorkBody interface {
	Body
	WorkItem() domain.Work
}

type FindPerson struct{ Request PersonRequest }
type CreatePerson struct{ Request PersonRequest }
type ModifyPerson struct{ Request PersonRequest }
type NotifyPersonChanged struct{ Request PersonRequest }

type FindPersonResponse struct{ Response PersonResponse }
type CreatePersonAccepted struct{ Response PersonResponse }
type ModifyPersonAccepted struct{ Response PersonResponse }

type Log struct{ Entry domain.LogEntry }

type GetWork struct{ Work domain.Work }
type WorkDone struct{ Work domain.Work }
type ReassignWork struct{ Work domain.Work }

func (FindPerson) Kind() Kind           { return KindFindPerson }
func (CreatePerson) Kind() Kind         { return KindCreatePerson }
func (ModifyPerson) Kind() Kind         { return KindModifyPerson }
func (NotifyPersonChanged) Kind() Kind  { return KindNotifyPersonChanged }
func (FindPersonResponse) Kind() Kind   { return KindFindPersonResponse }
func (CreatePersonAccepted) Kind() Kind { return KindCreatePersonAccepted }
func (ModifyPersonAccepted) Kind() Kind { return KindModifyPersonAccepted }
func (Log) Kind() Kind                  { return KindLogEntry }
func (GetWork) Kind() Kind              { return KindGetWork }
func (WorkDone) Kind() Kind             { return KindWorkDone }
func (ReassignWork) Kind() Kind         { return KindReassignWork }

func (FindPerson) isBody()           {}
func (CreatePerson) isBody()         {}
func (ModifyPerson) isBody()         {}
func (NotifyPersonChanged) isBody()  {}
func (FindPersonResponse) isBody()   {}
func (CreatePersonAccepted) isBody() {}
func (ModifyPersonAccepted) isBody() {}
func (Log) isBody()                  {}
func (GetWork) isBody()              {}
func (WorkDone) isBody()             {}
func (ReassignWork) isBody()         {}

func (b FindPerson) PersonRequest() PersonRequest          { return b.Request }
func (b CreatePerson) PersonRequest() PersonRequest        { return b.Request }
func (b ModifyPerson) PersonRequest() PersonRequest        { return b.Request }
func (b NotifyPersonChanged) PersonRequest() PersonRequest { return b.Request }

func (b FindPersonResponse) PersonResponse() PersonResponse   { return b.Response }
func (b CreatePersonAccepted) PersonResponse() PersonResponse { return b.Response }
func (b ModifyPersonAccepted) PersonResponse() PersonResponse { return b.Response }

func (b Log) LogEntry() domain.LogEntry { return b.Entry }

func (b GetWork) WorkItem() domain.Work      { return b.Work }
func (b WorkDone) WorkItem() domain.Work     { return b.Work }
func (b ReassignWork) WorkItem() domain.Work { return b.Work }

// NewPersonRequestBody builds the request variant for kind. It returns false
// for kinds that do not carry a PersonRequest.
func NewPersonRequestBody(kind Kind, req PersonRequest) (Body, bool) {
	switch kind {
	case KindFindPerson:
		return FindPerson{Request: req}, true
	case KindCreatePerson:
		return CreatePerson{Request: req}, true
	case KindModifyPerson:
		return ModifyPerson{Request: req}, true
	case KindNotifyPersonChanged:
		return NotifyPersonChanged{Request: req}, true
	}
	return nil, false
}

// NewPersonResponseBody builds the response variant for kind.
func NewPersonResponseBody(kind Kind, resp PersonResponse) (Body, bool) {
	switch kind {
	case KindFindPersonResponse:
		return FindPersonResponse{Response: resp}, true
	case KindCreatePersonAccepted:
		return CreatePersonAccepted{Response: resp}, true
	case KindModifyPersonAccepted:
		return ModifyPersonAccepted{Response: resp}, true
	}
	return nil, false
}

// NewWorkBody builds the work variant for kind.
func NewWorkBody(kind Kind, w domain.Work) (Body, bool) {
	switch kind {
	case KindGetWork:
		return GetWork{Work: w}, true
	case KindWorkDone:
		return WorkDone{Work: w}, true
	case KindReassignWork:
		return ReassignWork{Work: w}, true
	}
	return nil, false
}
