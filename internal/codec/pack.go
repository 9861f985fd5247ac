package codec

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"hiebus/internal/codec/slot"
	"hiebus/internal/codec/template"
	"hiebus/internal/message"
	"hiebus/internal/platform/tracer"
	"hiebus/pkg/domain"
)

func (p *call) pack(m *message.Message) (string, error) {
	var (
		doc *etree.Document
		err error
	)
	switch p.kind {
	case message.KindFindPerson:
		req, ok := m.Body.(message.PersonRequestBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packFindPerson(m, req.PersonRequest())

	case message.KindCreatePerson, message.KindModifyPerson, message.KindNotifyPersonChanged:
		req, ok := m.Body.(message.PersonRequestBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packPersonRequest(m, req.PersonRequest())

	case message.KindFindPersonResponse:
		resp, ok := m.Body.(message.PersonResponseBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packFindPersonResponse(m, resp.PersonResponse())

	case message.KindCreatePersonAccepted, message.KindModifyPersonAccepted:
		resp, ok := m.Body.(message.PersonResponseBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packPersonResponse(m, resp.PersonResponse())

	case message.KindLogEntry:
		entry, ok := m.Body.(message.LogBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packLogEntry(m, entry.LogEntry())

	case message.KindGetWork, message.KindWorkDone, message.KindReassignWork:
		w, ok := m.Body.(message.WorkBody)
		if !ok {
			return "", p.payloadMismatch(m.Body)
		}
		doc, err = p.packWork(w.WorkItem())

	default:
		return "", newError(CategoryUnknownKind, p.kind, "message has no packable body", nil)
	}
	if err != nil {
		return "", err
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", newError(CategoryMalformedInput, p.kind, "serialize document", err)
	}
	return out, nil
}

// payloadMismatch reports a body whose type lacks the payload of its kind.
func (p *call) payloadMismatch(b message.Body) error {
	return newError(CategoryUnknownKind, p.kind, fmt.Sprintf("body %T does not carry the payload of its kind", b), nil)
}

// base returns the tree to pack into: the caller's pre-formed XML when
// present, the kind's skeleton otherwise.
func (p *call) base(m *message.Message) (*etree.Document, error) {
	if m.XML != "" {
		doc, err := template.Parse(m.XML)
		if err != nil {
			return nil, newError(CategoryMalformedInput, p.kind, "pre-formed xml", err)
		}
		return doc, nil
	}
	doc, err := p.loader.Load(p.kind.String())
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, template.ErrMalformed):
		return nil, newError(CategoryMalformedInput, p.kind, "skeleton", err)
	default:
		return nil, newError(CategoryTemplateNotFound, p.kind, "skeleton", err)
	}
}

// packHeader writes the message id and both parties. A skeleton without a
// receiver or sender block skips that party.
func (p *call) packHeader(root *etree.Element, m *message.Message) {
	p.setSlot(slot.FlatID, root, oidMessageID, m.ID)
	p.packParty(root, tagReceiver, m.DestinationAddress, m.DestinationName)
	p.packParty(root, tagSender, m.SourceAddress, m.SourceName)
}

func (p *call) packParty(root *etree.Element, tag, address, name string) {
	party := slot.FirstDescendant(root, tag)
	if party == nil {
		p.defect(tag, "header", nil)
		return
	}
	p.setSlot(slot.FlatID, party, oidApplicationAddress, address)
	p.setTagText(party, tagName, name)
}

func (p *call) packPersonRequest(m *message.Message, req message.PersonRequest) (*etree.Document, error) {
	doc, err := p.base(m)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	p.packHeader(root, m)
	if m.XML != "" {
		return doc, nil
	}

	patient := slot.FirstDescendant(root, tagPatient)
	if patient == nil {
		p.defect(tagPatient, "element", nil)
	} else {
		p.packPerson(patient, req.Person)
	}
	if req.ResponseRequested {
		p.setTagText(root, tagAcceptAckCode, ackAlways)
	}
	return doc, nil
}

// packPersonResponse packs the first person of the response. An empty
// response still packs an empty person so none of the skeleton's sample
// values leak onto the wire.
func (p *call) packPersonResponse(m *message.Message, resp message.PersonResponse) (*etree.Document, error) {
	doc, err := p.base(m)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	p.packHeader(root, m)
	if m.XML != "" {
		return doc, nil
	}

	var person domain.Person
	if len(resp.Persons) > 0 {
		person = resp.Persons[0]
	}
	patient := slot.FirstDescendant(root, tagPatient)
	if patient == nil {
		p.defect(tagPatient, "element", nil)
		return doc, nil
	}
	p.packPerson(patient, person)
	return doc, nil
}

func (p *call) packFindPerson(m *message.Message, req message.PersonRequest) (*etree.Document, error) {
	doc, err := p.base(m)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	p.packHeader(root, m)
	if m.XML != "" {
		return doc, nil
	}

	if req.ResponseRequested {
		p.setTagText(root, tagAcceptAckCode, ackAlways)
	}
	query := slot.FirstDescendant(root, tagQuery)
	if query == nil {
		p.defect(tagQuery, "element", nil)
		return doc, nil
	}
	p.packQuery(query, req.Person)
	return doc, nil
}

// packFindPersonResponse repeats the candidate block once per person before
// filling any of them, so every copy starts with the full set of slots.
func (p *call) packFindPersonResponse(m *message.Message, resp message.PersonResponse) (*etree.Document, error) {
	doc, err := p.base(m)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	p.packHeader(root, m)
	if m.XML != "" {
		return doc, nil
	}

	p.span.SetAttributes(tracer.Int(tracer.AttrCandidates, len(resp.Persons)))
	candidate := slot.FirstDescendant(root, tagCandidate)
	if candidate == nil {
		p.defect(tagCandidate, "element", nil)
		return doc, nil
	}
	if len(resp.Persons) == 0 {
		slot.Prune(candidate)
		return doc, nil
	}
	for i, block := range slot.Clone(candidate, len(resp.Persons)) {
		p.packCandidate(block, resp.Persons[i])
	}
	return doc, nil
}

func (p *call) packCandidate(block *etree.Element, person domain.Person) {
	p.packPerson(block, person)
	p.setTagValueAttr(block, tagMatchObservation, attrValue, p.conv.PackInt(person.MatchScore))
}
