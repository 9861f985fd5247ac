package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/codec/slot"
	"hiebus/internal/codec/template"
	"hiebus/internal/message"
	"hiebus/internal/platform/tracer"
)

func (p *call) unpack(text string) (*message.Message, error) {
	doc, err := template.Parse(text)
	if err != nil {
		return nil, newError(CategoryMalformedInput, message.KindUnknown, "wire text", err)
	}
	root := doc.Root()
	kind, ok := p.resolver.Resolve(root.Tag)
	if !ok {
		return nil, newError(CategoryUnknownKind, message.KindUnknown, "root tag "+root.Tag, nil)
	}
	p.kind = kind
	p.span.SetAttributes(
		tracer.String(tracer.AttrKind, kind.String()),
		tracer.String(tracer.AttrRootTag, root.Tag),
	)

	m := &message.Message{XML: text}
	switch kind {
	case message.KindFindPerson:
		p.unpackHeader(root, m)
		m.Body, _ = message.NewPersonRequestBody(kind, p.unpackFindPerson(root))

	case message.KindCreatePerson, message.KindModifyPerson, message.KindNotifyPersonChanged:
		p.unpackHeader(root, m)
		m.Body, _ = message.NewPersonRequestBody(kind, p.unpackPersonRequest(root))

	case message.KindFindPersonResponse:
		p.unpackHeader(root, m)
		m.Body, _ = message.NewPersonResponseBody(kind, p.unpackFindPersonResponse(root))

	case message.KindCreatePersonAccepted, message.KindModifyPersonAccepted:
		p.unpackHeader(root, m)
		m.Body, _ = message.NewPersonResponseBody(kind, p.unpackPersonResponse(root))

	case message.KindLogEntry:
		m.Body = message.Log{Entry: p.unpackLogEntry(root, m)}

	case message.KindGetWork, message.KindWorkDone, message.KindReassignWork:
		m.Body, _ = message.NewWorkBody(kind, unpackWork(root))

	default:
		return nil, newError(CategoryUnknownKind, kind, "message has no unpackable body", nil)
	}
	return m, nil
}

// unpackHeader reads the message id and both parties. Absent parts leave
// the envelope fields empty.
func (p *call) unpackHeader(root *etree.Element, m *message.Message) {
	m.ID = readSlot(slot.FlatID, root, oidMessageID)
	if receiver := slot.FirstDescendant(root, tagReceiver); receiver != nil {
		m.DestinationAddress = readSlot(slot.FlatID, receiver, oidApplicationAddress)
		m.DestinationName = tagText(receiver, tagName)
	}
	if sender := slot.FirstDescendant(root, tagSender); sender != nil {
		m.SourceAddress = readSlot(slot.FlatID, sender, oidApplicationAddress)
		m.SourceName = tagText(sender, tagName)
	}
}

func responseRequested(root *etree.Element) bool {
	return tagText(root, tagAcceptAckCode) == ackAlways
}
