package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/message"
	"hiebus/pkg/domain"
)

const flatIndent = 4

// newFlatDocument starts a fresh document whose root carries the kind's
// registered tag.
func (p *call) newFlatDocument() (*etree.Document, *etree.Element, error) {
	tag, ok := p.resolver.RootTag(p.kind)
	if !ok {
		return nil, nil, newError(CategoryUnknownKind, p.kind, "no root tag registered", nil)
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement(tag), nil
}

// addField appends <name>value</name> when value is present.
func addField(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(name).SetText(value)
}

func (p *call) packWork(w domain.Work) (*etree.Document, error) {
	doc, root, err := p.newFlatDocument()
	if err != nil {
		return nil, err
	}
	addField(root, fieldSourceAddress, w.SourceAddress)
	addField(root, fieldNotificationID, w.NotificationID)
	addField(root, fieldReassignAddress, w.ReassignAddress)
	doc.Indent(flatIndent)
	return doc, nil
}

// packLogEntry stamps the entry with this node's address and name. The
// entry's own Instance field is not sent; receivers rebuild it from the
// source address.
func (p *call) packLogEntry(m *message.Message, entry domain.LogEntry) (*etree.Document, error) {
	doc, root, err := p.newFlatDocument()
	if err != nil {
		return nil, err
	}
	addField(root, fieldSourceAddress, p.identity.Address())
	addField(root, fieldSourceName, p.identity.Name())
	addField(root, fieldMessageID, m.ID)
	addField(root, fieldSeverity, entry.Severity)
	addField(root, fieldClass, entry.ClassName)
	addField(root, fieldDateTime, p.conv.PackDateTime(entry.DateTime))
	addField(root, fieldMessage, entry.Message)
	doc.Indent(flatIndent)
	return doc, nil
}
