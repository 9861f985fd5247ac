package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/message"
	"hiebus/pkg/domain"
)

// field returns the text of the first child named name, or "".
func field(root *etree.Element, name string) string {
	e := root.SelectElement(name)
	if e == nil {
		return ""
	}
	return e.Text()
}

func unpackWork(root *etree.Element) domain.Work {
	return domain.Work{
		SourceAddress:   field(root, fieldSourceAddress),
		NotificationID:  field(root, fieldNotificationID),
		ReassignAddress: field(root, fieldReassignAddress),
	}
}

// unpackLogEntry also restores the envelope fields the entry was stamped
// with when packed.
func (p *call) unpackLogEntry(root *etree.Element, m *message.Message) domain.LogEntry {
	m.ID = field(root, fieldMessageID)
	m.SourceAddress = field(root, fieldSourceAddress)
	m.SourceName = field(root, fieldSourceName)
	return domain.LogEntry{
		Severity:  field(root, fieldSeverity),
		ClassName: field(root, fieldClass),
		DateTime:  p.conv.UnpackDateTime(p.ctx, field(root, fieldDateTime)),
		Message:   field(root, fieldMessage),
		Instance:  m.SourceAddress,
	}
}
