// Package message defines the envelope exchanged on the bus, the closed set
// of message kinds and the typed body each kind carries.
package message

import (
	"fmt"
)

// Kind identifies a message type and, for templated kinds, the skeleton
// used to pack it.
type Kind int

const (
	KindUnknown Kind = iota
	KindFindPerson
	KindFindPersonResponse
	KindCreatePerson
	KindCreatePersonAccepted
	KindModifyPerson
	KindModifyPersonAccepted
	KindNotifyPersonChanged
	KindLogEntry
	KindGetWork
	KindWorkDone
	KindReassignWork
)

var kindNames = map[Kind]string{
	KindFindPerson:           "findPerson",
	KindFindPersonResponse:   "findPersonResponse",
	KindCreatePerson:         "createPerson",
	KindCreatePersonAccepted: "createPersonAccepted",
	KindModifyPerson:         "modifyPerson",
	KindModifyPersonAccepted: "modifyPersonAccepted",
	KindNotifyPersonChanged:  "notifyPersonChanged",
	KindLogEntry:             "logEntry",
	KindGetWork:              "getWork",
	KindWorkDone:             "workDone",
	KindReassignWork:         "reassignWork",
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindFindPerson; k <= KindReassignWork; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Templated reports whether the kind is packed from a skeleton document.
// Work and log kinds are built from scratch.
func (k Kind) Templated() bool {
	switch k {
	case KindFindPerson, KindFindPersonResponse,
		KindCreatePerson, KindCreatePersonAccepted,
		KindModifyPerson, KindModifyPersonAccepted,
		KindNotifyPersonChanged:
		return true
	}
	return false
}

// ParseKind matches a kind by its name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown message kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown message kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
