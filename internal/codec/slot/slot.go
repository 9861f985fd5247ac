// Package slot locates, expands and prunes value slots inside a template
// tree.
//
// A slot is an element whose key lives in a "root" attribute and whose
// value lives in the "extension" attribute of the same element (FlatID) or
// of a nested "value" element (QueryID).
package slot

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

const (
	attrKey   = "root"
	attrValue = "extension"
	tagHolder = "value"
)

var (
	ErrNoHolder    = errors.New("slot has no value holder")
	ErrNoAttribute = errors.New("slot holder has no extension attribute")
)

// Scheme names how a slot is shaped.
type Scheme interface {
	// Name identifies the scheme in logs and metrics.
	Name() string
	// Tag is the element name every slot of the scheme carries.
	Tag() string
	holder(slot *etree.Element) *etree.Element
}

type flatID struct{}

func (flatID) Name() string                           { return "flat_id" }
func (flatID) Tag() string                            { return "id" }
func (flatID) holder(e *etree.Element) *etree.Element { return e }

type queryID struct{}

func (queryID) Name() string { return "query_id" }
func (queryID) Tag() string  { return "livingSubjectId" }
func (queryID) holder(e *etree.Element) *etree.Element {
	return FirstDescendant(e, tagHolder)
}

var (
	// FlatID slots look like <id root="key" extension="value"/>.
	FlatID Scheme = flatID{}
	// QueryID slots wrap the key and value in a nested element:
	// <livingSubjectId><value root="key" extension="value"/>...</livingSubjectId>.
	QueryID Scheme = queryID{}
)

// First returns the first slot under subtree whose key is key, or nil.
func First(subtree *etree.Element, scheme Scheme, key string) *etree.Element {
	var found *etree.Element
	walk(subtree, scheme.Tag(), func(e *etree.Element) bool {
		if keyOf(scheme, e) == key {
			found = e
			return false
		}
		return true
	})
	return found
}

// All returns every slot under subtree whose key is key, in document order.
func All(subtree *etree.Element, scheme Scheme, key string) []*etree.Element {
	var out []*etree.Element
	walk(subtree, scheme.Tag(), func(e *etree.Element) bool {
		if keyOf(scheme, e) == key {
			out = append(out, e)
		}
		return true
	})
	return out
}

func keyOf(scheme Scheme, e *etree.Element) string {
	h := scheme.holder(e)
	if h == nil {
		return ""
	}
	a := h.SelectAttr(attrKey)
	if a == nil {
		return ""
	}
	return a.Value
}

// Read returns the value held by slot. The second result is false when the
// holder or its extension attribute is missing.
func Read(scheme Scheme, slot *etree.Element) (string, bool) {
	h := scheme.holder(slot)
	if h == nil {
		return "", false
	}
	a := h.SelectAttr(attrValue)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Write stores value in slot. It never creates a missing holder or
// attribute; those are template defects and are reported as errors.
func Write(scheme Scheme, slot *etree.Element, value string) error {
	h := scheme.holder(slot)
	if h == nil {
		return ErrNoHolder
	}
	a := h.SelectAttr(attrValue)
	if a == nil {
		return ErrNoAttribute
	}
	a.Value = value
	return nil
}

// Set writes value into slot, or prunes the slot when value is empty.
func Set(scheme Scheme, slot *etree.Element, value string) error {
	if value == "" {
		Prune(slot)
		return nil
	}
	return Write(scheme, slot, value)
}

// Expand makes slot hold values: no values prunes it, otherwise the slot is
// cloned to len(values) siblings first and each is written in order.
func Expand(scheme Scheme, slot *etree.Element, values []string) error {
	if len(values) == 0 {
		Prune(slot)
		return nil
	}
	for i, s := range Clone(slot, len(values)) {
		if err := Write(scheme, s, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns slot followed by n-1 deep copies of it. Each copy is
// inserted right after the previous one and is preceded by a copy of the
// whitespace that precedes slot, so the output keeps its layout. A detached
// slot cannot be cloned and is returned alone.
func Clone(slot *etree.Element, n int) []*etree.Element {
	if n <= 0 {
		return nil
	}
	out := make([]*etree.Element, 1, n)
	out[0] = slot

	parent := slot.Parent()
	if parent == nil {
		return out
	}
	var indent string
	hasIndent := false
	if idx := indexOf(parent, slot); idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && isBlank(cd) {
			indent, hasIndent = cd.Data, true
		}
	}

	prev := slot
	for i := 1; i < n; i++ {
		at := indexOf(parent, prev) + 1
		if hasIndent {
			parent.InsertChildAt(at, etree.NewText(indent))
			at++
		}
		c := slot.Copy()
		parent.InsertChildAt(at, c)
		out = append(out, c)
		prev = c
	}
	return out
}

// Prune detaches tok from its parent together with a whitespace-only text
// token directly before it. It returns the number of tokens removed: 1 or
// 2, or 0 when tok is already detached.
func Prune(tok etree.Token) int {
	parent := tok.Parent()
	if parent == nil {
		return 0
	}
	idx := indexOf(parent, tok)
	if idx < 0 {
		return 0
	}
	parent.RemoveChildAt(idx)
	if idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && isBlank(cd) {
			parent.RemoveChildAt(idx - 1)
			return 2
		}
	}
	return 1
}

// FirstDescendant returns the first element named tag strictly below e in
// document order, or nil.
func FirstDescendant(e *etree.Element, tag string) *etree.Element {
	var found *etree.Element
	walk(e, tag, func(d *etree.Element) bool {
		found = d
		return false
	})
	return found
}

// Descendants returns every element named tag strictly below e in document
// order.
func Descendants(e *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	walk(e, tag, func(d *etree.Element) bool {
		out = append(out, d)
		return true
	})
	return out
}

// walk visits descendants of e named tag in document order until visit
// returns false. Namespace prefixes are ignored.
func walk(e *etree.Element, tag string, visit func(*etree.Element) bool) bool {
	if e == nil {
		return true
	}
	for _, c := range e.ChildElements() {
		if c.Tag == tag && !visit(c) {
			return false
		}
		if !walk(c, tag, visit) {
			return false
		}
	}
	return true
}

func indexOf(parent *etree.Element, tok etree.Token) int {
	for i, c := range parent.Child {
		if c == tok {
			return i
		}
	}
	return -1
}

func isBlank(cd *etree.CharData) bool {
	return strings.TrimSpace(cd.Data) == ""
}
