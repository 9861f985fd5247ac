package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/codec/slot"
)

// Pack-side helpers. Each one locates its target below subtree, reports a
// defect when the skeleton lacks it, and removes the target when value is
// empty.

func (p *call) setSlot(scheme slot.Scheme, subtree *etree.Element, key, value string) {
	e := slot.First(subtree, scheme, key)
	if e == nil {
		p.defect(key, scheme.Name(), nil)
		return
	}
	if err := slot.Set(scheme, e, value); err != nil {
		p.defect(key, scheme.Name(), err)
	}
}

func (p *call) expandSlot(scheme slot.Scheme, subtree *etree.Element, key string, values []string) {
	e := slot.First(subtree, scheme, key)
	if e == nil {
		p.defect(key, scheme.Name(), nil)
		return
	}
	if err := slot.Expand(scheme, e, values); err != nil {
		p.defect(key, scheme.Name(), err)
	}
}

// setTagAttr fills <tag attr="value"/>.
func (p *call) setTagAttr(subtree *etree.Element, tag, attr, value string) {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		p.defect(tag, "element", nil)
		return
	}
	p.setAttr(e, attr, value)
}

// setTagValueAttr fills <tag><value attr="value"/></tag>.
func (p *call) setTagValueAttr(subtree *etree.Element, tag, attr, value string) {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		p.defect(tag, "element", nil)
		return
	}
	if value == "" {
		slot.Prune(e)
		return
	}
	v := slot.FirstDescendant(e, tagValue)
	if v == nil {
		p.defect(tag, "value element", nil)
		return
	}
	p.setAttr(v, attr, value)
}

func (p *call) setAttr(e *etree.Element, attr, value string) {
	a := e.SelectAttr(attr)
	if a == nil {
		p.defect(e.Tag+"@"+attr, "attribute", nil)
		return
	}
	if value == "" {
		slot.Prune(e)
		return
	}
	a.Value = value
}

// setTagText fills <tag>value</tag>.
func (p *call) setTagText(subtree *etree.Element, tag, value string) {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		p.defect(tag, "element", nil)
		return
	}
	if value == "" {
		slot.Prune(e)
		return
	}
	e.SetText(value)
}

// Unpack-side readers. A missing element or attribute reads as "".

func readSlot(scheme slot.Scheme, subtree *etree.Element, key string) string {
	e := slot.First(subtree, scheme, key)
	if e == nil {
		return ""
	}
	v, _ := slot.Read(scheme, e)
	return v
}

func readSlots(scheme slot.Scheme, subtree *etree.Element, key string) []string {
	slots := slot.All(subtree, scheme, key)
	if len(slots) == 0 {
		return nil
	}
	values := make([]string, 0, len(slots))
	for _, e := range slots {
		v, _ := slot.Read(scheme, e)
		values = append(values, v)
	}
	return values
}

func tagAttr(subtree *etree.Element, tag, attr string) string {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		return ""
	}
	return e.SelectAttrValue(attr, "")
}

func tagValueAttr(subtree *etree.Element, tag, attr string) string {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		return ""
	}
	v := slot.FirstDescendant(e, tagValue)
	if v == nil {
		return ""
	}
	return v.SelectAttrValue(attr, "")
}

func tagText(subtree *etree.Element, tag string) string {
	e := slot.FirstDescendant(subtree, tag)
	if e == nil {
		return ""
	}
	return e.Text()
}
