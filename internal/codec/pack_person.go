package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/codec/slot"
	"hiebus/pkg/domain"
)

// packPerson fills a person block using flat id slots. The patient
// registry id comes from PersonGUID, every other identifier from the
// identifier list.
func (p *call) packPerson(subtree *etree.Element, person domain.Person) {
	p.packName(subtree, tagName, person)
	p.setTagAttr(subtree, tagGender, attrCode, string(person.Sex))
	p.setTagAttr(subtree, tagBirthTime, attrValue, p.conv.PackDate(person.Birthdate))

	p.setSlot(slot.FlatID, subtree, oidOtherName, person.OtherName)
	p.setSlot(slot.FlatID, subtree, oidAliveStatus, string(person.AliveStatus))
	p.setSlot(slot.FlatID, subtree, oidMothersMiddleName, person.MothersMiddleName)
	p.setSlot(slot.FlatID, subtree, oidVillageName, person.VillageName)
	matched, _ := p.conv.PackBool(person.FingerprintMatched)
	p.setSlot(slot.FlatID, subtree, oidFingerprintMatched, matched)

	for _, f := range identifierFields {
		var values []string
		if f.Type == domain.PatientRegistryID {
			if person.PersonGUID != "" {
				values = []string{person.PersonGUID}
			}
		} else {
			values = person.IdentifiersOf(f.Type)
		}
		p.expandSlot(slot.FlatID, subtree, f.OID, values)
	}
	for _, f := range fingerprintFields {
		p.expandSlot(slot.FlatID, subtree, f.OID, p.fingerprintValues(person, f.Type))
	}
}

// packQuery fills a find-person parameter list using query id slots. Here
// every identifier type, the patient registry id included, comes from the
// identifier list.
func (p *call) packQuery(query *etree.Element, person domain.Person) {
	p.packName(query, tagQueryName, person)
	p.setTagValueAttr(query, tagQueryGender, attrCode, string(person.Sex))
	p.setTagValueAttr(query, tagQueryBirthTime, attrValue, p.conv.PackDate(person.Birthdate))

	p.setSlot(slot.QueryID, query, oidOtherName, person.OtherName)
	p.setSlot(slot.QueryID, query, oidAliveStatus, string(person.AliveStatus))
	p.setSlot(slot.QueryID, query, oidMothersMiddleName, person.MothersMiddleName)
	p.setSlot(slot.QueryID, query, oidVillageName, person.VillageName)

	for _, f := range identifierFields {
		p.expandSlot(slot.QueryID, query, f.OID, person.IdentifiersOf(f.Type))
	}
	for _, f := range fingerprintFields {
		p.expandSlot(slot.QueryID, query, f.OID, p.fingerprintValues(person, f.Type))
	}
}

func (p *call) fingerprintValues(person domain.Person, t domain.FingerprintType) []string {
	templates := person.FingerprintsOf(t)
	if len(templates) == 0 {
		return nil
	}
	values := make([]string, len(templates))
	for i, tmpl := range templates {
		values[i] = p.conv.PackBytes(tmpl)
	}
	return values
}

// packName fills the two given positions and the family name. With no name
// at all the whole block goes. A missing first name next to a present
// middle name keeps the first position as an empty element so the middle
// name stays second.
func (p *call) packName(subtree *etree.Element, tag string, person domain.Person) {
	block := slot.FirstDescendant(subtree, tag)
	if block == nil {
		p.defect(tag, "element", nil)
		return
	}
	if !person.HasName() {
		slot.Prune(block)
		return
	}

	given := slot.Descendants(block, tagGiven)
	if len(given) < 2 {
		p.defect(tag+"/"+tagGiven, "element", nil)
	} else {
		first, middle := given[0], given[1]
		if person.FirstName != "" {
			first.SetText(person.FirstName)
		}
		if person.MiddleName != "" {
			middle.SetText(person.MiddleName)
			if person.FirstName == "" {
				first.SetText("")
			}
		} else {
			slot.Prune(middle)
			if person.FirstName == "" {
				slot.Prune(first)
			}
		}
	}
	p.setTagText(block, tagFamily, person.LastName)
}
