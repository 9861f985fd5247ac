package codec

import (
	"github.com/beevik/etree"

	"hiebus/internal/codec/scalar"
	"hiebus/internal/codec/slot"
	"hiebus/internal/message"
	"hiebus/pkg/domain"
)

func (p *call) unpackPersonRequest(root *etree.Element) message.PersonRequest {
	req := message.PersonRequest{ResponseRequested: responseRequested(root)}
	if patient := slot.FirstDescendant(root, tagPatient); patient != nil {
		req.Person = p.unpackPerson(patient)
	}
	return req
}

func (p *call) unpackFindPerson(root *etree.Element) message.PersonRequest {
	req := message.PersonRequest{ResponseRequested: responseRequested(root)}
	if query := slot.FirstDescendant(root, tagQuery); query != nil {
		req.Person = p.unpackQuery(query)
	}
	return req
}

// unpackPersonResponse reads the single person of an accepted message. A
// block with nothing in it means no person was sent.
func (p *call) unpackPersonResponse(root *etree.Element) message.PersonResponse {
	patient := slot.FirstDescendant(root, tagPatient)
	if patient == nil {
		return message.PersonResponse{}
	}
	person := p.unpackPerson(patient)
	if person.IsZero() {
		return message.PersonResponse{}
	}
	return message.PersonResponse{Persons: []domain.Person{person}}
}

// unpackFindPersonResponse maps every candidate block to one person, in
// document order.
func (p *call) unpackFindPersonResponse(root *etree.Element) message.PersonResponse {
	var resp message.PersonResponse
	for _, block := range slot.Descendants(root, tagCandidate) {
		person := p.unpackPerson(block)
		person.MatchScore = p.conv.UnpackInt(p.ctx, tagValueAttr(block, tagMatchObservation, attrValue))
		resp.Persons = append(resp.Persons, person)
	}
	return resp
}

// unpackPerson reads a person block with flat id slots. The patient
// registry id becomes PersonGUID; when it repeats the last one wins.
func (p *call) unpackPerson(subtree *etree.Element) domain.Person {
	person := domain.Person{
		Sex:                scalar.UnpackEnum(domain.Sexes, tagAttr(subtree, tagGender, attrCode)),
		Birthdate:          p.conv.UnpackDate(p.ctx, tagAttr(subtree, tagBirthTime, attrValue)),
		OtherName:          readSlot(slot.FlatID, subtree, oidOtherName),
		AliveStatus:        scalar.UnpackEnum(domain.AliveStatuses, readSlot(slot.FlatID, subtree, oidAliveStatus)),
		MothersMiddleName:  readSlot(slot.FlatID, subtree, oidMothersMiddleName),
		VillageName:        readSlot(slot.FlatID, subtree, oidVillageName),
		FingerprintMatched: p.conv.UnpackBool(readSlot(slot.FlatID, subtree, oidFingerprintMatched)),
	}
	if name := slot.FirstDescendant(subtree, tagName); name != nil {
		unpackName(name, &person)
	}

	for _, f := range identifierFields {
		values := readSlots(slot.FlatID, subtree, f.OID)
		if f.Type == domain.PatientRegistryID {
			for _, v := range values {
				if v != "" {
					person.PersonGUID = v
				}
			}
			continue
		}
		person.Identifiers = appendIdentifiers(person.Identifiers, f.Type, values)
	}
	person.Fingerprints = p.unpackFingerprints(slot.FlatID, subtree)
	return person
}

// unpackQuery reads a find-person parameter list. Every identifier type,
// the patient registry id included, lands in the identifier list.
func (p *call) unpackQuery(query *etree.Element) domain.Person {
	person := domain.Person{
		Sex:               scalar.UnpackEnum(domain.Sexes, tagValueAttr(query, tagQueryGender, attrCode)),
		Birthdate:         p.conv.UnpackDate(p.ctx, tagValueAttr(query, tagQueryBirthTime, attrValue)),
		OtherName:         readSlot(slot.QueryID, query, oidOtherName),
		AliveStatus:       scalar.UnpackEnum(domain.AliveStatuses, readSlot(slot.QueryID, query, oidAliveStatus)),
		MothersMiddleName: readSlot(slot.QueryID, query, oidMothersMiddleName),
		VillageName:       readSlot(slot.QueryID, query, oidVillageName),
	}
	if name := slot.FirstDescendant(query, tagQueryName); name != nil {
		unpackName(name, &person)
	}
	for _, f := range identifierFields {
		person.Identifiers = appendIdentifiers(person.Identifiers, f.Type, readSlots(slot.QueryID, query, f.OID))
	}
	person.Fingerprints = p.unpackFingerprints(slot.QueryID, query)
	return person
}

func unpackName(name *etree.Element, person *domain.Person) {
	given := slot.Descendants(name, tagGiven)
	if len(given) > 0 {
		person.FirstName = given[0].Text()
	}
	if len(given) > 1 {
		person.MiddleName = given[1].Text()
	}
	person.LastName = tagText(name, tagFamily)
}

func appendIdentifiers(ids []domain.PersonIdentifier, t domain.IdentifierType, values []string) []domain.PersonIdentifier {
	for _, v := range values {
		if v == "" {
			continue
		}
		ids = append(ids, domain.PersonIdentifier{Type: t, Value: v})
	}
	return ids
}

func (p *call) unpackFingerprints(scheme slot.Scheme, subtree *etree.Element) []domain.Fingerprint {
	var out []domain.Fingerprint
	for _, f := range fingerprintFields {
		for _, v := range readSlots(scheme, subtree, f.OID) {
			if v == "" {
				continue
			}
			if b := p.conv.UnpackBytes(p.ctx, v); b != nil {
				out = append(out, domain.Fingerprint{Type: f.Type, Template: b})
			}
		}
	}
	return out
}
