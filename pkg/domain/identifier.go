package domain

import "strings"

// IdentifierType names the system that assigned a PersonIdentifier.
type IdentifierType string

const (
	PatientRegistryID       IdentifierType = "patientRegistryId"
	MasterPatientRegistryID IdentifierType = "masterPatientRegistryId"
	TelephoneNo             IdentifierType = "TELEPHONE_NO"
	NationalID              IdentifierType = "NATIONAL_ID"
	NHIFNo                  IdentifierType = "NHIF_NO"
	HudumaNo                IdentifierType = "HUDUMA_NO"
	PassportNo              IdentifierType = "PASSPORT_NO"
	BirthCertificateNo      IdentifierType = "BIRTH_CERTIFICATE_NO"
	BirthNotificationNo     IdentifierType = "BIRTH_NOTIFICATION_NO"
	AlienID                 IdentifierType = "ALIEN_ID"
	NEMISID                 IdentifierType = "NEMIS_ID"
)

// IdentifierTypes is the closed set of identifier types, in wire order.
var IdentifierTypes = []IdentifierType{
	PatientRegistryID,
	MasterPatientRegistryID,
	TelephoneNo,
	NationalID,
	NHIFNo,
	HudumaNo,
	PassportNo,
	BirthCertificateNo,
	BirthNotificationNo,
	AlienID,
	NEMISID,
}

// ParseIdentifierType matches s against the identifier type names,
// ignoring case.
func ParseIdentifierType(s string) (IdentifierType, bool) {
	for _, t := range IdentifierTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// PersonIdentifier is an identifier assigned to a person by one of the
// systems on the bus, for example a national id or an NHIF number.
type PersonIdentifier struct {
	Type  IdentifierType `json:"type"`
	Value string         `json:"value"`
}

// Equal reports whether both identifiers have the same type and the same
// value, ignoring case in the value.
func (pi PersonIdentifier) Equal(other PersonIdentifier) bool {
	return pi.Type == other.Type && strings.EqualFold(pi.Value, other.Value)
}
