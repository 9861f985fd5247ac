package domain

import "time"

// Sex is a person's administrative gender.
type Sex string

const (
	SexFemale Sex = "F"
	SexMale   Sex = "M"
)

// Sexes lists every Sex value in declaration order.
var Sexes = []Sex{SexFemale, SexMale}

// AliveStatus records whether a person is known to be alive.
type AliveStatus string

const (
	AliveStatusYes AliveStatus = "yes"
	AliveStatusNo  AliveStatus = "no"
)

// AliveStatuses lists every AliveStatus value in declaration order.
var AliveStatuses = []AliveStatus{AliveStatusYes, AliveStatusNo}

// Person is the identity record exchanged between registries.
//
// Absent values are zero values: empty strings, a zero Birthdate, nil
// slices. PersonGUID is the registry's own id for the person and travels in
// the patient-registry-id slot rather than in Identifiers.
type Person struct {
	FirstName          string             `json:"first_name,omitempty"`
	MiddleName         string             `json:"middle_name,omitempty"`
	LastName           string             `json:"last_name,omitempty"`
	Sex                Sex                `json:"sex,omitempty"`
	Birthdate          time.Time          `json:"birthdate,omitzero"`
	AliveStatus        AliveStatus        `json:"alive_status,omitempty"`
	OtherName          string             `json:"other_name,omitempty"`
	MothersMiddleName  string             `json:"mothers_middle_name,omitempty"`
	VillageName        string             `json:"village_name,omitempty"`
	PersonGUID         string             `json:"person_guid,omitempty"`
	Identifiers        []PersonIdentifier `json:"identifiers,omitempty"`
	Fingerprints       []Fingerprint      `json:"fingerprints,omitempty"`
	MatchScore         int                `json:"match_score,omitempty"`
	FingerprintMatched bool               `json:"fingerprint_matched,omitempty"`
}

// HasName reports whether any part of the name is present.
func (p Person) HasName() bool {
	return p.FirstName != "" || p.MiddleName != "" || p.LastName != ""
}

// IdentifiersOf returns the values of every identifier of type t that has a
// value, in list order.
func (p Person) IdentifiersOf(t IdentifierType) []string {
	var values []string
	for _, pi := range p.Identifiers {
		if pi.Type == t && pi.Value != "" {
			values = append(values, pi.Value)
		}
	}
	return values
}

// FingerprintsOf returns the templates of every fingerprint of type t that
// has a template, in list order.
func (p Person) FingerprintsOf(t FingerprintType) [][]byte {
	var templates [][]byte
	for _, f := range p.Fingerprints {
		if f.Type == t && f.Template != nil {
			templates = append(templates, f.Template)
		}
	}
	return templates
}

// IsZero reports whether no attribute of the person is present.
func (p Person) IsZero() bool {
	return !p.HasName() &&
		p.Sex == "" &&
		p.Birthdate.IsZero() &&
		p.AliveStatus == "" &&
		p.OtherName == "" &&
		p.MothersMiddleName == "" &&
		p.VillageName == "" &&
		p.PersonGUID == "" &&
		len(p.Identifiers) == 0 &&
		len(p.Fingerprints) == 0 &&
		p.MatchScore == 0 &&
		!p.FingerprintMatched
}
