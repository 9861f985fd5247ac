package codec

import "hiebus/pkg/domain"

// Slot keys. These strings go on the wire verbatim.
const (
	oidRoot = "1.3.6.1.4.1.150.2474.11.1."

	oidMessageID          = oidRoot + "1"
	oidApplicationAddress = oidRoot + "2"

	oidOtherName          = oidRoot + "4.1"
	oidAliveStatus        = oidRoot + "4.3"
	oidMothersMiddleName  = oidRoot + "4.5"
	oidVillageName        = oidRoot + "4.15"
	oidFingerprintMatched = oidRoot + "4.22"

	oidPatientRegistryID       = oidRoot + "5.1"
	oidMasterPatientRegistryID = oidRoot + "5.2"
	oidTelephoneNo             = oidRoot + "5.6"
	oidNationalID              = oidRoot + "5.7"
	oidNHIFNo                  = oidRoot + "5.8"
	oidHudumaNo                = oidRoot + "5.9"
	oidPassportNo              = oidRoot + "5.10"
	oidBirthCertificateNo      = oidRoot + "5.11"
	oidBirthNotificationNo     = oidRoot + "5.12"
	oidAlienID                 = oidRoot + "5.13"
	oidNEMISID                 = oidRoot + "5.14"

	oidFingerprintLeftIndex  = oidRoot + "7.1"
	oidFingerprintRightIndex = oidRoot + "7.4"
)

type identifierField struct {
	Type domain.IdentifierType
	OID  string
}

// identifierFields is also the order identifiers come back in on unpack.
var identifierFields = []identifierField{
	{domain.PatientRegistryID, oidPatientRegistryID},
	{domain.MasterPatientRegistryID, oidMasterPatientRegistryID},
	{domain.TelephoneNo, oidTelephoneNo},
	{domain.NationalID, oidNationalID},
	{domain.NHIFNo, oidNHIFNo},
	{domain.HudumaNo, oidHudumaNo},
	{domain.PassportNo, oidPassportNo},
	{domain.BirthCertificateNo, oidBirthCertificateNo},
	{domain.BirthNotificationNo, oidBirthNotificationNo},
	{domain.AlienID, oidAlienID},
	{domain.NEMISID, oidNEMISID},
}

type fingerprintField struct {
	Type domain.FingerprintType
	OID  string
}

var fingerprintFields = []fingerprintField{
	{domain.LeftIndexFinger, oidFingerprintLeftIndex},
	{domain.RightIndexFinger, oidFingerprintRightIndex},
}

// Element names used outside the slot schemes.
const (
	tagPatient          = "patient"
	tagName             = "name"
	tagGiven            = "given"
	tagFamily           = "family"
	tagGender           = "administrativeGenderCode"
	tagBirthTime        = "birthTime"
	tagReceiver         = "receiver"
	tagSender           = "sender"
	tagAcceptAckCode    = "acceptAckCode"
	tagQuery            = "queryByParameter"
	tagQueryName        = "livingSubjectName"
	tagQueryGender      = "livingSubjectAdministrativeGender"
	tagQueryBirthTime   = "livingSubjectBirthTime"
	tagCandidate        = "subject"
	tagMatchObservation = "queryMatchObservation"
	tagValue            = "value"

	attrCode  = "code"
	attrValue = "value"

	ackAlways = "AL"
)

// Flat element names of the work and log-entry kinds.
const (
	fieldSourceAddress   = "sourceAddress"
	fieldSourceName      = "sourceName"
	fieldNotificationID  = "notificationId"
	fieldReassignAddress = "reassignAddress"
	fieldMessageID       = "messageId"
	fieldSeverity        = "severity"
	fieldClass           = "class"
	fieldDateTime        = "dateTime"
	fieldMessage         = "message"
)
