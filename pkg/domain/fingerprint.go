package domain

// FingerprintType names the finger a fingerprint template was taken from.
type FingerprintType string

const (
	LeftThumb        FingerprintType = "leftThumb"
	LeftIndexFinger  FingerprintType = "leftIndexFinger"
	LeftMiddleFinger FingerprintType = "leftMiddleFinger"
	LeftRingFinger   FingerprintType = "leftRingFinger"
	LeftLittleFinger FingerprintType = "leftLittleFinger"

	RightThumb        FingerprintType = "rightThumb"
	RightIndexFinger  FingerprintType = "rightIndexFinger"
	RightMiddleFinger FingerprintType = "rightMiddleFinger"
	RightRingFinger   FingerprintType = "rightRingFinger"
	RightLittleFinger FingerprintType = "rightLittleFinger"
)

// Fingerprint is a binary fingerprint template for one finger.
type Fingerprint struct {
	Type     FingerprintType `json:"type"`
	Template []byte          `json:"template"`
}
