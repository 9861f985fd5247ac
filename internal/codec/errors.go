package codec

import (
	"errors"
	"fmt"

	"hiebus/internal/message"
)

// Category classifies codec failures.
type Category string

const (
	// CategoryTemplateNotFound: no skeleton exists for the kind.
	CategoryTemplateNotFound Category = "template_not_found"
	// CategoryMalformedInput: wire text or a skeleton failed to parse.
	CategoryMalformedInput Category = "malformed_input"
	// CategoryUnknownKind: the root tag or body kind is not registered.
	CategoryUnknownKind Category = "unknown_kind"
	// CategoryFieldNotFound marks a slot missing from a template. It is only
	// ever logged and counted; Pack and Unpack never return it.
	CategoryFieldNotFound Category = "field_not_found"
)

// Error is returned by Pack and Unpack when a call cannot produce a result.
type Error struct {
	Category Category
	Kind     message.Kind
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codec %s [%s]: %s: %v", e.Kind, e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("codec %s [%s]: %s", e.Kind, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(category Category, kind message.Kind, msg string, err error) *Error {
	return &Error{Category: category, Kind: kind, Message: msg, Err: err}
}

// CategoryOf extracts the category of a codec error.
func CategoryOf(err error) (Category, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Category, true
	}
	return "", false
}
