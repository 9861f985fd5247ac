package domainerrors

import "errors"

// Code is a transport-independent failure category used at the edges of the
// bus node: the HTTP adapter and the envelope helpers.
type Code string

const (
	CodeNotFound             Code = "not_found"
	CodeBadRequest           Code = "bad_request"
	CodeInvalidInput         Code = "invalid_input"
	CodeUnsupportedMediaType Code = "unsupported_media_type"
	CodeInternal             Code = "internal_error"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches code and msg to err. A domain error already in the chain
// keeps its own code.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code && err != nil
}

// CodeOf returns the code of the first domain error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
