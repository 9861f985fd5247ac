// Package domain holds the records the message bus carries: people, their
// identifiers and fingerprints, work assignments and log entries.
package domain

import (
	"github.com/google/uuid"

	dErrors "hiebus/pkg/domain-errors"
)

// NewMessageID returns a fresh message id for an outgoing message.
func NewMessageID() string {
	return uuid.NewString()
}

// ParseMessageID validates a message id produced by NewMessageID.
// Ids minted by other nodes are opaque strings and are never parsed.
func ParseMessageID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "message ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid message ID format")
	}
	return id, nil
}
