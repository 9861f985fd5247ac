// Package scalar converts between domain values and their wire text.
//
// Every unpack conversion degrades malformed input to the zero value of the
// target type and logs a warning; none of them return errors. An empty
// string stands for an absent slot in both directions.
package scalar

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"hiebus/internal/platform/logger"
)

const (
	DateLayout     = "20060102"
	DateTimeLayout = "2006-01-02 15:04:05.000"

	boolTrue = "true"
)

// Converter carries the logger used to report degraded conversions.
type Converter struct {
	logger *slog.Logger
}

// New returns a Converter logging to logger. A nil logger discards.
func New(log *slog.Logger) *Converter {
	if log == nil {
		log = logger.Discard()
	}
	return &Converter{logger: log}
}

// PackDate renders a calendar day. The zero time is absent.
func (c *Converter) PackDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// UnpackDate parses a calendar day as midnight UTC.
func (c *Converter) UnpackDate(ctx context.Context, text string) time.Time {
	return c.parseTime(ctx, DateLayout, text)
}

// PackDateTime renders a timestamp with millisecond precision.
func (c *Converter) PackDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// UnpackDateTime parses a millisecond timestamp as UTC.
func (c *Converter) UnpackDateTime(ctx context.Context, text string) time.Time {
	return c.parseTime(ctx, DateTimeLayout, text)
}

func (c *Converter) parseTime(ctx context.Context, layout, text string) time.Time {
	if text == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(layout, text, time.UTC)
	if err != nil {
		c.logger.WarnContext(ctx, "unparsable date",
			"text", text,
			"layout", layout,
			"error", err,
		)
		return time.Time{}
	}
	return t
}

// UnpackEnum returns the member of values whose name matches text ignoring
// case, or the zero value when none does.
func UnpackEnum[T ~string](values []T, text string) T {
	var zero T
	if text == "" {
		return zero
	}
	for _, v := range values {
		if strings.EqualFold(string(v), text) {
			return v
		}
	}
	return zero
}

// PackBool renders true as "true". False has no wire form: the second
// result is false and the caller removes the slot.
func (c *Converter) PackBool(b bool) (string, bool) {
	if !b {
		return "", false
	}
	return boolTrue, true
}

// UnpackBool reads "true" in any case as true. Anything else, including an
// absent slot, is false.
func (c *Converter) UnpackBool(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), boolTrue)
}

// PackBytes renders b as uppercase hex, two digits per byte. A nil slice is
// absent.
func (c *Converter) PackBytes(b []byte) string {
	if b == nil {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// UnpackBytes decodes hex text in either case. Malformed text yields nil.
func (c *Converter) UnpackBytes(ctx context.Context, text string) []byte {
	b, err := hex.DecodeString(text)
	if err != nil {
		c.logger.WarnContext(ctx, "unparsable hex",
			"length", len(text),
			"error", err,
		)
		return nil
	}
	return b
}

// PackInt renders i in decimal.
func (c *Converter) PackInt(i int) string {
	return strconv.Itoa(i)
}

// UnpackInt parses decimal text. Absent or unparsable text is 0.
func (c *Converter) UnpackInt(ctx context.Context, text string) int {
	if text == "" {
		return 0
	}
	i, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		c.logger.WarnContext(ctx, "unparsable integer", "text", text, "error", err)
		return 0
	}
	return i
}
