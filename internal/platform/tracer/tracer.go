// Package tracer is a small tracing abstraction over OpenTelemetry.
//
// Components depend on the Tracer interface only; cmd/server wires the
// OpenTelemetry adapter and tests use NoopTracer.
package tracer

import "context"

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer starts spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to a span or event.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}


// Span names.
const (
	SpanPack   = "codec.pack"
	SpanUnpack = "codec.unpack"
)

// Attribute keys.
const (
	AttrKind       = "message.kind"
	AttrMessageID  = "message.id"
	AttrRootTag    = "message.root_tag"
	AttrBytes      = "message.bytes"
	AttrCandidates = "message.candidates"
	AttrPreformed  = "message.preformed"
)

// Event names.
const (
	EventTemplateDefect = "template.defect"
)
