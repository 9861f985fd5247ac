// Package codec packs bus messages into HL7v3-shaped XML and unpacks them
// again.
//
// Templated kinds (the person messages) are packed by filling a skeleton
// document: slots are located by key, repeated once per value and removed
// when their value is absent. Work and log-entry kinds are built as small
// flat documents. Unpacking runs the inverse mapping and tolerates absent
// slots.
package codec

import (
	"context"
	"log/slog"
	"time"

	"github.com/beevik/etree"

	"hiebus/internal/codec/metrics"
	"hiebus/internal/codec/scalar"
	"hiebus/internal/codec/template"
	"hiebus/internal/message"
	"hiebus/internal/platform/logger"
	"hiebus/internal/platform/tracer"
)

// KindResolver maps wire root tags to message kinds and back.
type KindResolver interface {
	Resolve(rootTag string) (message.Kind, bool)
	RootTag(kind message.Kind) (string, bool)
}

// NodeIdentity names the node the codec runs on. Log entries are stamped
// with it.
type NodeIdentity interface {
	Address() string
	Name() string
}

// TemplateLoader hands out private copies of skeleton documents.
type TemplateLoader interface {
	Load(name string) (*etree.Document, error)
}

// Codec is safe for concurrent use. Every call works on its own tree.
type Codec struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
	loader   TemplateLoader
	resolver KindResolver
	identity NodeIdentity
	conv     *scalar.Converter
}

type Option func(*Codec)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Codec) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Codec) {
		c.tracer = t
	}
}

func WithLoader(l TemplateLoader) Option {
	return func(c *Codec) {
		c.loader = l
	}
}

func WithResolver(r KindResolver) Option {
	return func(c *Codec) {
		c.resolver = r
	}
}

func WithNodeIdentity(id NodeIdentity) Option {
	return func(c *Codec) {
		c.identity = id
	}
}

type anonymousNode struct{}

func (anonymousNode) Address() string { return "" }
func (anonymousNode) Name() string    { return "" }

// New builds a codec. Without options it uses the embedded skeletons, the
// standard root-tag registry, no metrics, no tracing and a discarding
// logger.
func New(opts ...Option) *Codec {
	c := &Codec{
		logger:   logger.Discard(),
		tracer:   tracer.NewNoop(),
		identity: anonymousNode{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.loader == nil {
		var topts []template.Option
		if c.metrics != nil {
			topts = append(topts, template.WithObserver(c.metrics))
		}
		c.loader = template.New(topts...)
	}
	if c.resolver == nil {
		c.resolver = message.NewRegistry()
	}
	c.conv = scalar.New(c.logger)
	return c
}

// call carries the state of one Pack or Unpack invocation.
type call struct {
	*Codec
	ctx  context.Context
	kind message.Kind
	span tracer.Span
}

// Pack renders m as wire text. It fails only when no tree can be produced:
// the kind is unknown, its skeleton is missing, or the pre-formed XML does
// not parse. Slots missing from a skeleton are logged and skipped.
func (c *Codec) Pack(ctx context.Context, m *message.Message) (string, error) {
	start := time.Now()
	if m == nil {
		m = &message.Message{}
	}
	kind := m.Kind()
	ctx, span := c.tracer.Start(ctx, tracer.SpanPack,
		tracer.String(tracer.AttrKind, kind.String()),
		tracer.String(tracer.AttrMessageID, m.ID),
		tracer.Bool(tracer.AttrPreformed, m.XML != ""),
	)
	p := &call{Codec: c, ctx: ctx, kind: kind, span: span}

	out, err := p.pack(m)
	span.End(err)
	if err != nil {
		p.fail(metrics.DirectionPack, err)
		return "", err
	}
	if c.metrics != nil {
		c.metrics.RecordPacked(kind.String())
		c.metrics.ObserveDuration(metrics.DirectionPack, time.Since(start).Seconds())
	}
	return out, nil
}

// Unpack parses wire text and maps it back onto a message. Absent slots
// leave the corresponding fields empty.
func (c *Codec) Unpack(ctx context.Context, text string) (*message.Message, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, tracer.SpanUnpack, tracer.Int(tracer.AttrBytes, len(text)))
	p := &call{Codec: c, ctx: ctx, span: span}

	m, err := p.unpack(text)
	span.End(err)
	if err != nil {
		p.fail(metrics.DirectionUnpack, err)
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.RecordUnpacked(p.kind.String())
		c.metrics.ObserveDuration(metrics.DirectionUnpack, time.Since(start).Seconds())
	}
	return m, nil
}

func (p *call) fail(direction string, err error) {
	category, _ := CategoryOf(err)
	p.logger.ErrorContext(p.ctx, "codec call failed",
		"direction", direction,
		"kind", p.kind.String(),
		"category", string(category),
		"error", err,
	)
	if p.metrics != nil {
		p.metrics.RecordFailure(direction, string(category))
	}
}

// defect reports a slot the skeleton should have had. The field is skipped
// and the call carries on.
func (p *call) defect(key, where string, err error) {
	attrs := []any{
		"kind", p.kind.String(),
		"key", key,
		"where", where,
		"category", string(CategoryFieldNotFound),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	p.logger.ErrorContext(p.ctx, "template slot not found", attrs...)
	if p.metrics != nil {
		p.metrics.RecordTemplateDefect(p.kind.String(), key)
	}
	p.span.AddEvent(tracer.EventTemplateDefect, tracer.String("key", key))
}
