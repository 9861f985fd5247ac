package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"hiebus/internal/platform/tracer"
)

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	newCtx, span := tracer.NewNoop().Start(ctx, tracer.SpanPack, tracer.String(tracer.AttrKind, "findPerson"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int(tracer.AttrCandidates, 3))
	span.AddEvent(tracer.EventTemplateDefect, tracer.String("key", "id"))
	span.End(errors.New("boom"))
}

func TestOTelTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanUnpack, tracer.Bool(tracer.AttrPreformed, true))
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int(tracer.AttrBytes, 2048))
	span.AddEvent(tracer.EventTemplateDefect)
	span.End(nil)
}

func TestOTelTracerDefaultsToGlobalProvider(t *testing.T) {
	_, span := tracer.NewOTel().Start(context.Background(), tracer.SpanPack)
	require.NotNil(t, span)
	span.End(errors.New("failed"))
}

func TestAttributeConstructors(t *testing.T) {
	t.Run("Int widens to int64", func(t *testing.T) {
		assert.Equal(t, int64(7), tracer.Int("n", 7).Value)
	})
}

func TestAttributeConversionSkipsUnknownTypes(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))
	_, span := tr.Start(context.Background(), tracer.SpanPack,
		tracer.Attribute{Key: "weird", Value: struct{}{}},
	)
	span.SetAttributes(tracer.Attribute{Key: "also", Value: []string{"x"}})
	span.End(nil)
}
