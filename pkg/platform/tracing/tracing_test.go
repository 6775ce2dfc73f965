package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "eligibility.Match", attribute.String("region", "TX"))
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	EndSpan(span, errors.New("catalog unavailable"))
}

func TestSetTracer(t *testing.T) {
	SetTracer(noop.NewTracerProvider().Tracer("test"))
	defer SetTracer(nil)

	_, span := StartSpan(context.Background(), "providermatch.Find")
	assert.False(t, span.SpanContext().IsValid())
	EndSpan(span, nil)
}
