// Package numeral exposes Greek numeral conversion as a service: a Converter
// abstraction with an in-process implementation instrumented with traces and
// Prometheus counters, plus the gRPC API and server in subpackages.
package numeral

import (
	"context"

	"github.com/louisbranch/arithmos/internal/platform/telemetry/metrics"
	greek "github.com/louisbranch/arithmos/numeral"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName is the fully qualified gRPC service name, also used as the
// health check service key.
const ServiceName = "arithmos.numeral.v1.NumeralService"

const instrumentationName = "github.com/louisbranch/arithmos/internal/services/numeral"

// Operation labels.
const (
	OperationEncode = "encode"
	OperationDecode = "decode"
)

// Result labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Converter converts between integers and Greek numerals.
type Converter interface {
	Encode(ctx context.Context, value int, c greek.Case) (string, error)
	Decode(ctx context.Context, text string) (int, error)
}

// Option configures a Local converter.
type Option func(*Local)

// WithTracerProvider sets the tracer provider. The global provider is used
// by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(l *Local) {
		if tp != nil {
			l.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// Local converts in-process.
type Local struct {
	tracer      trace.Tracer
	conversions *prometheus.CounterVec
}

// NewLocal creates a Local converter whose counters are registered on reg.
// A nil reg keeps the counters private.
func NewLocal(reg prometheus.Registerer, opts ...Option) (*Local, error) {
	conversions, err := metrics.Register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "conversions_total",
		Help:      "Greek numeral conversions, by operation and result.",
	}, []string{"operation", "result"}))
	if err != nil {
		return nil, err
	}

	l := &Local{
		tracer:      otel.Tracer(instrumentationName),
		conversions: conversions,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Encode renders value as a numeral in case c.
func (l *Local) Encode(ctx context.Context, value int, c greek.Case) (string, error) {
	_, span := l.tracer.Start(ctx, "numeral.encode", trace.WithAttributes(
		attribute.Int("numeral.value", value),
		attribute.String("numeral.case", c.String()),
	))
	defer span.End()

	out, err := greek.Encode(value, c)
	l.record(span, OperationEncode, err)
	if err == nil {
		span.SetAttributes(attribute.String("numeral.text", out))
	}
	return out, err
}

// Decode parses a numeral.
func (l *Local) Decode(ctx context.Context, text string) (int, error) {
	_, span := l.tracer.Start(ctx, "numeral.decode", trace.WithAttributes(
		attribute.String("numeral.text", text),
	))
	defer span.End()

	value, err := greek.Decode(text)
	l.record(span, OperationDecode, err)
	if err == nil {
		span.SetAttributes(attribute.Int("numeral.value", value))
	}
	return value, err
}

// Conversions returns the conversion counter.
func (l *Local) Conversions() *prometheus.CounterVec {
	return l.conversions
}

func (l *Local) record(span trace.Span, operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	l.conversions.WithLabelValues(operation, result).Inc()
}
