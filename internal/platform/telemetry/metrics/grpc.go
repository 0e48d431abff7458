package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// GRPC holds the per-method request collectors.
type GRPC struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewGRPC creates the gRPC collectors and registers them on reg.
func NewGRPC(reg prometheus.Registerer) (*GRPC, error) {
	requests, err := Register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "gRPC requests handled, by method and status code.",
	}, []string{"method", "code"}))
	if err != nil {
		return nil, err
	}
	latency, err := Register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request latency, by method.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"method"}))
	if err != nil {
		return nil, err
	}
	return &GRPC{requests: requests, latency: latency}, nil
}

// UnaryServerInterceptor records count and latency for every unary call.
func (m *GRPC) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.latency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// Requests returns the request counter, for tests and dashboards.
func (m *GRPC) Requests() *prometheus.CounterVec {
	return m.requests
}
