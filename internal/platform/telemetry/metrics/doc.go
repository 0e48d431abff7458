// Package metrics provides operational metrics for arithmos processes.
//
// # Registry
//
// NewRegistry builds a Prometheus registry carrying the Go runtime and
// process collectors. Services register their own collectors on it with
// Register, which hands back the existing collector when an identical one
// is already registered.
//
// # gRPC Interceptor
//
// The interceptor records, per full method name:
//   - request count by status code
//   - request latency
//
// # Exposition
//
// Handler and Server expose a registry in Prometheus text or OpenMetrics
// format at /metrics, with a plain /health probe alongside.
package metrics
