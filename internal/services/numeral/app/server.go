// Package server wires the numeral runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	platformgrpc "github.com/louisbranch/arithmos/internal/platform/grpc"
	"github.com/louisbranch/arithmos/internal/platform/telemetry/metrics"
	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	numeralapi "github.com/louisbranch/arithmos/internal/services/numeral/api/grpc/numeral"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Server hosts the numeral gRPC API and its metrics endpoint.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	registry   *prometheus.Registry
	metrics    *metrics.Server
}

// New creates a numeral server listening on the provided port. A non-empty
// metricsAddr also exposes Prometheus metrics there.
func New(port int, metricsAddr string) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), metricsAddr)
}

// NewWithAddr creates a numeral server for the provided addresses.
func NewWithAddr(addr, metricsAddr string) (*Server, error) {
	registry := metrics.NewRegistry()
	grpcMetrics, err := metrics.NewGRPC(registry)
	if err != nil {
		return nil, err
	}
	converter, err := numeralservice.NewLocal(registry)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	var metricsServer *metrics.Server
	if metricsAddr != "" {
		metricsServer, err = metrics.Listen(metricsAddr, registry)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()),
	)
	numeralapi.RegisterNumeralServiceServer(grpcServer, numeralapi.NewService(converter))
	healthServer := platformgrpc.RegisterHealth(grpcServer, numeralservice.ServiceName)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		registry:   registry,
		metrics:    metricsServer,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil {
		return ""
	}
	return s.metrics.Addr()
}

// Registry returns the Prometheus registry backing the server's metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Run creates and serves a numeral server until context cancellation.
func Run(ctx context.Context, port int, metricsAddr string) error {
	server, err := New(port, metricsAddr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server, and the metrics server when configured,
// until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	metricsCtx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()
	metricsErr := make(chan error, 1)
	if s.metrics != nil {
		go func() {
			metricsErr <- s.metrics.Serve(metricsCtx)
		}()
	}

	log.Printf("numeral server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return s.waitMetrics(metricsErr)
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-metricsErr:
		s.grpcServer.GracefulStop()
		<-serveErr
		return err
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

func (s *Server) waitMetrics(metricsErr <-chan error) error {
	if s.metrics == nil {
		return nil
	}
	return <-metricsErr
}

// Close releases numeral server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.metrics != nil {
		if err := s.metrics.Close(); err != nil {
			log.Printf("close metrics server: %v", err)
		}
	}
}
