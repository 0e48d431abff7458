package grpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

const testService = "arithmos.test.v1.Probe"

type bufServer struct {
	listener *bufconn.Listener
	server   *gogrpc.Server
	setState func(grpc_health_v1.HealthCheckResponse_ServingStatus)
}

func startBufServer(t *testing.T, services ...string) *bufServer {
	t.Helper()

	listener := bufconn.Listen(1 << 16)
	server := gogrpc.NewServer()
	healthServer := RegisterHealth(server, services...)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(func() {
		server.Stop()
		_ = listener.Close()
	})

	return &bufServer{
		listener: listener,
		server:   server,
		setState: func(s grpc_health_v1.HealthCheckResponse_ServingStatus) {
			for _, service := range services {
				healthServer.SetServingStatus(service, s)
			}
		},
	}
}

func (b *bufServer) options() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return b.listener.DialContext(ctx)
		}),
	}
}

func TestDialWithHealthServing(t *testing.T) {
	srv := startBufServer(t, testService)

	conn, err := DialWithHealth(context.Background(), nil, "passthrough:///bufnet", testService, 2*time.Second, nil, srv.options()...)
	if err != nil {
		t.Fatalf("dial with health: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close conn: %v", err)
	}
}

func TestDialWithHealthUnknownServiceTimesOut(t *testing.T) {
	srv := startBufServer(t, testService)

	start := time.Now()
	_, err := DialWithHealth(context.Background(), nil, "passthrough:///bufnet", "arithmos.missing.v1.Nothing", 300*time.Millisecond, nil, srv.options()...)
	if err == nil {
		t.Fatal("expected error")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) || dialErr.Stage != DialStageHealth {
		t.Fatalf("expected health stage error, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline in chain, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("expected timeout to bound health wait, took %v", elapsed)
	}
}

func TestWaitForHealthTransitionsToServing(t *testing.T) {
	srv := startBufServer(t, testService)
	srv.setState(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	conn, err := gogrpc.NewClient("passthrough:///bufnet", srv.options()...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer conn.Close()

	go func() {
		time.Sleep(150 * time.Millisecond)
		srv.setState(grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var logged []string
	logf := func(format string, args ...any) { logged = append(logged, format) }
	if err := WaitForHealth(ctx, conn, testService, logf); err != nil {
		t.Fatalf("wait for health: %v", err)
	}
	if len(logged) == 0 {
		t.Fatal("expected at least one waiting log line")
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestDialWithHealthConnectStage(t *testing.T) {
	dialer := DialerFunc(func(string, ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		return nil, errors.New("dial failure")
	})

	_, err := DialWithHealth(context.Background(), dialer, "nowhere:1", "", time.Second, nil)
	var dialErr *DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected DialError, got %T", err)
	}
	if dialErr.Stage != DialStageConnect {
		t.Fatalf("expected connect stage, got %s", dialErr.Stage)
	}
	if !strings.Contains(err.Error(), "nowhere:1") || !strings.Contains(err.Error(), "dial failure") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestClientOptionsNotEmpty(t *testing.T) {
	if len(ClientOptions()) == 0 {
		t.Fatal("expected default client options")
	}
}
