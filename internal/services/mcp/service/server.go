package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	platformgrpc "github.com/louisbranch/arithmos/internal/platform/grpc"
	"github.com/louisbranch/arithmos/internal/platform/timeouts"
	"github.com/louisbranch/arithmos/internal/services/mcp/domain"
	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	numeralapi "github.com/louisbranch/arithmos/internal/services/numeral/api/grpc/numeral"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	serverName    = "arithmos"
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio serves MCP over stdin and stdout.
	TransportStdio TransportKind = "stdio"
)

// Config configures the MCP server.
type Config struct {
	// NumeralAddr is the numeral gRPC service. Empty converts in-process.
	NumeralAddr string
	Transport   TransportKind
	// Locale selects the language of tool error messages.
	Locale string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// Run is the service entrypoint for MCP and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := newServerFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

func newServerFromConfig(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.NumeralAddr)
	if addr == "" {
		converter, err := numeralservice.NewLocal(nil)
		if err != nil {
			return nil, err
		}
		return newServer(converter, nil, cfg.Locale)
	}

	conn, err := dialNumeralGRPC(ctx, addr)
	if err != nil {
		return nil, err
	}
	return newServer(numeralapi.NewRemoteConverter(conn, cfg.Locale), conn, cfg.Locale)
}

func newServer(converter numeralservice.Converter, conn *grpc.ClientConn, locale string) (*Server, error) {
	if converter == nil {
		return nil, errors.New("numeral converter is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerNumeralTools(mcpServer, converter, locale)
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

func registerNumeralTools(server *mcp.Server, converter numeralservice.Converter, locale string) {
	mcp.AddTool(server, domain.EncodeTool(), domain.EncodeHandler(converter, locale))
	mcp.AddTool(server, domain.DecodeTool(), domain.DecodeHandler(converter, locale))
}

func dialNumeralGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	logf := func(format string, args ...any) {
		log.Printf("numeral %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, numeralservice.ServiceName, timeouts.GRPCDial, logf)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) && dialErr.Stage == platformgrpc.DialStageConnect {
			return nil, fmt.Errorf("connect to numeral server at %s: %w", addr, dialErr.Err)
		}
		return nil, err
	}
	return conn, nil
}

// Close releases the gRPC connection, if any.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP server until the session ends.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
