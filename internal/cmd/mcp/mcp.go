// Package mcp parses MCP command flags and starts the stdio MCP server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/arithmos/internal/platform/cmd"
	"github.com/louisbranch/arithmos/internal/platform/discovery"
	mcpservice "github.com/louisbranch/arithmos/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Addr      string `env:"NUMERAL_ADDR"`
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	Locale    string `env:"LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "numeral server address, e.g. "+discovery.DefaultGRPCAddr(discovery.ServiceNumeral)+" (converts in-process when empty)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for tool error messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			NumeralAddr: cfg.Addr,
			Transport:   mcpservice.TransportKind(cfg.Transport),
			Locale:      cfg.Locale,
		})
	})
}
