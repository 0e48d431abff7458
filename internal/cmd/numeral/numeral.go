// Package numeral parses numeral service flags and launches the service.
package numeral

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/arithmos/internal/platform/cmd"
	"github.com/louisbranch/arithmos/internal/platform/discovery"
	server "github.com/louisbranch/arithmos/internal/services/numeral/app"
)

// Config holds numeral command configuration.
type Config struct {
	Port        int    `env:"NUMERAL_PORT"`
	MetricsAddr string `env:"METRICS_ADDR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port == 0 {
		cfg.Port = discovery.GRPCPort(discovery.ServiceNumeral)
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The numeral gRPC server port")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus metrics listen address (disabled when empty)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the numeral gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceNumeral, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port, cfg.MetricsAddr)
	})
}
