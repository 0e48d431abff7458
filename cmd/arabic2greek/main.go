// Command arabic2greek prints the Greek numeral for a number, or the number
// for a Greek numeral with -decode.
//
//	$ arabic2greek 616
//	ΧΙϜ'
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/louisbranch/arithmos/internal/cmd/arabic2greek"
	entrypoint "github.com/louisbranch/arithmos/internal/platform/cmd"
	"github.com/louisbranch/arithmos/internal/platform/config"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[ARABIC2GREEK] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceArabic2Greek, func(ctx context.Context) error {
		return cli.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		stop()
		os.Exit(config.Failf(os.Stderr, "%s", cli.Message(err, cfg.Locale)))
	}
}
