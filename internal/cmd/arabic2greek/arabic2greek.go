// Package arabic2greek converts one number to a Greek numeral, or back,
// from the command line.
package arabic2greek

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	entrypoint "github.com/louisbranch/arithmos/internal/platform/cmd"
	"github.com/louisbranch/arithmos/internal/platform/discovery"
	apperrors "github.com/louisbranch/arithmos/internal/platform/errors"
	platformgrpc "github.com/louisbranch/arithmos/internal/platform/grpc"
	"github.com/louisbranch/arithmos/internal/platform/i18n/catalog"
	"github.com/louisbranch/arithmos/internal/platform/timeouts"
	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	numeralapi "github.com/louisbranch/arithmos/internal/services/numeral/api/grpc/numeral"
	greek "github.com/louisbranch/arithmos/numeral"
)

// Config holds arabic2greek command configuration.
type Config struct {
	Case   string `env:"CASE" envDefault:"upper"`
	Locale string `env:"LOCALE"`
	Addr   string `env:"NUMERAL_ADDR"`
	Decode bool
	// Args are the positional arguments left after flags.
	Args []string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	lower := fs.Bool("lower", false, "render small letters")
	fs.BoolVar(&cfg.Decode, "decode", false, "decode a Greek numeral instead of encoding a number")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "numeral server address, e.g. "+discovery.DefaultGRPCAddr(discovery.ServiceNumeral)+" (converts in-process when empty)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if *lower {
		cfg.Case = greek.Lower.String()
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// UsageError reports bad command-line input. Key and Args form a message of
// the "cli" catalog namespace.
type UsageError struct {
	Key  string
	Args []any
}

func (e *UsageError) Error() string {
	return catalog.Default().Printer(catalog.BaseLocale).Sprintf(e.Key, e.Args...)
}

// Message renders err for the user in locale.
func Message(err error, locale string) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		printer := catalog.Default().Printer(locale)
		return printer.Sprintf(usageErr.Key, usageErr.Args...) + "\n" + printer.Sprintf("cli.usage")
	}
	return apperrors.Localize(err, locale)
}

// Run converts the single positional argument and writes the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if len(cfg.Args) != 1 {
		return &UsageError{Key: "cli.argument_count", Args: []any{len(cfg.Args)}}
	}
	c, err := greek.ParseCase(cfg.Case)
	if err != nil {
		return err
	}

	converter, closeConverter, err := newConverter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeConverter()

	arg := strings.TrimSpace(cfg.Args[0])
	if cfg.Decode {
		value, err := converter.Decode(ctx, arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, value)
		return err
	}

	value, err := parseNumber(arg)
	if err != nil {
		return err
	}
	numeral, err := converter.Encode(ctx, value, c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, numeral)
	return err
}

func parseNumber(arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &greek.OutOfRangeError{Value: arg}
	}
	return 0, &UsageError{Key: "cli.not_a_number", Args: []any{arg}}
}

func newConverter(ctx context.Context, cfg Config) (numeralservice.Converter, func(), error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		local, err := numeralservice.NewLocal(nil)
		return local, func() {}, err
	}

	logf := func(format string, args ...any) {
		log.Printf("numeral %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, numeralservice.ServiceName, timeouts.GRPCDial, logf)
	if err != nil {
		return nil, nil, err
	}
	closeConn := func() {
		if err := conn.Close(); err != nil {
			log.Printf("close numeral connection: %v", err)
		}
	}
	return numeralapi.NewRemoteConverter(conn, cfg.Locale), closeConn, nil
}
