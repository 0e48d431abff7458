package numeral

import (
	"context"
	"strconv"
	"time"

	apperrors "github.com/louisbranch/arithmos/internal/platform/errors"
	"github.com/louisbranch/arithmos/internal/platform/timeouts"
	greek "github.com/louisbranch/arithmos/numeral"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is the client API for arithmos.numeral.v1.NumeralService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Encode calls NumeralService.Encode.
func (c *Client) Encode(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, EncodeFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeLowercase calls NumeralService.EncodeLowercase.
func (c *Client) EncodeLowercase(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, EncodeLowercaseFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode calls NumeralService.Decode.
func (c *Client) Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error) {
	out := new(wrapperspb.UInt32Value)
	if err := c.cc.Invoke(ctx, DecodeFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoteConverter converts through a NumeralService. Failed calls come back
// as *apperrors.Error rebuilt from the status details.
type RemoteConverter struct {
	client  *Client
	locale  string
	timeout time.Duration
}

// NewRemoteConverter creates a converter over cc that asks for error
// messages in locale.
func NewRemoteConverter(cc grpc.ClientConnInterface, locale string) *RemoteConverter {
	return &RemoteConverter{client: NewClient(cc), locale: locale, timeout: timeouts.GRPCRequest}
}

// Encode converts value remotely. Values that cannot be sent are rejected
// locally with the same error the server would return.
func (r *RemoteConverter) Encode(ctx context.Context, value int, c greek.Case) (string, error) {
	if value < greek.Min || value > greek.Max {
		return "", apperrors.FromNumeral(&greek.OutOfRangeError{Value: strconv.Itoa(value)})
	}
	call := r.client.Encode
	switch c {
	case greek.Upper:
	case greek.Lower:
		call = r.client.EncodeLowercase
	default:
		return "", apperrors.FromNumeral(&greek.CaseError{Name: c.String()})
	}

	ctx, cancel := r.callContext(ctx)
	defer cancel()
	out, err := call(ctx, wrapperspb.UInt32(uint32(value)))
	if err != nil {
		return "", apperrors.FromGRPCStatus(err)
	}
	return out.GetValue(), nil
}

// Decode parses text remotely.
func (r *RemoteConverter) Decode(ctx context.Context, text string) (int, error) {
	ctx, cancel := r.callContext(ctx)
	defer cancel()
	out, err := r.client.Decode(ctx, wrapperspb.String(text))
	if err != nil {
		return 0, apperrors.FromGRPCStatus(err)
	}
	return int(out.GetValue()), nil
}

func (r *RemoteConverter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = WithLocale(ctx, r.locale)
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
