// Package numeral implements the arithmos.numeral.v1 gRPC API over a
// Converter, and the matching client.
package numeral

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/arithmos/internal/platform/errors"
	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	greek "github.com/louisbranch/arithmos/numeral"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LocaleMetadataKey carries the caller's preferred locale for error messages.
const LocaleMetadataKey = "x-locale"

// Service exposes arithmos.numeral.v1 gRPC operations.
type Service struct {
	converter numeralservice.Converter
}

// NewService creates a numeral service backed by converter.
func NewService(converter numeralservice.Converter) *Service {
	return &Service{converter: converter}
}

// Encode renders the value in capitals.
func (s *Service) Encode(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error) {
	return s.encode(ctx, in, greek.Upper)
}

// EncodeLowercase renders the value in small letters.
func (s *Service) EncodeLowercase(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error) {
	return s.encode(ctx, in, greek.Lower)
}

func (s *Service) encode(ctx context.Context, in *wrapperspb.UInt32Value, c greek.Case) (*wrapperspb.StringValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "encode request is required")
	}
	if s == nil || s.converter == nil {
		return nil, status.Error(codes.Internal, "numeral converter is not configured")
	}
	n, err := greek.From(in.GetValue())
	if err != nil {
		return nil, apperrors.HandleError(err, LocaleFromContext(ctx))
	}
	out, err := s.converter.Encode(ctx, int(n.Value()), c)
	if err != nil {
		return nil, apperrors.HandleError(err, LocaleFromContext(ctx))
	}
	return wrapperspb.String(out), nil
}

// Decode parses a numeral into its value.
func (s *Service) Decode(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "decode request is required")
	}
	if s == nil || s.converter == nil {
		return nil, status.Error(codes.Internal, "numeral converter is not configured")
	}
	value, err := s.converter.Decode(ctx, in.GetValue())
	if err != nil {
		return nil, apperrors.HandleError(err, LocaleFromContext(ctx))
	}
	return wrapperspb.UInt32(uint32(value)), nil
}

// LocaleFromContext returns the first x-locale value of the incoming
// metadata, or "".
func LocaleFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(LocaleMetadataKey)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// WithLocale attaches locale to the outgoing metadata of ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, LocaleMetadataKey, locale)
}
