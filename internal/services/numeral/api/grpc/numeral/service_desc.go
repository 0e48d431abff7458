package numeral

import (
	"context"

	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of arithmos.numeral.v1.NumeralService.
const (
	EncodeFullMethod          = "/" + numeralservice.ServiceName + "/Encode"
	EncodeLowercaseFullMethod = "/" + numeralservice.ServiceName + "/EncodeLowercase"
	DecodeFullMethod          = "/" + numeralservice.ServiceName + "/Decode"
)

// NumeralServiceServer is the server API for arithmos.numeral.v1.NumeralService.
//
// The service speaks protobuf well-known wrapper types only:
//
//	rpc Encode(google.protobuf.UInt32Value) returns (google.protobuf.StringValue);
//	rpc EncodeLowercase(google.protobuf.UInt32Value) returns (google.protobuf.StringValue);
//	rpc Decode(google.protobuf.StringValue) returns (google.protobuf.UInt32Value);
type NumeralServiceServer interface {
	Encode(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error)
	EncodeLowercase(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error)
	Decode(context.Context, *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error)
}

// RegisterNumeralServiceServer registers srv on s.
func RegisterNumeralServiceServer(s grpc.ServiceRegistrar, srv NumeralServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes arithmos.numeral.v1.NumeralService for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: numeralservice.ServiceName,
	HandlerType: (*NumeralServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode", Handler: encodeHandler},
		{MethodName: "EncodeLowercase", Handler: encodeLowercaseHandler},
		{MethodName: "Decode", Handler: decodeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arithmos/numeral/v1/numeral.proto",
}

func encodeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumeralServiceServer).Encode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EncodeFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NumeralServiceServer).Encode(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func encodeLowercaseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumeralServiceServer).EncodeLowercase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EncodeLowercaseFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NumeralServiceServer).EncodeLowercase(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func decodeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumeralServiceServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DecodeFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NumeralServiceServer).Decode(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
