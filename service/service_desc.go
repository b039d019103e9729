package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName     = "division.Division"
	divideMethod    = "/division.Division/Divide"
	tryDivideMethod = "/division.Division/TryDivide"
)

// serviceDesc describes division.Division in terms of well-known types:
//
//	rpc Divide(google.protobuf.Struct) returns (google.protobuf.DoubleValue);
//	rpc TryDivide(google.protobuf.Struct) returns (google.protobuf.Struct);
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DivisionServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Divide", Handler: divideHandler},
		{MethodName: "TryDivide", Handler: tryDivideHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "division.proto",
}

// RegisterDivisionServer binds srv to s.
func RegisterDivisionServer(s grpc.ServiceRegistrar, srv DivisionServer) {
	s.RegisterService(&serviceDesc, srv)
}

func divideHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DivisionServer).Divide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: divideMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DivisionServer).Divide(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func tryDivideHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DivisionServer).TryDivide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: tryDivideMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DivisionServer).TryDivide(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
