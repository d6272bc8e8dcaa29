// Package protocol describes the ideapad.Battery and ideapad.Performance gRPC
// services. Requests and responses are protobuf well-known types so no code
// generation is needed.
package protocol

import (
	"context"

	"google.golang.org/grpc"
)

type handlerFunc func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error)

// unary builds a grpc.MethodDesc the same way protoc-gen-go-grpc would
func unary(service, method string, newRequest func() interface{}, call handlerFunc) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newRequest()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
