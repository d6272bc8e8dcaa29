package protocol

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const performanceService = "ideapad.Performance"

// PerformanceServer is the server API for the ideapad.Performance service. Modes are
// exchanged by name.
type PerformanceServer interface {
	Get(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Set(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	Next(context.Context, *wrapperspb.Int32Value) (*wrapperspb.StringValue, error)
}

// PerformanceServiceDesc is the grpc.ServiceDesc for the ideapad.Performance service
var PerformanceServiceDesc = grpc.ServiceDesc{
	ServiceName: performanceService,
	HandlerType: (*PerformanceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(performanceService, "Get", newEmpty, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(PerformanceServer).Get(ctx, req.(*emptypb.Empty))
		}),
		unary(performanceService, "Set", newStringValue, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(PerformanceServer).Set(ctx, req.(*wrapperspb.StringValue))
		}),
		unary(performanceService, "Next", newInt32Value, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(PerformanceServer).Next(ctx, req.(*wrapperspb.Int32Value))
		}),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterPerformanceServer registers srv with s
func RegisterPerformanceServer(s *grpc.Server, srv PerformanceServer) {
	s.RegisterService(&PerformanceServiceDesc, srv)
}

// PerformanceClient is the client API for the ideapad.Performance service
type PerformanceClient interface {
	Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Set(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Next(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type performanceClient struct {
	cc grpc.ClientConnInterface
}

// NewPerformanceClient returns a PerformanceClient using cc
func NewPerformanceClient(cc grpc.ClientConnInterface) PerformanceClient {
	return &performanceClient{cc}
}

func (c *performanceClient) Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+performanceService+"/Get", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceClient) Set(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+performanceService+"/Set", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *performanceClient) Next(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+performanceService+"/Next", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
