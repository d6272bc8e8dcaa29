package protocol

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const batteryService = "ideapad.Battery"

// Fields of the Battery.Status response
const (
	StatusConservation = "conservation"
	StatusRapidCharge  = "rapid_charge"
)

// BatteryServer is the server API for the ideapad.Battery service. Enable requests
// carry the conflict mode ("ignore", "error" or "switch"); empty means "error".
type BatteryServer interface {
	Status(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	EnableConservation(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	DisableConservation(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	EnableRapidCharge(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	DisableRapidCharge(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

func newEmpty() interface{}       { return new(emptypb.Empty) }
func newStringValue() interface{} { return new(wrapperspb.StringValue) }
func newInt32Value() interface{}  { return new(wrapperspb.Int32Value) }

// BatteryServiceDesc is the grpc.ServiceDesc for the ideapad.Battery service
var BatteryServiceDesc = grpc.ServiceDesc{
	ServiceName: batteryService,
	HandlerType: (*BatteryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(batteryService, "Status", newEmpty, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BatteryServer).Status(ctx, req.(*emptypb.Empty))
		}),
		unary(batteryService, "EnableConservation", newStringValue, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BatteryServer).EnableConservation(ctx, req.(*wrapperspb.StringValue))
		}),
		unary(batteryService, "DisableConservation", newEmpty, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BatteryServer).DisableConservation(ctx, req.(*emptypb.Empty))
		}),
		unary(batteryService, "EnableRapidCharge", newStringValue, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BatteryServer).EnableRapidCharge(ctx, req.(*wrapperspb.StringValue))
		}),
		unary(batteryService, "DisableRapidCharge", newEmpty, func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BatteryServer).DisableRapidCharge(ctx, req.(*emptypb.Empty))
		}),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterBatteryServer registers srv with s
func RegisterBatteryServer(s *grpc.Server, srv BatteryServer) {
	s.RegisterService(&BatteryServiceDesc, srv)
}

// BatteryClient is the client API for the ideapad.Battery service
type BatteryClient interface {
	Status(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	EnableConservation(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DisableConservation(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	EnableRapidCharge(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DisableRapidCharge(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type batteryClient struct {
	cc grpc.ClientConnInterface
}

// NewBatteryClient returns a BatteryClient using cc
func NewBatteryClient(cc grpc.ClientConnInterface) BatteryClient {
	return &batteryClient{cc}
}

func (c *batteryClient) Status(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+batteryService+"/Status", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *batteryClient) EnableConservation(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+batteryService+"/EnableConservation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *batteryClient) DisableConservation(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+batteryService+"/DisableConservation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *batteryClient) EnableRapidCharge(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+batteryService+"/EnableRapidCharge", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *batteryClient) DisableRapidCharge(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, "/"+batteryService+"/DisableRapidCharge", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
