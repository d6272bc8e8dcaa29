package client

import (
	"context"
	"time"

	"github.com/zllovesuki/IdeapadManager/rpc/protocol"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Remote goes through the daemon
type Remote struct {
	conn        *grpc.ClientConn
	battery     protocol.BatteryClient
	performance protocol.PerformanceClient
}

var _ Interface = &Remote{}

// Dial connects to the daemon at address
func Dial(haltCtx context.Context, address string) (*Remote, error) {
	ctx, cancel := context.WithTimeout(haltCtx, time.Second*1)
	defer cancel()
	c, err := grpc.DialContext(ctx, address, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, err
	}
	r := NewRemote(c)
	r.conn = c
	return r, nil
}

// NewRemote returns a Remote using cc
func NewRemote(cc grpc.ClientConnInterface) *Remote {
	return &Remote{
		battery:     protocol.NewBatteryClient(cc),
		performance: protocol.NewPerformanceClient(cc),
	}
}

// Close closes the connection opened by Dial
func (r *Remote) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

func (r *Remote) BatteryStatus(ctx context.Context) (battery.State, error) {
	resp, err := r.battery.Status(ctx, &emptypb.Empty{})
	if err != nil {
		return battery.State{}, err
	}
	fields := resp.GetFields()
	return battery.State{
		Conservation: fields[protocol.StatusConservation].GetBoolValue(),
		RapidCharge:  fields[protocol.StatusRapidCharge].GetBoolValue(),
	}, nil
}

func (r *Remote) Enable(ctx context.Context, feature battery.Feature, mode battery.Mode) error {
	req := wrapperspb.String(mode.String())
	var err error
	if feature == battery.Conservation {
		_, err = r.battery.EnableConservation(ctx, req)
	} else {
		_, err = r.battery.EnableRapidCharge(ctx, req)
	}
	return err
}

func (r *Remote) Disable(ctx context.Context, feature battery.Feature) error {
	var err error
	if feature == battery.Conservation {
		_, err = r.battery.DisableConservation(ctx, &emptypb.Empty{})
	} else {
		_, err = r.battery.DisableRapidCharge(ctx, &emptypb.Empty{})
	}
	return err
}

func (r *Remote) Performance(ctx context.Context) (performance.Mode, error) {
	resp, err := r.performance.Get(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, err
	}
	return performance.ParseMode(resp.GetValue())
}

func (r *Remote) SetPerformance(ctx context.Context, mode performance.Mode) error {
	_, err := r.performance.Set(ctx, wrapperspb.String(mode.String()))
	return err
}

func (r *Remote) NextPerformance(ctx context.Context, howMany int) (performance.Mode, error) {
	resp, err := r.performance.Next(ctx, wrapperspb.Int32(int32(howMany)))
	if err != nil {
		return 0, err
	}
	return performance.ParseMode(resp.GetValue())
}
