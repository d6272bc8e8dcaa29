package server

import (
	"context"
	"log"
	"sync"

	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/rpc/protocol"
	"github.com/zllovesuki/IdeapadManager/system/battery"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type BatteryServer struct {
	mu       sync.Mutex
	dep      *controller.Dependencies
	onChange func()
}

var _ protocol.BatteryServer = &BatteryServer{}

// RegisterBatteryServer registers the battery service. onChange is called after every
// successful change, usually to persist the settings.
func RegisterBatteryServer(s *grpc.Server, dep *controller.Dependencies, onChange func()) *BatteryServer {
	server := &BatteryServer{
		dep:      dep,
		onChange: onChange,
	}
	protocol.RegisterBatteryServer(s, server)
	return server
}

func (b *BatteryServer) Status(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dep == nil {
		return nil, errNotInitialized
	}

	s, err := battery.Status(b.dep.Conservation())
	if err != nil {
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]interface{}{
		protocol.StatusConservation: s.Conservation,
		protocol.StatusRapidCharge:  s.RapidCharge,
	})
}

func (b *BatteryServer) EnableConservation(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return b.enable(battery.Conservation, req)
}

func (b *BatteryServer) DisableConservation(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return b.disable(battery.Conservation)
}

func (b *BatteryServer) EnableRapidCharge(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return b.enable(battery.RapidCharge, req)
}

func (b *BatteryServer) DisableRapidCharge(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return b.disable(battery.RapidCharge)
}

func (b *BatteryServer) controller(feature battery.Feature) battery.Controller {
	if feature == battery.Conservation {
		return b.dep.Conservation()
	}
	return b.dep.RapidCharge()
}

func (b *BatteryServer) enable(feature battery.Feature, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	mode := battery.ModeError
	if req.GetValue() != "" {
		var err error
		if mode, err = battery.ParseMode(req.GetValue()); err != nil {
			return nil, toStatus(err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dep == nil {
		return nil, errNotInitialized
	}

	log.Printf("[gRPCServer] enabling %s with mode %s\n", feature, mode)
	if err := b.controller(feature).Enable(mode); err != nil {
		return nil, toStatus(err)
	}

	wanted := battery.State{Conservation: feature == battery.Conservation, RapidCharge: feature == battery.RapidCharge}
	if mode == battery.ModeIgnore {
		// the other feature may still be on
		if s, err := battery.Status(b.dep.Conservation()); err != nil {
			log.Printf("[gRPCServer] cannot read battery status, remembering %s: %s\n", wanted, err)
		} else {
			wanted = s
		}
	}
	b.changed(wanted)

	return &emptypb.Empty{}, nil
}

func (b *BatteryServer) disable(feature battery.Feature) (*emptypb.Empty, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dep == nil {
		return nil, errNotInitialized
	}

	log.Printf("[gRPCServer] disabling %s\n", feature)
	if err := b.controller(feature).Disable(); err != nil {
		return nil, toStatus(err)
	}

	var wanted battery.State
	if b.dep.BatteryPreference != nil {
		wanted = b.dep.BatteryPreference.Current()
	}
	if feature == battery.Conservation {
		wanted.Conservation = false
	} else {
		wanted.RapidCharge = false
	}
	b.changed(wanted)

	return &emptypb.Empty{}, nil
}

func (b *BatteryServer) changed(s battery.State) {
	if b.dep.BatteryPreference != nil {
		b.dep.BatteryPreference.Remember(s)
	}
	if b.onChange != nil {
		b.onChange()
	}
}

// HotReload swaps the dependencies used by the server
func (b *BatteryServer) HotReload(dep *controller.Dependencies) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log.Println("[gRPCServer] hot reloading battery server")

	b.dep = dep
}
