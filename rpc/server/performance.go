package server

import (
	"context"
	"log"
	"sync"

	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/rpc/protocol"
	"github.com/zllovesuki/IdeapadManager/system/performance"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type PerformanceServer struct {
	mu       sync.Mutex
	dep      *controller.Dependencies
	onChange func()
}

var _ protocol.PerformanceServer = &PerformanceServer{}

// RegisterPerformanceServer registers the system performance service. onChange is
// called after every successful change.
func RegisterPerformanceServer(s *grpc.Server, dep *controller.Dependencies, onChange func()) *PerformanceServer {
	server := &PerformanceServer{
		dep:      dep,
		onChange: onChange,
	}
	protocol.RegisterPerformanceServer(s, server)
	return server
}

func (p *PerformanceServer) Get(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dep == nil {
		return nil, errNotInitialized
	}

	mode, err := p.dep.Performance().Get()
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(mode.String()), nil
}

func (p *PerformanceServer) Set(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	mode, err := performance.ParseMode(req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dep == nil {
		return nil, errNotInitialized
	}

	if err := p.dep.Performance().Set(mode); err != nil {
		return nil, toStatus(err)
	}
	p.changed(mode)

	return &emptypb.Empty{}, nil
}

func (p *PerformanceServer) Next(ctx context.Context, req *wrapperspb.Int32Value) (*wrapperspb.StringValue, error) {
	howMany := int(req.GetValue())
	if howMany == 0 {
		howMany = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dep == nil {
		return nil, errNotInitialized
	}

	mode, err := p.dep.Performance().Next(howMany)
	if err != nil {
		return nil, toStatus(err)
	}
	p.changed(mode)

	return wrapperspb.String(mode.String()), nil
}

func (p *PerformanceServer) changed(mode performance.Mode) {
	if p.dep.PerformancePreference != nil {
		p.dep.PerformancePreference.Remember(mode)
	}
	if p.onChange != nil {
		p.onChange()
	}
}

// HotReload swaps the dependencies used by the server
func (p *PerformanceServer) HotReload(dep *controller.Dependencies) {
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Println("[gRPCServer] hot reloading performance server")

	p.dep = dep
}
